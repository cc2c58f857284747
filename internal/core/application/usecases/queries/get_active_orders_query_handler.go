package queries

import (
	"context"
)

// GetActiveOrdersQueryHandler lists active orders from the backing store.
type GetActiveOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetActiveOrdersQueryHandler creates a handler for active order listings.
func NewGetActiveOrdersQueryHandler(reader OrderReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{reader: reader}
}

// Handle executes the query.
// Returns orders of the requested mode that have not reached delivered
// status, newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	_ context.Context,
	query GetActiveOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.reader.ActiveOrders(query.DeliveryMode())
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(active))
	for _, aggregate := range active {
		view, viewErr := newOrderView(aggregate)
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}

	return views, nil
}
