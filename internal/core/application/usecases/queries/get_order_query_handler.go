package queries

import (
	"context"
)

// GetOrderQueryHandler retrieves a single order from the backing store.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(store)
//	query, _ := NewGetOrderQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s, ETA %d min\n", view.ID, view.Status, view.ETAMinutes)
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown identifiers.
func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	aggregate, err := h.reader.GetOrder(query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(aggregate)
}
