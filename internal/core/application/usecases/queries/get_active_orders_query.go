package queries

import (
	"errors"

	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all non-delivered orders for one delivery
// mode, newest first. Backs the instant and scheduled tracking boards.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(order.ModeInstant)
//	if err != nil {
//	    return fmt.Errorf("invalid mode: %w", err)
//	}
//
//	handler := NewGetActiveOrdersQueryHandler(store)
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list active orders: %w", err)
//	}
//	fmt.Printf("%d orders in flight\n", len(views))
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	deliveryMode order.DeliveryMode

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to list active orders.
// Validates that the delivery mode is a known one.
func NewGetActiveOrdersQuery(mode order.DeliveryMode) (GetActiveOrdersQuery, error) {
	if err := mode.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		deliveryMode: mode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// DeliveryMode returns the delivery mode to list.
func (q GetActiveOrdersQuery) DeliveryMode() order.DeliveryMode {
	return q.deliveryMode
}
