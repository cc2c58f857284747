package ports

import (
	"context"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; they persist for history. The collection keeps
// newest-first ordering for display, which has no semantic meaning for
// correctness.
type OrderRepository interface {
	// Add persists a new order aggregate at the head of the collection.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders with the given delivery mode that
	// have not reached Delivered, newest first. The lifecycle clock uses
	// this with the Instant mode to find orders to tick.
	GetAllActive(ctx context.Context, mode order.DeliveryMode) ([]*order.Order, error)
}
