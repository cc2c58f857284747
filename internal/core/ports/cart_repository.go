package ports

import (
	"context"

	"kitcart/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for the active cart.
// There is a single process-wide cart; Get always succeeds, returning an
// empty cart when nothing has been added yet.
type CartRepository interface {
	// Get retrieves the current cart.
	Get(ctx context.Context) (*cart.Cart, error)

	// Save persists the cart state, replacing the previous state.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
