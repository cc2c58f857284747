package queries

import (
	"errors"

	"kitcart/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the active cart with its running subtotal.
type GetCartQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to read the cart.
// This is a parameterless query.
func NewGetCartQuery() GetCartQuery {
	return GetCartQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}
