package memory

import (
	"context"

	"kitcart/internal/core/domain/model/cart"
)

// CartRepository implements ports.CartRepository over the unit of work's
// staged state. The storefront keeps a single cart, so there is no id.
type CartRepository struct {
	uow *UnitOfWork
}

// Get retrieves the cart from the staged state.
func (r *CartRepository) Get(_ context.Context) (*cart.Cart, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return cartFromRecords(r.uow.cart)
}

// Save stages the cart's current contents, replacing the previous ones.
func (r *CartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	r.uow.cart = cartToRecords(aggregate)
	return nil
}
