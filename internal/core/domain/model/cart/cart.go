// Package cart contains the shopping cart aggregate.
//
// The cart collects priced line items before checkout. Placing an order
// consumes a deep-copied snapshot of the lines and clears the cart, so the
// placed order is insulated from any later cart mutation.
package cart

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/errs"
	"kitcart/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the aggregate holding the lines a customer intends to order.
//
// Business rules:
//   - adding an item already in the cart merges quantities instead of
//     creating a duplicate line
//   - quantity adjustments are floored at 1; removal is explicit
//   - Snapshot returns copies, so callers can never mutate cart internals
type Cart struct {
	items []order.LineItem

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCart reconstructs a cart from stored lines. Used by the storage
// adapter; the lines are deep-copied.
func RestoreCart(items []order.LineItem) (*Cart, error) {
	c := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)

	return c, nil
}

// Validate checks if the Cart was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []order.LineItem {
	out := make([]order.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot returns the cart lines for order placement.
// The returned slice is a deep copy; placing the snapshot and then mutating
// the cart cannot affect the order built from it.
func (c *Cart) Snapshot() []order.LineItem {
	return c.Items()
}

// Subtotal returns the sum of all line subtotals, without surcharge.
func (c *Cart) Subtotal() (kernel.Money, error) {
	total, err := kernel.NewMoney(0)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range c.items {
		subtotal, subErr := item.Subtotal()
		if subErr != nil {
			return kernel.Money{}, subErr
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// AddItem adds a line to the cart. If a line for the same catalog item
// already exists its quantity is increased instead of adding a duplicate.
func (c *Cart) AddItem(item order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i, existing := range c.items {
		if existing.IsSameItem(item) {
			merged, err := existing.WithQuantity(existing.Quantity() + item.Quantity())
			if err != nil {
				return err
			}
			c.items[i] = merged
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes the line for the given catalog item.
// Returns ObjectNotFound if the item is not in the cart.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	for i, existing := range c.items {
		if existing.ItemID().IsEqual(itemID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemId", itemID.String())
}

// ChangeQuantity adjusts the quantity of a line by delta, floored at 1.
// Returns ObjectNotFound if the item is not in the cart.
func (c *Cart) ChangeQuantity(itemID kernel.UUID, delta int) error {
	for i, existing := range c.items {
		if existing.ItemID().IsEqual(itemID) {
			quantity := existing.Quantity() + delta
			if quantity < 1 {
				quantity = 1
			}
			changed, err := existing.WithQuantity(quantity)
			if err != nil {
				return err
			}
			c.items[i] = changed
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemId", itemID.String())
}

// Clear removes all lines from the cart.
func (c *Cart) Clear() {
	c.items = nil
}
