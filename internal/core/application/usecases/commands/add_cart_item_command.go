package commands

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a catalog line into the
// cart. Adding an item that is already present merges the quantities.
//
// Example:
//
//	price, _ := kernel.NewMoney(350)
//	cmd, err := NewAddCartItemCommand(itemID, order.KindRecipe, "Paneer Tikka Kit", price, 1, "paneer.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid cart line: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	item order.LineItem

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a line to the cart.
// The line itself carries all validation: known kind, non-empty name,
// constructed price and a quantity of at least one.
func NewAddCartItemCommand(
	itemID kernel.UUID,
	kind order.ItemKind,
	name string,
	unitPrice kernel.Money,
	quantity int,
	imageRef string,
) (AddCartItemCommand, error) {
	item, err := order.NewLineItem(itemID, kind, name, unitPrice, quantity, imageRef)
	if err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCartItemCommandIsNotConstructed if validation fails.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Item returns the cart line to add.
func (c AddCartItemCommand) Item() order.LineItem {
	return c.item
}
