package commands

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop a line from the cart
// regardless of its quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to drop a cart line.
// Validates that the item ID is a valid UUID.
func NewRemoveCartItemCommand(itemID kernel.UUID) (RemoveCartItemCommand, error) {
	removeCommand := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setItemID(itemID); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCartItemCommandIsNotConstructed if validation fails.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the cart line to drop.
func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
