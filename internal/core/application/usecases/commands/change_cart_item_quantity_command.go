package commands

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/guard"
)

var (
	ErrChangeCartItemQuantityCommandIsNotConstructed = errors.New(
		"ChangeCartItemQuantityCommand must be created via NewChangeCartItemQuantityCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must be non-zero")
)

// ChangeCartItemQuantityCommand represents a stepper press on a cart line:
// a positive delta adds units, a negative one removes them. The quantity
// never drops below one; removing a line entirely is a separate command.
type ChangeCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	delta  int

	guard guard.ConstructorGuard
}

// NewChangeCartItemQuantityCommand creates a command to adjust a cart line's
// quantity. Validates that the item ID is a valid UUID and the delta is
// non-zero.
func NewChangeCartItemQuantityCommand(itemID kernel.UUID, delta int) (ChangeCartItemQuantityCommand, error) {
	quantityCommand := ChangeCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quantityCommand.setItemID(itemID),
		quantityCommand.setDelta(delta),
	); err != nil {
		return ChangeCartItemQuantityCommand{}, err
	}

	return quantityCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeCartItemQuantityCommandIsNotConstructed if validation fails.
func (c ChangeCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartItemQuantityCommandIsNotConstructed)
}

// ItemID returns the identifier of the cart line to adjust.
func (c ChangeCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Delta returns the signed quantity adjustment.
func (c ChangeCartItemQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeCartItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeCartItemQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
