package commands

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/guard"
)

var ErrToggleStaffCommandIsNotConstructed = errors.New(
	"ToggleStaffCommand must be created via NewToggleStaffCommand constructor",
)

// ToggleStaffCommand represents a manual flip of a staff member's duty
// status. Toggling a busy member back to available also releases the order
// binding they were carrying.
//
// Example:
//
//	cmd, err := NewToggleStaffCommand(staffID)
//	if err != nil {
//	    return fmt.Errorf("invalid toggle: %w", err)
//	}
//
//	handler := NewToggleStaffCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("toggle failed: %w", err)
//	}
type ToggleStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleStaffCommand creates a command to flip a staff member's status.
// Validates that the staff ID is a valid UUID.
func NewToggleStaffCommand(staffID kernel.UUID) (ToggleStaffCommand, error) {
	toggleCommand := ToggleStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := toggleCommand.setStaffID(staffID); err != nil {
		return ToggleStaffCommand{}, err
	}

	return toggleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleStaffCommandIsNotConstructed if validation fails.
func (c ToggleStaffCommand) Validate() error {
	return c.guard.Validate(ErrToggleStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member to toggle.
func (c ToggleStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *ToggleStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
