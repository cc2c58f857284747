package commands

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand represents a request to hand an order to a specific
// staff member. Assignment forces the order out for delivery and marks the
// staff member busy in the same transaction.
//
// Example:
//
//	cmd, err := NewAssignStaffCommand(orderID, staffID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignStaffCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates a command to assign a staff member to an order.
// Validates that both identifiers are valid UUIDs.
// Returns an error if any validation fails.
func NewAssignStaffCommand(orderID, staffID kernel.UUID) (AssignStaffCommand, error) {
	assignCommand := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setStaffID(staffID),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignStaffCommandIsNotConstructed if validation fails.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to hand over.
func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the identifier of the staff member taking the order.
func (c AssignStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *AssignStaffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
