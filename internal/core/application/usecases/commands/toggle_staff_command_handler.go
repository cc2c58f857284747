package commands

import (
	"context"
)

// ToggleStaffCommandHandler handles manual duty status flips.
// Loads the staff member, toggles between available and busy and persists
// the change.
//
// Example:
//
//	handler := NewToggleStaffCommandHandler(uowFactory)
//	cmd, _ := NewToggleStaffCommand(staffID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("toggle failed: %w", err)
//	}
type ToggleStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewToggleStaffCommandHandler creates a handler for duty toggle operations.
// Requires a StaffUoWFactory for transactional persistence.
func NewToggleStaffCommandHandler(uowFactory StaffUoWFactory) ToggleStaffCommandHandler {
	return ToggleStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
// Propagates a not-found error unchanged when the staff member does not exist.
func (h *ToggleStaffCommandHandler) Handle(ctx context.Context, cmd ToggleStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	member, err := staffRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	member.Toggle()

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
