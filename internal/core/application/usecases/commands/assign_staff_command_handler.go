package commands

import (
	"context"

	"kitcart/internal/core/domain/services"
)

// AssignStaffCommandHandler orchestrates the delivery handover.
// Loads the order and the staff member, binds them through the Dispatcher
// domain service and persists both sides within a single transaction, so an
// observer never sees an assigned order with a still-available staff member.
//
// Example:
//
//	handler := NewAssignStaffCommandHandler(uowFactory)
//	cmd, _ := NewAssignStaffCommand(orderID, staffID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Order or staff member does not exist")
//	}
type AssignStaffCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignStaffCommandHandler creates a handler for handover operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignStaffCommandHandler(uowFactory UoWFactory) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the handover command.
// Fails with a not-found error when either side does not exist, and with a
// status error when the order is already delivered. On success the order is
// out for delivery and the staff member is busy with it.
func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
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
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	member, err := staffRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	if err = services.NewDispatcher().Assign(aggregate, member); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
