package commands

import (
	"context"

	"kitcart/internal/core/domain/model/order"
)

// AdvanceOrdersCommandHandler runs the lifecycle clock over the order book.
// Loads every active instant order, advances each one by a single tick and
// persists the results. Scheduled orders are untouched; they hold their
// status until staff picks them up.
//
// Example:
//
//	handler := NewAdvanceOrdersCommandHandler(uowFactory)
//	cmd := NewAdvanceOrdersCommand()
//
//	// This would typically be called once a minute by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order progression failed: %w", err)
//	}
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrdersCommandHandler creates a handler for lifecycle tick operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one lifecycle tick.
// All orders advance within a single transaction, so a reader never observes
// the book half way through a tick.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.GetAllActive(ctx, order.ModeInstant)
	if err != nil {
		return err
	}

	for _, aggregate := range active {
		aggregate.Tick()

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
