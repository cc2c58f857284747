package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles dropping lines from the cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart remove operations.
// Requires a CartUoWFactory for transactional persistence.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart remove command.
// Fails with a not-found error when the item is not in the cart.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	basket, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = basket.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, basket); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
