package commands

import (
	"context"
)

// ChangeCartItemQuantityCommandHandler handles quantity adjustments on cart
// lines.
type ChangeCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartItemQuantityCommandHandler creates a handler for quantity
// adjustment operations. Requires a CartUoWFactory for transactional
// persistence.
func NewChangeCartItemQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartItemQuantityCommandHandler {
	return ChangeCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity adjustment command.
// Fails with a not-found error when the item is not in the cart.
func (h *ChangeCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartItemQuantityCommand) error {
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

	if err = basket.ChangeQuantity(cmd.ItemID(), cmd.Delta()); err != nil {
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
