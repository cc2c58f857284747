package commands

import (
	"context"
)

// AddCartItemCommandHandler handles adding lines to the cart.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	cmd, _ := NewAddCartItemCommand(itemID, order.KindAddon, "Garlic Naan", price, 2, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart add operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart add command.
// Merges quantities when the item is already in the cart.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	if err = basket.AddItem(cmd.Item()); err != nil {
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
