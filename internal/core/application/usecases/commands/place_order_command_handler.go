package commands

import (
	"context"
	"errors"
	"time"

	"kitcart/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when checkout is attempted on an empty cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// PlaceOrderCommandHandler handles the business logic for checkout.
// Snapshots the cart into a new pending order and clears the cart, both
// within a single transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), order.ModeInstant, nil)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrCartIsEmpty) {
//	    log.Println("Nothing to check out")
//	}
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory spanning the cart and the order book.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Reads the cart, creates a pending order from its snapshot with the
// delivery surcharge applied, and empties the cart. Returns ErrCartIsEmpty
// without touching the order book when there is nothing to check out.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	basket, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}
	if basket.IsEmpty() {
		return ErrCartIsEmpty
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		basket.Snapshot(),
		cmd.DeliveryMode(),
		cmd.ScheduledFor(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return err
	}

	basket.Clear()
	if err = cartRepo.Save(ctx, basket); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
