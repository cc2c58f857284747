package commands

import (
	"errors"
	"time"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrScheduledForIsRequired = errors.New("scheduledFor is required for scheduled delivery")
	ErrScheduledForIsNotAllowed = errors.New("scheduledFor is only valid for scheduled delivery")
)

// PlaceOrderCommand represents a checkout request: turn the current cart
// into a placed order with the chosen delivery mode.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, order.ModeInstant, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	deliveryMode order.DeliveryMode
	scheduledFor *time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to check out the cart.
// Validates that order ID is valid, the delivery mode is known, and a
// scheduled time is supplied exactly when the mode is scheduled.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	deliveryMode order.DeliveryMode,
	scheduledFor *time.Time,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setDelivery(deliveryMode, scheduledFor),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order to create.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryMode returns the requested delivery mode.
func (c PlaceOrderCommand) DeliveryMode() order.DeliveryMode {
	return c.deliveryMode
}

// ScheduledFor returns the requested delivery time, nil for instant delivery.
func (c PlaceOrderCommand) ScheduledFor() *time.Time {
	if c.scheduledFor == nil {
		return nil
	}
	scheduled := *c.scheduledFor
	return &scheduled
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setDelivery(mode order.DeliveryMode, scheduledFor *time.Time) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if mode == order.ModeScheduled && scheduledFor == nil {
		return ErrScheduledForIsRequired
	}
	if mode == order.ModeInstant && scheduledFor != nil {
		return ErrScheduledForIsNotAllowed
	}

	c.deliveryMode = mode
	if scheduledFor != nil {
		scheduled := *scheduledFor
		c.scheduledFor = &scheduled
	}
	return nil
}
