package commands

import (
	"errors"

	"kitcart/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand triggers one lifecycle tick over all active instant
// orders. Each tick counts the delivery countdown down by one minute and
// moves orders through packing, delivery and completion as the countdown
// crosses the packing and handover thresholds.
//
// Example:
//
//	cmd := NewAdvanceOrdersCommand()
//	handler := NewAdvanceOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Tick failed: %v", err)
//	}
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a new command to trigger a lifecycle tick.
// This is a parameterless command, typically issued by the scheduler.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrdersCommandIsNotConstructed if validation fails.
func (c *AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrAdvanceOrdersCommandIsNotConstructed,
	)
}
