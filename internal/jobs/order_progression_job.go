package jobs

import (
	"context"
	"log/slog"

	"kitcart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProgressionJob drives the lifecycle clock for instant orders.
// Runs once a minute: every run decrements each active instant order's
// delivery countdown and advances it through packing, delivery and
// completion as the thresholds are crossed.
type OrderProgressionJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressionJob creates a new job for advancing orders.
// Uses AdvanceOrdersCommandHandler to process one tick per minute.
func NewOrderProgressionJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progression_job"),
	}
}

// Start begins the order progression job to run at the top of every minute.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started (running every minute)")
	return nil
}

// Stop stops the order progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}
