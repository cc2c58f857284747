// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Runs once a minute to advance active instant
// orders through their delivery lifecycle.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The progression job uses the cron expression "0 * * * * *", firing at the
// top of every minute. One firing equals one countdown minute, so wall-clock
// time and the delivery countdown move together.
//
// # Error Handling
//
// The progression job logs every error; a failed tick leaves the order book
// unchanged and the next tick retries from the committed state.
package jobs
