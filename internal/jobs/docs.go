// Package jobs provides scheduled background tasks for the order backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Cancels orders that sat unpaid past the configured cutoff
// 2. PaymentReconciliationJob - Promotes pending orders whose charge the provider confirms
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelHandler, reconcileHandler, cfg, logger)
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
// Both jobs take six-field cron specs, so schedules down to one second are
// possible. Typical deployments run them once a minute.
//
// # Error Handling
//
// - Both jobs log failures and wait for the next tick; one bad run never stops the schedule
// - The cancellation job leaves any order alone when the provider may already hold a charge for it
// - Failed job starts will stop any already running jobs
package jobs
