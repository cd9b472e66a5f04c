package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCancellationJob *StaleOrderCancellationJob
	paymentReconciliationJob  *PaymentReconciliationJob
}

// JobConfig carries the schedules and age cutoffs for the background jobs.
type JobConfig struct {
	StaleOrderSchedule string
	StaleOrderMaxAge   time.Duration
	ReconcileSchedule  string
	ReconcileMinAge    time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	reconcilePaymentsHandler commands.ReconcilePaymentsCommandHandler,
	cfg JobConfig,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCancellationJob: NewStaleOrderCancellationJob(
			cancelStaleOrdersHandler, cfg.StaleOrderMaxAge, cfg.StaleOrderSchedule, logger,
		),
		paymentReconciliationJob: NewPaymentReconciliationJob(
			reconcilePaymentsHandler, cfg.ReconcileMinAge, cfg.ReconcileSchedule, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reconciliation job: %w", err)
	}

	if err := jm.staleOrderCancellationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentReconciliationJob.Stop()
		return fmt.Errorf("failed to start stale order cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderCancellationJob.Stop()
	jm.paymentReconciliationJob.Stop()
}
