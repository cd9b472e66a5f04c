package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob manages the scheduled recovery of payments whose
// outcome was lost in transit. Pending orders with a confirmed charge at the
// provider are promoted to paid.
type PaymentReconciliationJob struct {
	handler commands.ReconcilePaymentsCommandHandler
	minAge  time.Duration
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReconciliationJob creates a new job for reconciling payments.
// minAge keeps freshly created orders out of reconciliation while their
// first charge attempt may still be in flight.
func NewPaymentReconciliationJob(
	handler commands.ReconcilePaymentsCommandHandler,
	minAge time.Duration,
	spec string,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		handler: handler,
		minAge:  minAge,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its configured schedule.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcilePaymentsCommand(j.minAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation job misconfigured", "error", cmdErr)
			return
		}

		promoted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation job failed", "error", handleErr)
			return
		}

		if promoted > 0 {
			j.logger.InfoContext(ctx, "Reconciled confirmed payments", "count", promoted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started", "schedule", j.spec)
	return nil
}

// Stop stops the reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
