package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob manages the scheduled cleanup of abandoned orders.
// Orders that sat unpaid past the cutoff are cancelled, unless a charge for
// them may already exist at the payment provider.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for cancelling stale orders.
// The schedule is a six-field cron spec; maxAge is how long an unpaid order
// may sit before it is considered abandoned.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	spec string,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		maxAge:  maxAge,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the cancellation job on its configured schedule.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started", "schedule", j.spec)
	return nil
}

// Stop stops the cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
