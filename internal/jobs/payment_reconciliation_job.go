package jobs

import (
	"context"
	"log/slog"

	"quickdrop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the sweep at the top of every minute.
const DefaultReconcileSchedule = "0 * * * * *"

// PaymentReconciler is satisfied by commands.ReconcilePaymentsCommandHandler.
type PaymentReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcilePaymentsCommand) (commands.ReconcilePaymentsResult, error)
}

// PaymentReconciliationJob marks parcels paid for payments that were stored
// without the parcel being updated.
type PaymentReconciliationJob struct {
	handler   PaymentReconciler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPaymentReconciliationJob creates the sweeper. An empty schedule falls back
// to DefaultReconcileSchedule. Overlapping runs are skipped.
func NewPaymentReconciliationJob(handler PaymentReconciler, schedule string, logger *slog.Logger) *PaymentReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &PaymentReconciliationJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: commands.DefaultReconcileBatchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "payment_reconciliation_job"),
	}
}

// Start registers the sweep and starts the scheduler. A malformed schedule is
// reported here rather than at the first tick.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs a single sweep.
func (j *PaymentReconciliationJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcilePaymentsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reconciliation job misconfigured", "error", err)
		return
	}

	res, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reconciliation finished with failures",
			"scanned", res.Scanned,
			"reconciled", res.Reconciled,
			"failed", res.Failed,
			"error", err,
		)
		return
	}
	if res.Scanned > 0 {
		j.logger.InfoContext(ctx, "Payment reconciliation finished",
			"scanned", res.Scanned,
			"reconciled", res.Reconciled,
		)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PaymentReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
