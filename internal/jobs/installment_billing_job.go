package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/pkg/reentry"

	"github.com/robfig/cron/v3"
)

// InstallmentBillingJob collects the periodic installment from every assigned
// order. Each order is billed from its first recorded operator; orders whose
// operator cannot cover the installment are skipped and retried on the next
// run.
type InstallmentBillingJob struct {
	handler    commands.PayInstallmentCommandHandler
	uowFactory commands.UoWFactory
	spec       string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewInstallmentBillingJob creates a new billing job with the given cron spec.
// Production runs weekly; tests shorten the spec to seconds.
func NewInstallmentBillingJob(
	handler commands.PayInstallmentCommandHandler,
	uowFactory commands.UoWFactory,
	spec string,
	logger *slog.Logger,
) *InstallmentBillingJob {
	return &InstallmentBillingJob{
		handler:    handler,
		uowFactory: uowFactory,
		spec:       spec,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "installment_billing_job"),
	}
}

// Start schedules the billing run.
func (j *InstallmentBillingJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.runOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Installment billing job started", "spec", j.spec)
	return nil
}

// Stop stops the billing job.
func (j *InstallmentBillingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Installment billing job stopped")
}

// runOnce bills every assigned order once. Per-order failures do not abort
// the sweep.
func (j *InstallmentBillingJob) runOnce(ctx context.Context) {
	uow := j.uowFactory.Create()

	orders, err := uow.FleetOrderRepository().GetAllInAssignedStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Installment billing job failed to list orders", "error", err)
		return
	}

	book, err := uow.AssignmentRepository().Get(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Installment billing job failed to load assignments", "error", err)
		return
	}

	for _, order := range orders {
		operators := book.OperatorsOf(order.ID())
		if len(operators) == 0 {
			j.logger.WarnContext(ctx, "Assigned order has no recorded operator", "orderID", order.ID())
			continue
		}

		payer := operators[0]
		cmd, err := commands.NewPayInstallmentCommand(payer, payer, order.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Installment billing job failed to build command",
				"orderID", order.ID(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, ports.ErrInsufficientBalance) &&
				!errors.Is(err, fleetorder.ErrInstallmentsFullyPaid) &&
				!errors.Is(err, reentry.ErrReentrantCall) {
				j.logger.ErrorContext(ctx, "Installment billing job failed",
					"orderID", order.ID(), "error", err)
			}
		}
	}
}
