package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OperatorAssignmentJob manages the scheduled assignment of operators to orders.
// Runs every second to match registered orders with reserved operators.
type OperatorAssignmentJob struct {
	handler    commands.AssignOperatorCommandHandler
	uowFactory commands.OrderUoWFactory
	capability access.Capability
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOperatorAssignmentJob creates a new job for assigning operators.
// The capability must hold the super admin role; the job acts on behalf of
// the system account.
func NewOperatorAssignmentJob(
	handler commands.AssignOperatorCommandHandler,
	uowFactory commands.OrderUoWFactory,
	capability access.Capability,
	logger *slog.Logger,
) *OperatorAssignmentJob {
	return &OperatorAssignmentJob{
		handler:    handler,
		uowFactory: uowFactory,
		capability: capability,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "operator_assignment_job"),
	}
}

// Start begins the operator assignment job to run every second.
func (j *OperatorAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		order, err := j.uowFactory.Create().FleetOrderRepository().GetFirstInRegisteredStatus(ctx)
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Operator assignment job failed to find order", "error", err)
			}
			return
		}

		cmd, err := commands.NewAssignOperatorCommand(j.capability, order.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Operator assignment job failed to build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOperatorReserved) {
				j.logger.ErrorContext(ctx, "Operator assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Operator assignment job started (running every second)")
	return nil
}

// Stop stops the operator assignment job.
func (j *OperatorAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Operator assignment job stopped")
}
