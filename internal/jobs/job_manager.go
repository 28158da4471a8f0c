package jobs

import (
	"fmt"
	"log/slog"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/access"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	operatorAssignmentJob *OperatorAssignmentJob
	installmentBillingJob *InstallmentBillingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
// The system capability authorizes automated assignments; billingSpec is the
// cron expression for the installment sweep.
func NewJobManager(
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	payInstallmentHandler commands.PayInstallmentCommandHandler,
	orderUoWFactory commands.OrderUoWFactory,
	uowFactory commands.UoWFactory,
	systemCapability access.Capability,
	billingSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		operatorAssignmentJob: NewOperatorAssignmentJob(
			assignOperatorHandler, orderUoWFactory, systemCapability, logger),
		installmentBillingJob: NewInstallmentBillingJob(
			payInstallmentHandler, uowFactory, billingSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.operatorAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start operator assignment job: %w", err)
	}

	if err := jm.installmentBillingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.operatorAssignmentJob.Stop()
		return fmt.Errorf("failed to start installment billing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.installmentBillingJob.Stop()
	jm.operatorAssignmentJob.Stop()
}
