// Package jobs provides scheduled background tasks for the fleet order book.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. OperatorAssignmentJob - Runs every second to match registered orders with reserved operators
// 2. InstallmentBillingJob - Runs on a configurable schedule to collect installments from assigned orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(
//		assignOperatorHandler, payInstallmentHandler,
//		orderUoWFactory, uowFactory,
//		systemCapability, billingSpec, logger)
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
// The assignment job uses the cron expression "* * * * * *" and runs every
// second so reserved operators are matched with registered orders promptly.
// The billing job takes its cron expression from configuration; production
// deployments run it weekly to mirror the installment cadence.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no registered order, no reservation)
// - Billing job skips orders whose operator balance cannot cover the installment
// - Failed job starts will stop any already running jobs
package jobs
