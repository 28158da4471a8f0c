package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The validate-then-commit discipline of the bulk and payment paths relies
// on this boundary: a command either commits all of its writes or rolls back
// to a state with zero mutation.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// FleetOrderRepository returns a FleetOrderRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	FleetOrderRepository() FleetOrderRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	AssignmentRepository() AssignmentRepository
}
