package ports

import (
	"context"
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientBalance is returned by ValueLedger transfers when the
	// source account does not hold the requested amount.
	ErrInsufficientBalance = errors.New("insufficient ledger balance")

	// ErrNoReservation is returned by the reservation queue when no operator
	// is waiting.
	ErrNoReservation = errors.New("no operator reservation available")
)

// OwnershipRegistry is the fractional-ownership collaborator. It owns the
// fleet roster (how many orders exist, who owns which fractions, at what
// financed values) and the container numbering. The order book consumes it
// read-only except for StartNextContainer.
type OwnershipRegistry interface {
	// TotalFleet returns the number of financed orders known to the registry.
	// Order ids run 1..TotalFleet.
	TotalFleet(ctx context.Context) (int, error)

	// Owners returns the ordered list of accounts holding fractions of the
	// order.
	Owners(ctx context.Context, orderID int) ([]kernel.Address, error)

	// TotalSupply returns the aggregate fraction count currently owned for
	// the order.
	TotalSupply(ctx context.Context, orderID int) (uint64, error)

	// FractionsOwned returns the fraction count the owner holds in the order.
	FractionsOwned(ctx context.Context, orderID int, owner kernel.Address) (uint64, error)

	// MaxFleetFraction returns the registry's fixed maximum fraction count
	// per order.
	MaxFleetFraction(ctx context.Context) (uint64, error)

	// LockPeriod returns the installment count ceiling configured for the
	// order.
	LockPeriod(ctx context.Context, orderID int) (int, error)

	// ExpectedValue returns the order's total financed value in the
	// six-decimal value unit.
	ExpectedValue(ctx context.Context, orderID int) (uint64, error)

	// LiquidityProviderExpectedValue returns the order's total owner-yield
	// pool in the six-decimal value unit.
	LiquidityProviderExpectedValue(ctx context.Context, orderID int) (uint64, error)

	// ContainerCumulativeCount returns the total number of orders in
	// containers 1..containerID. The id range of a container is
	// (count(containerID-1), count(containerID)].
	ContainerCumulativeCount(ctx context.Context, containerID int) (int, error)

	// MaxOrdersPerContainer returns the registry's configured per-container
	// order maximum.
	MaxOrdersPerContainer(ctx context.Context) (int, error)

	// NextPlannedContainerSize returns the order count of the next container
	// without opening it. Read-only; callers validate against it before
	// committing to StartNextContainer.
	NextPlannedContainerSize(ctx context.Context) (int, error)

	// StartNextContainer closes the current container and opens the next,
	// returning the new container's sequential number. Side-effecting.
	StartNextContainer(ctx context.Context) (int, error)
}

// OperatorReservationQueue is the FIFO operator-reservation collaborator.
type OperatorReservationQueue interface {
	// NextReservation returns the next eligible operator and consumes the
	// reservation. Returns ErrNoReservation when the queue is empty.
	NextReservation(ctx context.Context) (kernel.Address, error)

	// Requeue restores a consumed reservation to the front of the queue.
	// Callers compensate with it when an assignment fails after the draw so
	// the operator keeps their place.
	Requeue(ctx context.Context, operator kernel.Address) error
}

// ValueLedger is the fungible-asset account book collaborator through which
// all value moves. The order book acts on its own system account when
// pushing value and pulls from payers with TransferFrom.
type ValueLedger interface {
	// BalanceOf returns the amount held by the account, in the ledger's
	// smallest unit.
	BalanceOf(ctx context.Context, account kernel.Address) (uint64, error)

	// Decimals returns the ledger's declared decimal precision.
	Decimals(ctx context.Context) (uint8, error)

	// Transfer moves amount from the system account to the destination.
	// Returns ErrInsufficientBalance if the system account holds less.
	Transfer(ctx context.Context, to kernel.Address, amount uint64) error

	// TransferFrom pulls amount from the source into the destination.
	// Returns ErrInsufficientBalance if the source holds less.
	TransferFrom(ctx context.Context, from, to kernel.Address, amount uint64) error
}

// RoleStore is the role/permission collaborator, keyed by (role, account).
// Grant and Revoke are idempotent: re-granting a held role and re-revoking
// an unheld role are both no-ops, not errors.
type RoleStore interface {
	HasRole(ctx context.Context, role access.Role, account kernel.Address) (bool, error)
	Grant(ctx context.Context, role access.Role, account kernel.Address) error
	Revoke(ctx context.Context, role access.Role, account kernel.Address) error
}
