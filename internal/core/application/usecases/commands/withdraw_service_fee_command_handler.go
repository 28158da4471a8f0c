package commands

import (
	"context"
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/pkg/reentry"
)

// ErrNothingToWithdraw is returned when the system account's ledger balance
// is zero.
var ErrNothingToWithdraw = errors.New("system account balance is zero")

// WithdrawServiceFeeCommandHandler sweeps the system account's entire ledger
// balance to the destination. Withdrawal gated and reentry-guarded; the
// sweep reads the balance once and transfers exactly that amount.
type WithdrawServiceFeeCommandHandler struct {
	ledger        ports.ValueLedger
	systemAccount kernel.Address
	inFlight      *reentry.Guard
}

// NewWithdrawServiceFeeCommandHandler creates a handler for fee withdrawal.
func NewWithdrawServiceFeeCommandHandler(
	ledger ports.ValueLedger, systemAccount kernel.Address,
) WithdrawServiceFeeCommandHandler {
	return WithdrawServiceFeeCommandHandler{
		ledger:        ledger,
		systemAccount: systemAccount,
		inFlight:      &reentry.Guard{},
	}
}

// Handle processes the withdrawal command under the reentry guard.
// Returns ErrPermissionDenied without the withdrawal role,
// ErrNothingToWithdraw on a zero balance, and reentry.ErrReentrantCall if a
// withdrawal is already in flight.
func (h WithdrawServiceFeeCommandHandler) Handle(ctx context.Context, command WithdrawServiceFeeCommand) error {
	return h.inFlight.Do(func() error {
		if err := command.Validate(); err != nil {
			return err
		}
		if !command.Capability().Has(access.RoleWithdrawal) {
			return ErrPermissionDenied
		}

		balance, err := h.ledger.BalanceOf(ctx, h.systemAccount)
		if err != nil {
			return err
		}
		if balance == 0 {
			return ErrNothingToWithdraw
		}

		return h.ledger.Transfer(ctx, command.Destination(), balance)
	})
}
