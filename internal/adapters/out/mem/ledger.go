package mem

import (
	"context"
	"sync"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
)

// Ledger is an in-memory ValueLedger keeping account balances in the
// smallest unit. Transfer moves value out of the configured system account.
type Ledger struct {
	mu sync.Mutex

	systemAccount kernel.Address
	decimals      uint8
	balances      map[string]uint64
}

// NewLedger creates an empty ledger acting on behalf of the system account.
func NewLedger(systemAccount kernel.Address, decimals uint8) *Ledger {
	return &Ledger{
		systemAccount: systemAccount,
		decimals:      decimals,
		balances:      make(map[string]uint64),
	}
}

// Mint credits an account out of thin air. Seeding helper for tests and
// local development.
func (l *Ledger) Mint(account kernel.Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[account.String()] += amount
}

func (l *Ledger) BalanceOf(_ context.Context, account kernel.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[account.String()], nil
}

func (l *Ledger) Decimals(_ context.Context) (uint8, error) {
	return l.decimals, nil
}

func (l *Ledger) Transfer(_ context.Context, to kernel.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.move(l.systemAccount, to, amount)
}

func (l *Ledger) TransferFrom(_ context.Context, from, to kernel.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.move(from, to, amount)
}

// move requires the caller to hold the mutex.
func (l *Ledger) move(from, to kernel.Address, amount uint64) error {
	fromKey := from.String()
	if l.balances[fromKey] < amount {
		return ports.ErrInsufficientBalance
	}

	l.balances[fromKey] -= amount
	l.balances[to.String()] += amount
	return nil
}
