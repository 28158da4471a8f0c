package events

import (
	"strconv"
	"time"

	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/domain/model/kernel"
)

// DomainEvent is implemented by every event the application layer publishes.
// Name identifies the event type on the wire; Key groups events of the same
// order onto one partition.
type DomainEvent interface {
	Name() string
	Key() string
}

// StatusChanged is published once per order whose lifecycle status moved.
type StatusChanged struct {
	OrderID    int       `json:"order_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewStatusChanged(orderID int, from, to fleetorder.Status) StatusChanged {
	return StatusChanged{
		OrderID:    orderID,
		From:       from.String(),
		To:         to.String(),
		OccurredAt: time.Now().UTC(),
	}
}

func (e StatusChanged) Name() string { return "fleetorder.status_changed" }
func (e StatusChanged) Key() string  { return strconv.Itoa(e.OrderID) }

// InstallmentPaid is published after an installment settles, carrying the
// new cumulative count.
type InstallmentPaid struct {
	OrderID    int       `json:"order_id"`
	Paid       int       `json:"paid"`
	Amount     uint64    `json:"amount"`
	Payer      string    `json:"payer"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewInstallmentPaid(orderID, paid int, amount uint64, payer kernel.Address) InstallmentPaid {
	return InstallmentPaid{
		OrderID:    orderID,
		Paid:       paid,
		Amount:     amount,
		Payer:      payer.String(),
		OccurredAt: time.Now().UTC(),
	}
}

func (e InstallmentPaid) Name() string { return "fleetorder.installment_paid" }
func (e InstallmentPaid) Key() string  { return strconv.Itoa(e.OrderID) }

// DividendPaid is published once per owner receiving a yield payout.
type DividendPaid struct {
	OrderID    int       `json:"order_id"`
	Owner      string    `json:"owner"`
	Amount     uint64    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewDividendPaid(orderID int, owner kernel.Address, amount uint64) DividendPaid {
	return DividendPaid{
		OrderID:    orderID,
		Owner:      owner.String(),
		Amount:     amount,
		OccurredAt: time.Now().UTC(),
	}
}

func (e DividendPaid) Name() string { return "fleetorder.dividend_paid" }
func (e DividendPaid) Key() string  { return strconv.Itoa(e.OrderID) }

// YieldDistributed summarizes one installment's whole yield fan-out.
type YieldDistributed struct {
	OrderID           int       `json:"order_id"`
	AmountPerFraction uint64    `json:"amount_per_fraction"`
	Owners            int       `json:"owners"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func NewYieldDistributed(orderID int, amountPerFraction uint64, owners int) YieldDistributed {
	return YieldDistributed{
		OrderID:           orderID,
		AmountPerFraction: amountPerFraction,
		Owners:            owners,
		OccurredAt:        time.Now().UTC(),
	}
}

func (e YieldDistributed) Name() string { return "fleetorder.yield_distributed" }
func (e YieldDistributed) Key() string  { return strconv.Itoa(e.OrderID) }

// OperatorAssigned is published when an operator is recorded for an order.
type OperatorAssigned struct {
	OrderID    int       `json:"order_id"`
	Operator   string    `json:"operator"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOperatorAssigned(orderID int, operator kernel.Address) OperatorAssigned {
	return OperatorAssigned{
		OrderID:    orderID,
		Operator:   operator.String(),
		OccurredAt: time.Now().UTC(),
	}
}

func (e OperatorAssigned) Name() string { return "fleetorder.operator_assigned" }
func (e OperatorAssigned) Key() string  { return strconv.Itoa(e.OrderID) }
