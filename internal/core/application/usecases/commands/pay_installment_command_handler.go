package commands

import (
	"context"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/domain/services"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/reentry"
)

// PayInstallmentCommandHandler settles one weekly installment. Pulls the
// installment amount from the sender into the system account, increments the
// order's counter, and fans the owner-yield share out proportionally across
// the order's current fractional owners. Reentry-guarded: the ledger
// collaborator is an external party and must not re-enter a payment in
// flight.
//
// Example:
//
//	handler := NewPayInstallmentCommandHandler(uowFactory, registry, ledger,
//	    publisher, systemAccount)
//	cmd, _ := NewPayInstallmentCommand(sender, sender, 1)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, fleetorder.ErrInstallmentsFullyPaid):
//	    log.Println("Order is fully paid")
//	case errors.Is(err, ports.ErrInsufficientBalance):
//	    log.Println("Sender cannot cover the installment")
//	}
type PayInstallmentCommandHandler struct {
	uowFactory    OrderUoWFactory
	registry      ports.OwnershipRegistry
	ledger        ports.ValueLedger
	publisher     ports.EventPublisher
	systemAccount kernel.Address
	calculator    services.YieldCalculator
	inFlight      *reentry.Guard
}

// NewPayInstallmentCommandHandler creates a handler for installment payments.
// The system account receives installments and funds yield payouts.
func NewPayInstallmentCommandHandler(
	uowFactory OrderUoWFactory,
	registry ports.OwnershipRegistry,
	ledger ports.ValueLedger,
	publisher ports.EventPublisher,
	systemAccount kernel.Address,
) PayInstallmentCommandHandler {
	return PayInstallmentCommandHandler{
		uowFactory:    uowFactory,
		registry:      registry,
		ledger:        ledger,
		publisher:     publisher,
		systemAccount: systemAccount,
		calculator:    services.NewYieldCalculator(),
		inFlight:      &reentry.Guard{},
	}
}

// Handle processes the installment payment under the reentry guard.
// Returns reentry.ErrReentrantCall if a payment or withdrawal sharing the
// guard is already in flight.
func (h PayInstallmentCommandHandler) Handle(ctx context.Context, command PayInstallmentCommand) error {
	return h.inFlight.Do(func() error {
		return h.handle(ctx, command)
	})
}

// handle runs the payment in validate-then-commit order. All preconditions
// and amounts are resolved before the first ledger movement; local state is
// committed only after every transfer succeeded.
func (h PayInstallmentCommandHandler) handle(ctx context.Context, command PayInstallmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	totalFleet, err := h.registry.TotalFleet(ctx)
	if err != nil {
		return err
	}
	if command.OrderID() > totalFleet {
		return errs.NewValueIsOutOfRangeError("orderID", command.OrderID(), 1, totalFleet)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.FleetOrderRepository()

	order, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if order.Status() != fleetorder.Assigned {
		return fleetorder.ErrOrderNotAssigned
	}

	lockPeriod, err := h.registry.LockPeriod(ctx, order.ID())
	if err != nil {
		return err
	}
	if order.InstallmentsPaid() >= lockPeriod {
		return fleetorder.ErrInstallmentsFullyPaid
	}

	split, err := h.resolveSplit(ctx, order.ID(), lockPeriod)
	if err != nil {
		return err
	}

	payouts, err := h.resolvePayouts(ctx, order.ID(), split.AmountPerFraction)
	if err != nil {
		return err
	}

	// First ledger movement. Everything before this point is read-only.
	if err = h.ledger.TransferFrom(ctx, command.Sender(), h.systemAccount, split.InstallmentAmount); err != nil {
		return err
	}

	paid, err := order.RecordInstallment(lockPeriod)
	if err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	for _, payout := range payouts {
		if payout.amount == 0 {
			continue
		}
		if err = h.ledger.Transfer(ctx, payout.owner, payout.amount); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx,
		events.NewInstallmentPaid(order.ID(), paid, split.InstallmentAmount, command.Payer()))
	for _, payout := range payouts {
		if payout.amount == 0 {
			continue
		}
		_ = h.publisher.Publish(ctx,
			events.NewDividendPaid(order.ID(), payout.owner, payout.amount))
	}
	_ = h.publisher.Publish(ctx,
		events.NewYieldDistributed(order.ID(), split.AmountPerFraction, len(payouts)))

	return nil
}

// resolveSplit gathers the registry and ledger figures and computes the
// installment charge and per-fraction yield.
func (h PayInstallmentCommandHandler) resolveSplit(
	ctx context.Context, orderID, lockPeriod int,
) (services.InstallmentSplit, error) {
	expectedValue, err := h.registry.ExpectedValue(ctx, orderID)
	if err != nil {
		return services.InstallmentSplit{}, err
	}
	lpExpectedValue, err := h.registry.LiquidityProviderExpectedValue(ctx, orderID)
	if err != nil {
		return services.InstallmentSplit{}, err
	}
	maxFraction, err := h.registry.MaxFleetFraction(ctx)
	if err != nil {
		return services.InstallmentSplit{}, err
	}
	decimals, err := h.ledger.Decimals(ctx)
	if err != nil {
		return services.InstallmentSplit{}, err
	}

	return h.calculator.Split(expectedValue, lpExpectedValue, lockPeriod, decimals, maxFraction)
}

type ownerPayout struct {
	owner  kernel.Address
	amount uint64
}

// resolvePayouts computes each current owner's yield for this installment.
func (h PayInstallmentCommandHandler) resolvePayouts(
	ctx context.Context, orderID int, amountPerFraction uint64,
) ([]ownerPayout, error) {
	owners, err := h.registry.Owners(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payouts := make([]ownerPayout, 0, len(owners))
	for _, owner := range owners {
		fractions, fracErr := h.registry.FractionsOwned(ctx, orderID, owner)
		if fracErr != nil {
			return nil, fracErr
		}
		amount, payoutErr := h.calculator.OwnerPayout(fractions, amountPerFraction)
		if payoutErr != nil {
			return nil, payoutErr
		}
		payouts = append(payouts, ownerPayout{
			owner:  owner,
			amount: amount,
		})
	}
	return payouts, nil
}
