package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var ErrPayInstallmentCommandIsNotConstructed = errors.New(
	"PayInstallmentCommand must be created via NewPayInstallmentCommand constructor",
)

// PayInstallmentCommand represents a request to settle one weekly installment
// for an assigned order. Open to any caller: the installment is pulled from
// the sender's ledger account, while the payer field is attribution only and
// carried through to the published event.
//
// Example:
//
//	cmd, err := NewPayInstallmentCommand(sender, sender, 1)
//	if err != nil {
//	    return err
//	}
//	handler := NewPayInstallmentCommandHandler(uowFactory, registry, ledger,
//	    publisher, systemAccount)
//	err = handler.Handle(ctx, cmd)
type PayInstallmentCommand struct { //nolint:recvcheck //using for validation
	sender  kernel.Address
	payer   kernel.Address
	orderID int

	guard guard.ConstructorGuard
}

// NewPayInstallmentCommand creates a command to pay an installment.
// Validates that the sender account is set and the order id is positive.
// A zero payer is attributed to the sender.
func NewPayInstallmentCommand(sender, payer kernel.Address, orderID int) (PayInstallmentCommand, error) {
	command := PayInstallmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSender(sender),
		command.setOrderID(orderID),
	); err != nil {
		return PayInstallmentCommand{}, err
	}

	command.payer = payer
	if payer.Validate() != nil {
		command.payer = sender
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayInstallmentCommandIsNotConstructed if validation fails.
func (c PayInstallmentCommand) Validate() error {
	return c.guard.Validate(ErrPayInstallmentCommandIsNotConstructed)
}

// Sender returns the account the installment is pulled from.
func (c PayInstallmentCommand) Sender() kernel.Address {
	return c.sender
}

// Payer returns the account the payment is attributed to.
func (c PayInstallmentCommand) Payer() kernel.Address {
	return c.payer
}

// OrderID returns the order being paid.
func (c PayInstallmentCommand) OrderID() int {
	return c.orderID
}

func (c *PayInstallmentCommand) setSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *PayInstallmentCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}
