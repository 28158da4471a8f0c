package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/guard"
)

var ErrWithdrawServiceFeeCommandIsNotConstructed = errors.New(
	"WithdrawServiceFeeCommand must be created via NewWithdrawServiceFeeCommand constructor",
)

// WithdrawServiceFeeCommand represents a request to sweep the system
// account's accumulated service fees to a destination account.
//
// Example:
//
//	cmd, err := NewWithdrawServiceFeeCommand(capability, treasury)
//	if err != nil {
//	    return err
//	}
//	handler := NewWithdrawServiceFeeCommandHandler(ledger, systemAccount)
//	err = handler.Handle(ctx, cmd)
type WithdrawServiceFeeCommand struct { //nolint:recvcheck //using for validation
	capability  access.Capability
	destination kernel.Address

	guard guard.ConstructorGuard
}

// NewWithdrawServiceFeeCommand creates a command to withdraw service fees.
// Validates that the destination account is set.
func NewWithdrawServiceFeeCommand(
	capability access.Capability, destination kernel.Address,
) (WithdrawServiceFeeCommand, error) {
	command := WithdrawServiceFeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setDestination(destination),
	); err != nil {
		return WithdrawServiceFeeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrWithdrawServiceFeeCommandIsNotConstructed if validation fails.
func (c WithdrawServiceFeeCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawServiceFeeCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c WithdrawServiceFeeCommand) Capability() access.Capability {
	return c.capability
}

// Destination returns the account receiving the swept balance.
func (c WithdrawServiceFeeCommand) Destination() kernel.Address {
	return c.destination
}

func (c *WithdrawServiceFeeCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *WithdrawServiceFeeCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
