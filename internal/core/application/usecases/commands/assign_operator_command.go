package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand represents a request to assign the next reserved
// operator to a registered order.
//
// Example:
//
//	cmd, err := NewAssignOperatorCommand(capability, 1)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignOperatorCommandHandler(uowFactory, queue, publisher)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOperatorReserved) {
//	    log.Println("Reservation queue is empty")
//	}
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	capability access.Capability
	orderID    int

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates a command to assign an operator.
// Validates that the order id is positive.
func NewAssignOperatorCommand(capability access.Capability, orderID int) (AssignOperatorCommand, error) {
	command := AssignOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setOrderID(orderID),
	); err != nil {
		return AssignOperatorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOperatorCommandIsNotConstructed if validation fails.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c AssignOperatorCommand) Capability() access.Capability {
	return c.capability
}

// OrderID returns the order to assign an operator to.
func (c AssignOperatorCommand) OrderID() int {
	return c.orderID
}

func (c *AssignOperatorCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *AssignOperatorCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}
