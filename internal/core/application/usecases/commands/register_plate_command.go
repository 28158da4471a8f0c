package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var (
	ErrRegisterPlateCommandIsNotConstructed = errors.New(
		"RegisterPlateCommand must be created via NewRegisterPlateCommand constructor",
	)
	ErrPlateIsRequired = errors.New("license plate is required")
)

// RegisterPlateCommand represents a request to register a license plate on a
// customs-cleared order, moving it to Registered status.
//
// Example:
//
//	cmd, err := NewRegisterPlateCommand(capability, 1, "ABC-123")
//	if err != nil {
//	    return err
//	}
//	handler := NewRegisterPlateCommandHandler(uowFactory, publisher)
//	err = handler.Handle(ctx, cmd)
type RegisterPlateCommand struct { //nolint:recvcheck //using for validation
	capability access.Capability
	orderID    int
	plate      string

	guard guard.ConstructorGuard
}

// NewRegisterPlateCommand creates a command to register a plate.
// Validates that the order id is positive and the plate is not empty.
func NewRegisterPlateCommand(
	capability access.Capability, orderID int, plate string,
) (RegisterPlateCommand, error) {
	command := RegisterPlateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setOrderID(orderID),
		command.setPlate(plate),
	); err != nil {
		return RegisterPlateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterPlateCommandIsNotConstructed if validation fails.
func (c RegisterPlateCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPlateCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c RegisterPlateCommand) Capability() access.Capability {
	return c.capability
}

// OrderID returns the order to register.
func (c RegisterPlateCommand) OrderID() int {
	return c.orderID
}

// Plate returns the license plate number.
func (c RegisterPlateCommand) Plate() string {
	return c.plate
}

func (c *RegisterPlateCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *RegisterPlateCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterPlateCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}
