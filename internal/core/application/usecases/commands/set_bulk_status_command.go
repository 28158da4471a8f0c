package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/guard"
)

var ErrSetBulkStatusCommandIsNotConstructed = errors.New(
	"SetBulkStatusCommand must be created via NewSetBulkStatusCommand constructor",
)

// SetBulkStatusCommand represents a request to move every order of one
// container to the same lifecycle status. The status is carried as the raw
// wire integer; the handler validates it against the one-hot encoding as
// part of the batch validation phase.
//
// Example:
//
//	cmd, err := NewSetBulkStatusCommand(capability, 1, int(fleetorder.Arrived))
//	if err != nil {
//	    return err
//	}
//	handler := NewSetBulkStatusCommandHandler(uowFactory, registry, publisher)
//	err = handler.Handle(ctx, cmd)
type SetBulkStatusCommand struct { //nolint:recvcheck //using for validation
	capability  access.Capability
	containerID int
	status      int

	guard guard.ConstructorGuard
}

// NewSetBulkStatusCommand creates a command to bulk-move a container's
// orders. Validates that the container number is positive; the status value
// itself is checked by the handler together with the rest of the batch.
func NewSetBulkStatusCommand(
	capability access.Capability, containerID, status int,
) (SetBulkStatusCommand, error) {
	command := SetBulkStatusCommand{
		guard:  guard.NewConstructorGuard(),
		status: status,
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setContainerID(containerID),
	); err != nil {
		return SetBulkStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetBulkStatusCommandIsNotConstructed if validation fails.
func (c SetBulkStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetBulkStatusCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c SetBulkStatusCommand) Capability() access.Capability {
	return c.capability
}

// ContainerID returns the container whose orders are moved.
func (c SetBulkStatusCommand) ContainerID() int {
	return c.containerID
}

// RawStatus returns the proposed status as the raw wire integer.
func (c SetBulkStatusCommand) RawStatus() int {
	return c.status
}

func (c *SetBulkStatusCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *SetBulkStatusCommand) setContainerID(containerID int) error {
	if containerID <= 0 {
		return errs.NewValueIsInvalidError("containerID")
	}

	c.containerID = containerID
	return nil
}
