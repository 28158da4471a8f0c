package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/guard"
)

var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents a request to revoke a role from an account.
// Revoking a role the account does not hold is a no-op.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	capability access.Capability
	role       access.Role
	account    kernel.Address

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a command to revoke a role.
// Validates the role name and that the target account is set.
func NewRevokeRoleCommand(
	capability access.Capability, role access.Role, account kernel.Address,
) (RevokeRoleCommand, error) {
	command := RevokeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setRole(role),
		command.setAccount(account),
	); err != nil {
		return RevokeRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRevokeRoleCommandIsNotConstructed if validation fails.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c RevokeRoleCommand) Capability() access.Capability {
	return c.capability
}

// Role returns the role being revoked.
func (c RevokeRoleCommand) Role() access.Role {
	return c.role
}

// Account returns the account losing the role.
func (c RevokeRoleCommand) Account() kernel.Address {
	return c.account
}

func (c *RevokeRoleCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *RevokeRoleCommand) setRole(role access.Role) error {
	parsed, err := access.ParseRole(string(role))
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}

func (c *RevokeRoleCommand) setAccount(account kernel.Address) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}
