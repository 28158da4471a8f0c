package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/guard"
)

var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand represents a request to grant a role to an account.
// Granting a role the account already holds is a no-op.
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	capability access.Capability
	role       access.Role
	account    kernel.Address

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a command to grant a role.
// Validates the role name and that the target account is set.
func NewGrantRoleCommand(
	capability access.Capability, role access.Role, account kernel.Address,
) (GrantRoleCommand, error) {
	command := GrantRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setRole(role),
		command.setAccount(account),
	); err != nil {
		return GrantRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGrantRoleCommandIsNotConstructed if validation fails.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c GrantRoleCommand) Capability() access.Capability {
	return c.capability
}

// Role returns the role being granted.
func (c GrantRoleCommand) Role() access.Role {
	return c.role
}

// Account returns the account receiving the role.
func (c GrantRoleCommand) Account() kernel.Address {
	return c.account
}

func (c *GrantRoleCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *GrantRoleCommand) setRole(role access.Role) error {
	parsed, err := access.ParseRole(string(role))
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}

func (c *GrantRoleCommand) setAccount(account kernel.Address) error {
	if err := account.Validate(); err != nil {
		return err
	}

	c.account = account
	return nil
}
