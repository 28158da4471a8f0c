package commands

import (
	"context"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/ports"
)

// GrantRoleCommandHandler grants roles through the external role store.
// Only holders of the administering role (always the admin role) may grant.
type GrantRoleCommandHandler struct {
	roles ports.RoleStore
}

// NewGrantRoleCommandHandler creates a handler for role grants.
func NewGrantRoleCommandHandler(roles ports.RoleStore) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{roles: roles}
}

// Handle processes the grant command. Idempotent: re-granting a held role
// succeeds without effect.
func (h GrantRoleCommandHandler) Handle(ctx context.Context, command GrantRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.AdminOf(command.Role())) {
		return ErrPermissionDenied
	}

	return h.roles.Grant(ctx, command.Role(), command.Account())
}
