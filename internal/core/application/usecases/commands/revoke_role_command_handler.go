package commands

import (
	"context"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/ports"
)

// RevokeRoleCommandHandler revokes roles through the external role store.
// Only holders of the administering role (always the admin role) may revoke.
type RevokeRoleCommandHandler struct {
	roles ports.RoleStore
}

// NewRevokeRoleCommandHandler creates a handler for role revocations.
func NewRevokeRoleCommandHandler(roles ports.RoleStore) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{roles: roles}
}

// Handle processes the revoke command. Idempotent: revoking an unheld role
// succeeds without effect.
func (h RevokeRoleCommandHandler) Handle(ctx context.Context, command RevokeRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.AdminOf(command.Role())) {
		return ErrPermissionDenied
	}

	return h.roles.Revoke(ctx, command.Role(), command.Account())
}
