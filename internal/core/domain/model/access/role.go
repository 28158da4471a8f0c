package access

import (
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
)

// Role names a permission bucket accounts can be granted into.
type Role string

const (
	// RoleAdmin administers every other role. Granting or revoking any role
	// requires it.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin performs fleet lifecycle operations: shipping
	// containers, bulk status moves, operator assignment and installment
	// settlement.
	RoleSuperAdmin Role = "super_admin"

	// RoleCompliance registers plates on cleared orders.
	RoleCompliance Role = "compliance"

	// RoleWithdrawal withdraws accumulated service fees.
	RoleWithdrawal Role = "withdrawal"
)

var allRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleSuperAdmin: true,
	RoleCompliance: true,
	RoleWithdrawal: true,
}

// AllRoles returns every known role in a stable order. Boundaries use it to
// resolve an account's full capability in one sweep.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleSuperAdmin, RoleCompliance, RoleWithdrawal}
}

// ParseRole converts a wire string into a Role.
//
// Returns:
//   - Role: the parsed role.
//   - error: errs.ValueIsInvalidError if the string names no known role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !allRoles[r] {
		return "", errs.NewValueIsInvalidError("role")
	}
	return r, nil
}

// AdminOf returns the role that administers r. Every role, including the
// admin role itself, is administered by RoleAdmin.
func AdminOf(Role) Role {
	return RoleAdmin
}

// Capability is a resolved snapshot of the roles an account holds at the
// moment a request enters the application layer.
type Capability struct {
	account kernel.Address
	roles   map[Role]bool
}

// NewCapability builds a Capability for the account with the given roles.
//
// Returns:
//   - Capability: the resolved capability.
//   - error: errs.ValueIsRequiredError if the account is the zero Address.
func NewCapability(account kernel.Address, roles ...Role) (Capability, error) {
	if err := account.Validate(); err != nil {
		return Capability{}, err
	}

	held := make(map[Role]bool, len(roles))
	for _, r := range roles {
		held[r] = true
	}
	return Capability{account: account, roles: held}, nil
}

// Account returns the account the capability was resolved for.
func (c Capability) Account() kernel.Address {
	return c.account
}

// Has reports whether the account holds the role.
func (c Capability) Has(r Role) bool {
	return c.roles[r]
}
