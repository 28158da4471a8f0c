package mem

import (
	"context"
	"sync"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
)

// RoleStore is an in-memory role/permission store keyed by (role, account).
// Grant and Revoke are idempotent.
type RoleStore struct {
	mu    sync.RWMutex
	roles map[access.Role]map[string]struct{}
}

// NewRoleStore creates an empty role store.
func NewRoleStore() *RoleStore {
	return &RoleStore{roles: make(map[access.Role]map[string]struct{})}
}

func (s *RoleStore) HasRole(_ context.Context, role access.Role, account kernel.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	holders, ok := s.roles[role]
	if !ok {
		return false, nil
	}
	_, held := holders[account.String()]
	return held, nil
}

func (s *RoleStore) Grant(_ context.Context, role access.Role, account kernel.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	holders, ok := s.roles[role]
	if !ok {
		holders = make(map[string]struct{})
		s.roles[role] = holders
	}
	holders[account.String()] = struct{}{}
	return nil
}

func (s *RoleStore) Revoke(_ context.Context, role access.Role, account kernel.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if holders, ok := s.roles[role]; ok {
		delete(holders, account.String())
	}
	return nil
}
