// Package mem provides in-memory implementations of the external collaborator
// ports. They back local development, the composition root's default wiring
// and tests that do not want to stand up the real collaborators.
//
// All implementations are safe for concurrent use.
package mem

import (
	"context"
	"sync"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
)

// registryOrder holds the financing terms and ownership breakdown of one order.
type registryOrder struct {
	owners        []kernel.Address
	fractions     map[string]uint64
	lockPeriod    int
	expectedValue uint64
	lpValue       uint64
}

// Registry is an in-memory OwnershipRegistry. Containers are planned up front
// with PlanContainer and opened one at a time by StartNextContainer; ownership
// terms are seeded per order.
type Registry struct {
	mu sync.RWMutex

	maxFraction     uint64
	maxPerContainer int

	cumulative []int
	opened     int

	orders map[int]*registryOrder
}

// NewRegistry creates an empty registry with the given fixed limits.
func NewRegistry(maxFleetFraction uint64, maxOrdersPerContainer int) *Registry {
	return &Registry{
		maxFraction:     maxFleetFraction,
		maxPerContainer: maxOrdersPerContainer,
		orders:          make(map[int]*registryOrder),
	}
}

// PlanContainer appends a container of the given size to the shipping plan.
// The container becomes visible to ContainerCumulativeCount once opened.
func (r *Registry) PlanContainer(size int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := 0
	if len(r.cumulative) > 0 {
		prev = r.cumulative[len(r.cumulative)-1]
	}
	r.cumulative = append(r.cumulative, prev+size)
}

// SetOrderTerms seeds the financing terms of one order.
func (r *Registry) SetOrderTerms(orderID int, expectedValue, lpExpectedValue uint64, lockPeriod int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.ensureOrder(orderID)
	entry.expectedValue = expectedValue
	entry.lpValue = lpExpectedValue
	entry.lockPeriod = lockPeriod
}

// SetOwner seeds the fraction count an owner holds in one order. A new owner
// is appended to the order's roster; setting an existing owner overwrites
// the count.
func (r *Registry) SetOwner(orderID int, owner kernel.Address, fractions uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.ensureOrder(orderID)
	key := owner.String()
	if _, known := entry.fractions[key]; !known {
		entry.owners = append(entry.owners, owner)
	}
	entry.fractions[key] = fractions
}

func (r *Registry) ensureOrder(orderID int) *registryOrder {
	entry, ok := r.orders[orderID]
	if !ok {
		entry = &registryOrder{fractions: make(map[string]uint64)}
		r.orders[orderID] = entry
	}
	return entry
}

func (r *Registry) TotalFleet(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.opened == 0 {
		return 0, nil
	}
	return r.cumulative[r.opened-1], nil
}

func (r *Registry) Owners(_ context.Context, orderID int) ([]kernel.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return []kernel.Address{}, nil
	}
	owners := make([]kernel.Address, len(entry.owners))
	copy(owners, entry.owners)
	return owners, nil
}

func (r *Registry) TotalSupply(_ context.Context, orderID int) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return 0, nil
	}
	var total uint64
	for _, count := range entry.fractions {
		total += count
	}
	return total, nil
}

func (r *Registry) FractionsOwned(_ context.Context, orderID int, owner kernel.Address) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return 0, nil
	}
	return entry.fractions[owner.String()], nil
}

func (r *Registry) MaxFleetFraction(_ context.Context) (uint64, error) {
	return r.maxFraction, nil
}

func (r *Registry) LockPeriod(_ context.Context, orderID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("registry order", orderID)
	}
	return entry.lockPeriod, nil
}

func (r *Registry) ExpectedValue(_ context.Context, orderID int) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("registry order", orderID)
	}
	return entry.expectedValue, nil
}

func (r *Registry) LiquidityProviderExpectedValue(_ context.Context, orderID int) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.orders[orderID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("registry order", orderID)
	}
	return entry.lpValue, nil
}

func (r *Registry) ContainerCumulativeCount(_ context.Context, containerID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if containerID <= 0 {
		return 0, nil
	}
	if containerID > r.opened {
		return 0, errs.NewObjectNotFoundError("container", containerID)
	}
	return r.cumulative[containerID-1], nil
}

func (r *Registry) MaxOrdersPerContainer(_ context.Context) (int, error) {
	return r.maxPerContainer, nil
}

func (r *Registry) NextPlannedContainerSize(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.opened >= len(r.cumulative) {
		return 0, errs.NewObjectNotFoundError("planned container", r.opened+1)
	}

	prev := 0
	if r.opened > 0 {
		prev = r.cumulative[r.opened-1]
	}
	return r.cumulative[r.opened] - prev, nil
}

func (r *Registry) StartNextContainer(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opened >= len(r.cumulative) {
		return 0, errs.NewObjectNotFoundError("planned container", r.opened+1)
	}
	r.opened++
	return r.opened, nil
}
