package mem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/adapters/out/mem"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/pkg/errs"
)

func TestRegistry_ContainerPlanAndCumulativeCounts(t *testing.T) {
	ctx := context.Background()
	registry := mem.NewRegistry(10, 10)
	registry.PlanContainer(5)
	registry.PlanContainer(3)

	// Nothing opened yet
	total, err := registry.TotalFleet(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Peeking at the planned size does not open the container
	planned, err := registry.NextPlannedContainerSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, planned)

	total, err = registry.TotalFleet(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	containerID, err := registry.StartNextContainer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, containerID)

	count, err := registry.ContainerCumulativeCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	count, err = registry.ContainerCumulativeCount(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Second container not opened yet
	_, err = registry.ContainerCumulativeCount(ctx, 2)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	planned, err = registry.NextPlannedContainerSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, planned)

	containerID, err = registry.StartNextContainer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, containerID)

	count, err = registry.ContainerCumulativeCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	// Plan exhausted
	_, err = registry.NextPlannedContainerSize(ctx)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	total, err = registry.TotalFleet(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	// No more planned containers
	_, err = registry.StartNextContainer(ctx)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRegistry_OwnershipSeeding(t *testing.T) {
	ctx := context.Background()
	registry := mem.NewRegistry(10, 10)

	ownerA := kernel.NewAddress()
	ownerB := kernel.NewAddress()

	registry.SetOrderTerms(1, 12_000_000000, 2_400_000000, 48)
	registry.SetOwner(1, ownerA, 4)
	registry.SetOwner(1, ownerB, 6)

	owners, err := registry.Owners(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []kernel.Address{ownerA, ownerB}, owners)

	supply, err := registry.TotalSupply(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), supply)

	fractions, err := registry.FractionsOwned(ctx, 1, ownerB)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), fractions)

	lockPeriod, err := registry.LockPeriod(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 48, lockPeriod)

	expected, err := registry.ExpectedValue(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(12_000_000000), expected)

	lpExpected, err := registry.LiquidityProviderExpectedValue(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_400_000000), lpExpected)

	// Unknown orders surface as not found
	_, err = registry.LockPeriod(ctx, 99)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReservationQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	queue := mem.NewReservationQueue()

	first := kernel.NewAddress()
	second := kernel.NewAddress()

	queue.Reserve(first)
	queue.Reserve(second)
	assert.Equal(t, 2, queue.Len())

	next, err := queue.NextReservation(ctx)
	require.NoError(t, err)
	assert.True(t, first.IsEqual(next))

	next, err = queue.NextReservation(ctx)
	require.NoError(t, err)
	assert.True(t, second.IsEqual(next))

	_, err = queue.NextReservation(ctx)
	assert.ErrorIs(t, err, ports.ErrNoReservation)
}

func TestReservationQueue_RequeueRestoresFront(t *testing.T) {
	ctx := context.Background()
	queue := mem.NewReservationQueue()

	first := kernel.NewAddress()
	second := kernel.NewAddress()

	queue.Reserve(first)
	queue.Reserve(second)

	drawn, err := queue.NextReservation(ctx)
	require.NoError(t, err)
	assert.True(t, first.IsEqual(drawn))

	// A failed assignment puts the operator back ahead of later reservations
	require.NoError(t, queue.Requeue(ctx, drawn))
	assert.Equal(t, 2, queue.Len())

	next, err := queue.NextReservation(ctx)
	require.NoError(t, err)
	assert.True(t, first.IsEqual(next))

	next, err = queue.NextReservation(ctx)
	require.NoError(t, err)
	assert.True(t, second.IsEqual(next))
}

func TestLedger_Transfers(t *testing.T) {
	ctx := context.Background()
	system := kernel.NewAddress()
	payer := kernel.NewAddress()
	owner := kernel.NewAddress()

	ledger := mem.NewLedger(system, 6)
	ledger.Mint(payer, 1_000_000)

	decimals, err := ledger.Decimals(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	// Pull from the payer into the system account
	err = ledger.TransferFrom(ctx, payer, system, 600_000)
	require.NoError(t, err)

	// Push from the system account to an owner
	err = ledger.Transfer(ctx, owner, 250_000)
	require.NoError(t, err)

	payerBalance, err := ledger.BalanceOf(ctx, payer)
	require.NoError(t, err)
	assert.Equal(t, uint64(400_000), payerBalance)

	systemBalance, err := ledger.BalanceOf(ctx, system)
	require.NoError(t, err)
	assert.Equal(t, uint64(350_000), systemBalance)

	ownerBalance, err := ledger.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(250_000), ownerBalance)
}

func TestLedger_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	system := kernel.NewAddress()
	payer := kernel.NewAddress()

	ledger := mem.NewLedger(system, 6)
	ledger.Mint(payer, 100)

	err := ledger.TransferFrom(ctx, payer, system, 101)
	assert.ErrorIs(t, err, ports.ErrInsufficientBalance)

	err = ledger.Transfer(ctx, payer, 1)
	assert.ErrorIs(t, err, ports.ErrInsufficientBalance)

	// Failed moves leave balances untouched
	balance, err := ledger.BalanceOf(ctx, payer)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
}

func TestRoleStore_GrantRevokeIdempotent(t *testing.T) {
	ctx := context.Background()
	store := mem.NewRoleStore()
	account := kernel.NewAddress()

	held, err := store.HasRole(ctx, access.RoleCompliance, account)
	require.NoError(t, err)
	assert.False(t, held)

	require.NoError(t, store.Grant(ctx, access.RoleCompliance, account))
	require.NoError(t, store.Grant(ctx, access.RoleCompliance, account))

	held, err = store.HasRole(ctx, access.RoleCompliance, account)
	require.NoError(t, err)
	assert.True(t, held)

	// Role grants are scoped per role
	held, err = store.HasRole(ctx, access.RoleSuperAdmin, account)
	require.NoError(t, err)
	assert.False(t, held)

	require.NoError(t, store.Revoke(ctx, access.RoleCompliance, account))
	require.NoError(t, store.Revoke(ctx, access.RoleCompliance, account))

	held, err = store.HasRole(ctx, access.RoleCompliance, account)
	require.NoError(t, err)
	assert.False(t, held)
}
