package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/pkg/errs"
)

func shippedOrder(t *testing.T, id, containerID int) *fleetorder.Order {
	t.Helper()
	order, err := fleetorder.NewOrder(id, containerID, "VIN-TEST")
	require.NoError(t, err)
	return order
}

func orderInStatus(t *testing.T, id, containerID int, status fleetorder.Status) *fleetorder.Order {
	t.Helper()
	order, err := fleetorder.RestoreOrder(id, containerID, status, 0, "VIN-TEST", "")
	require.NoError(t, err)
	return order
}

// registryForContainer wires cumulative counts so container 1 spans ids 1..size.
func registryForContainer(ctx context.Context, size, maxPerContainer int) *MockOwnershipRegistry {
	registry := new(MockOwnershipRegistry)
	registry.On("ContainerCumulativeCount", ctx, 1).Return(size, nil).Once()
	registry.On("ContainerCumulativeCount", ctx, 0).Return(0, nil).Once()
	registry.On("MaxOrdersPerContainer", ctx).Return(maxPerContainer, nil).Once()
	return registry
}

func TestSetBulkStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Arrived))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 3, 10)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	orders := []*fleetorder.Order{
		shippedOrder(t, 1, 1), shippedOrder(t, 2, 1), shippedOrder(t, 3, 1),
	}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FleetOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 1).Return(orders[0], nil).Once(),
		orderRepo.On("Get", ctx, 2).Return(orders[1], nil).Once(),
		orderRepo.On("Get", ctx, 3).Return(orders[2], nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*fleetorder.Order")).Return(nil).Times(3),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Times(3)

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	for _, order := range orders {
		assert.Equal(t, fleetorder.Arrived, order.Status())
	}
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSetBulkStatusCommandHandler_Handle_OneInvalidMutatesNothing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Arrived))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 6, 10)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	// Five orders can move to Arrived, the sixth cannot.
	orders := make([]*fleetorder.Order, 0, 6)
	for id := 1; id <= 5; id++ {
		orders = append(orders, shippedOrder(t, id, 1))
	}
	orders = append(orders, orderInStatus(t, 6, 1, fleetorder.Cleared))

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FleetOrderRepository").Return(orderRepo).Once()
	for id := 1; id <= 6; id++ {
		orderRepo.On("Get", ctx, id).Return(orders[id-1], nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, fleetorder.ErrTransitionNotAllowed)
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
	for id := 1; id <= 5; id++ {
		assert.Equal(t, fleetorder.Shipped, orders[id-1].Status())
	}
}

func TestSetBulkStatusCommandHandler_Handle_NeverShippedIDFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Transferred))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 2, 10)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FleetOrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, 1).Return(nil, errs.ErrObjectNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotShipped)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestSetBulkStatusCommandHandler_Handle_InstallmentGate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Transferred))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 1, 10)
	registry.On("LockPeriod", ctx, 1).Return(48, nil).Once()

	paying, err := fleetorder.RestoreOrder(1, 1, fleetorder.Assigned, 47, "VIN-TEST", "ABC-123")
	require.NoError(t, err)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FleetOrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, 1).Return(paying, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, fleetorder.ErrInstallmentsOutstanding)
	assert.Equal(t, fleetorder.Assigned, paying.Status())
}

func TestSetBulkStatusCommandHandler_Handle_TransferFetchesLockPeriodOnce(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Transferred))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 2, 10)
	registry.On("LockPeriod", ctx, 1).Return(48, nil).Once()
	registry.On("LockPeriod", ctx, 2).Return(36, nil).Once()

	paidOff := func(id, lockPeriod int) *fleetorder.Order {
		order, restoreErr := fleetorder.RestoreOrder(
			id, 1, fleetorder.Assigned, lockPeriod, "VIN-TEST", "ABC-123")
		require.NoError(t, restoreErr)
		return order
	}
	orders := []*fleetorder.Order{paidOff(1, 48), paidOff(2, 36)}

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FleetOrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, 1).Return(orders[0], nil).Once()
	orderRepo.On("Get", ctx, 2).Return(orders[1], nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*fleetorder.Order")).Return(nil).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	for _, order := range orders {
		assert.Equal(t, fleetorder.Transferred, order.Status())
	}
	// Lock periods fetched during validation are reused at commit time.
	registry.AssertExpectations(t)
}

func TestSetBulkStatusCommandHandler_Handle_EmptyContainer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Arrived))
	require.NoError(t, err)

	registry := new(MockOwnershipRegistry)
	registry.On("ContainerCumulativeCount", ctx, 1).Return(0, nil).Once()
	registry.On("ContainerCumulativeCount", ctx, 0).Return(0, nil).Once()

	factory := new(MockOrderUoWFactory)

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrContainerIsEmpty)
	factory.AssertNotCalled(t, "Create")
}

func TestSetBulkStatusCommandHandler_Handle_BatchTooLarge(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, int(fleetorder.Arrived))
	require.NoError(t, err)

	registry := registryForContainer(ctx, 11, 10)

	factory := new(MockOrderUoWFactory)

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBatchTooLarge)
	factory.AssertNotCalled(t, "Create")
}

func TestSetBulkStatusCommandHandler_Handle_MalformedStatus(t *testing.T) {
	ctx := t.Context()
	// 3 = Shipped|Arrived, not a one-hot value.
	cmd, err := commands.NewSetBulkStatusCommand(capabilityWith(t, access.RoleSuperAdmin), 1, 3)
	require.NoError(t, err)

	registry := registryForContainer(ctx, 2, 10)

	factory := new(MockOrderUoWFactory)

	handler := commands.NewSetBulkStatusCommandHandler(factory, registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestSetBulkStatusCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetBulkStatusCommand(
		capabilityWith(t, access.RoleWithdrawal), 1, int(fleetorder.Arrived))
	require.NoError(t, err)

	registry := new(MockOwnershipRegistry)

	handler := commands.NewSetBulkStatusCommandHandler(
		new(MockOrderUoWFactory), registry, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPermissionDenied)
	registry.AssertNotCalled(t, "ContainerCumulativeCount")
}
