package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
)

func TestRegisterPlateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterPlateCommand(
		capabilityWith(t, access.RoleCompliance), 1, "ABC-123")
	require.NoError(t, err)

	cleared := orderInStatus(t, 1, 1, fleetorder.Cleared)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FleetOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, 1).Return(cleared, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*fleetorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	handler := commands.NewRegisterPlateCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fleetorder.Registered, cleared.Status())
	assert.Equal(t, "ABC-123", cleared.Plate())
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRegisterPlateCommandHandler_Handle_NotCleared(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterPlateCommand(
		capabilityWith(t, access.RoleCompliance), 1, "ABC-123")
	require.NoError(t, err)

	shipped := shippedOrder(t, 1, 1)

	orderRepo := new(MockFleetOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FleetOrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, 1).Return(shipped, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterPlateCommandHandler(factory, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, fleetorder.ErrOrderNotCleared)
	assert.Empty(t, shipped.Plate())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestRegisterPlateCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterPlateCommand(
		capabilityWith(t, access.RoleSuperAdmin), 1, "ABC-123")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	handler := commands.NewRegisterPlateCommandHandler(factory, silentPublisher())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterPlateCommand_ValidationErrors(t *testing.T) {
	capability := capabilityWith(t, access.RoleCompliance)

	_, err := commands.NewRegisterPlateCommand(capability, 0, "ABC-123")
	require.Error(t, err)

	_, err = commands.NewRegisterPlateCommand(capability, 1, "")
	require.ErrorIs(t, err, commands.ErrPlateIsRequired)
}
