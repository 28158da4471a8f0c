package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/assignment"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
)

type MockFleetOrderRepository struct{ mock.Mock }

func (m *MockFleetOrderRepository) Add(ctx context.Context, o *fleetorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockFleetOrderRepository) Update(ctx context.Context, o *fleetorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockFleetOrderRepository) Get(ctx context.Context, id int) (*fleetorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleetorder.Order), args.Error(1)
}

func (m *MockFleetOrderRepository) GetFirstInRegisteredStatus(ctx context.Context) (*fleetorder.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleetorder.Order), args.Error(1)
}

func (m *MockFleetOrderRepository) GetAllInAssignedStatus(ctx context.Context) ([]*fleetorder.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleetorder.Order), args.Error(1)
}

func (m *MockFleetOrderRepository) AddContainer(ctx context.Context, c *fleetorder.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFleetOrderRepository) GetContainer(ctx context.Context, id int) (*fleetorder.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleetorder.Container), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Get(ctx context.Context) (*assignment.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Book), args.Error(1)
}

func (m *MockAssignmentRepository) Save(ctx context.Context, book *assignment.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) FleetOrderRepository() ports.FleetOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.FleetOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) FleetOrderRepository() ports.FleetOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.FleetOrderRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOwnershipRegistry struct{ mock.Mock }

func (m *MockOwnershipRegistry) TotalFleet(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipRegistry) Owners(ctx context.Context, orderID int) ([]kernel.Address, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.Address), args.Error(1)
}

func (m *MockOwnershipRegistry) TotalSupply(ctx context.Context, orderID int) (uint64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOwnershipRegistry) FractionsOwned(
	ctx context.Context, orderID int, owner kernel.Address,
) (uint64, error) {
	args := m.Called(ctx, orderID, owner)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOwnershipRegistry) MaxFleetFraction(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOwnershipRegistry) LockPeriod(ctx context.Context, orderID int) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipRegistry) ExpectedValue(ctx context.Context, orderID int) (uint64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOwnershipRegistry) LiquidityProviderExpectedValue(ctx context.Context, orderID int) (uint64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOwnershipRegistry) ContainerCumulativeCount(ctx context.Context, containerID int) (int, error) {
	args := m.Called(ctx, containerID)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipRegistry) MaxOrdersPerContainer(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipRegistry) NextPlannedContainerSize(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOwnershipRegistry) StartNextContainer(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockReservationQueue struct{ mock.Mock }

func (m *MockReservationQueue) NextReservation(ctx context.Context) (kernel.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Address), args.Error(1)
}

func (m *MockReservationQueue) Requeue(ctx context.Context, operator kernel.Address) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

type MockValueLedger struct{ mock.Mock }

func (m *MockValueLedger) BalanceOf(ctx context.Context, account kernel.Address) (uint64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockValueLedger) Decimals(ctx context.Context) (uint8, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockValueLedger) Transfer(ctx context.Context, to kernel.Address, amount uint64) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}

func (m *MockValueLedger) TransferFrom(ctx context.Context, from, to kernel.Address, amount uint64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

type MockRoleStore struct{ mock.Mock }

func (m *MockRoleStore) HasRole(ctx context.Context, role access.Role, account kernel.Address) (bool, error) {
	args := m.Called(ctx, role, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleStore) Grant(ctx context.Context, role access.Role, account kernel.Address) error {
	args := m.Called(ctx, role, account)
	return args.Error(0)
}

func (m *MockRoleStore) Revoke(ctx context.Context, role access.Role, account kernel.Address) error {
	args := m.Called(ctx, role, account)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// capabilityWith builds a capability for a fresh account holding the given roles.
func capabilityWith(t *testing.T, roles ...access.Role) access.Capability {
	t.Helper()
	capability, err := access.NewCapability(kernel.NewAddress(), roles...)
	require.NoError(t, err)
	return capability
}

// silentPublisher accepts any publish call without asserting on it.
func silentPublisher() *MockEventPublisher {
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return publisher
}
