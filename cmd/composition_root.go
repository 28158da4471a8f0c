package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"fleetbook/internal/adapters/in/http"
	"fleetbook/internal/adapters/out/eventlog"
	"fleetbook/internal/adapters/out/kafka"
	"fleetbook/internal/adapters/out/mem"
	"fleetbook/internal/adapters/out/postgres"
	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/application/usecases/queries"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	registry      *mem.Registry
	queue         *mem.ReservationQueue
	ledger        *mem.Ledger
	roles         *mem.RoleStore
	publisher     ports.EventPublisher
	systemAccount kernel.Address
	billingSpec   string
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	systemAccount, err := kernel.AddressFromString(config.SystemAccount)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid SYSTEM_ACCOUNT: %w", err)
	}

	maxFraction, err := strconv.ParseUint(config.MaxFleetFraction, 10, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid MAX_FLEET_FRACTION: %w", err)
	}

	maxPerContainer, err := strconv.Atoi(config.MaxOrdersPerContainer)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid MAX_ORDERS_PER_CONTAINER: %w", err)
	}

	decimals, err := strconv.ParseUint(config.LedgerDecimals, 10, 8)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid LEDGER_DECIMALS: %w", err)
	}

	var publisher ports.EventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaEventsTopic)
	} else {
		publisher = eventlog.NewPublisher(slog.Default())
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:      mem.NewRegistry(maxFraction, maxPerContainer),
		queue:         mem.NewReservationQueue(),
		ledger:        mem.NewLedger(systemAccount, uint8(decimals)),
		roles:         mem.NewRoleStore(),
		publisher:     publisher,
		systemAccount: systemAccount,
		billingSpec:   config.BillingCronSpec,
	}, nil
}

// Registry exposes the ownership registry for operational seeding.
func (c *CompositionRoot) Registry() *mem.Registry {
	return c.registry
}

// Ledger exposes the value ledger for operational seeding.
func (c *CompositionRoot) Ledger() *mem.Ledger {
	return c.ledger
}

// RoleStore exposes the role store for bootstrap grants.
func (c *CompositionRoot) RoleStore() *mem.RoleStore {
	return c.roles
}

// SystemAccount returns the account fees and ledger movements settle against.
func (c *CompositionRoot) SystemAccount() kernel.Address {
	return c.systemAccount
}

// ClosePublisher releases the event publisher connection.
func (c *CompositionRoot) ClosePublisher() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateShipContainerCommandHandler() commands.ShipContainerCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipContainerCommandHandler(f, c.registry, c.publisher)
}

func (c *CompositionRoot) CreateSetBulkStatusCommandHandler() commands.SetBulkStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetBulkStatusCommandHandler(f, c.registry, c.publisher)
}

func (c *CompositionRoot) CreateRegisterPlateCommandHandler() commands.RegisterPlateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPlateCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOperatorCommandHandler(f, c.queue, c.publisher)
}

func (c *CompositionRoot) CreatePayInstallmentCommandHandler() commands.PayInstallmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayInstallmentCommandHandler(f, c.registry, c.ledger, c.publisher, c.systemAccount)
}

func (c *CompositionRoot) CreateWithdrawServiceFeeCommandHandler() commands.WithdrawServiceFeeCommandHandler {
	return commands.NewWithdrawServiceFeeCommandHandler(c.ledger, c.systemAccount)
}

func (c *CompositionRoot) CreateGrantRoleCommandHandler() commands.GrantRoleCommandHandler {
	return commands.NewGrantRoleCommandHandler(c.roles)
}

func (c *CompositionRoot) CreateRevokeRoleCommandHandler() commands.RevokeRoleCommandHandler {
	return commands.NewRevokeRoleCommandHandler(c.roles)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderOperatorsQueryHandler() queries.GetOrderOperatorsQueryHandler {
	return queries.NewGetOrderOperatorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperatorOrdersQueryHandler() queries.GetOperatorOrdersQueryHandler {
	return queries.NewGetOperatorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContainersQueryHandler() queries.GetContainersQueryHandler {
	return queries.NewGetContainersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateShipContainerCommandHandler(),
		c.CreateSetBulkStatusCommandHandler(),
		c.CreateRegisterPlateCommandHandler(),
		c.CreateAssignOperatorCommandHandler(),
		c.CreatePayInstallmentCommandHandler(),
		c.CreateWithdrawServiceFeeCommandHandler(),
		c.CreateGrantRoleCommandHandler(),
		c.CreateRevokeRoleCommandHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetOrderOperatorsQueryHandler(),
		c.CreateGetOperatorOrdersQueryHandler(),
		c.CreateGetContainersQueryHandler(),
		c.roles,
	)
}

// CreateJobManager assembles the background jobs. The assignment job acts
// under a super admin capability bound to the system account.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	systemCapability, err := access.NewCapability(c.systemAccount, access.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	var orderFactory commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	var factory commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	return jobs.NewJobManager(
		c.CreateAssignOperatorCommandHandler(),
		c.CreatePayInstallmentCommandHandler(),
		orderFactory,
		factory,
		systemCapability,
		c.billingSpec,
		logger,
	), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
