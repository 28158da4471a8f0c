package http

import (
	"context"
	"errors"
	"net/http"

	"fleetbook/internal/core/application/usecases/commands"
	"fleetbook/internal/core/application/usecases/queries"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/assignment"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/core/ports"
	"fleetbook/internal/generated/servers"
	"fleetbook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Caller identity arrives as an X-Account header and is resolved to a
// capability once, at this boundary; handlers never look roles up again.
type Server struct {
	// Command handlers
	shipContainerHandler      commands.ShipContainerCommandHandler
	setBulkStatusHandler      commands.SetBulkStatusCommandHandler
	registerPlateHandler      commands.RegisterPlateCommandHandler
	assignOperatorHandler     commands.AssignOperatorCommandHandler
	payInstallmentHandler     commands.PayInstallmentCommandHandler
	withdrawServiceFeeHandler commands.WithdrawServiceFeeCommandHandler
	grantRoleHandler          commands.GrantRoleCommandHandler
	revokeRoleHandler         commands.RevokeRoleCommandHandler

	// Query handlers
	getOrderSummaryHandler   queries.GetOrderSummaryQueryHandler
	getOrderOperatorsHandler queries.GetOrderOperatorsQueryHandler
	getOperatorOrdersHandler queries.GetOperatorOrdersQueryHandler
	getContainersHandler     queries.GetContainersQueryHandler

	roles ports.RoleStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The role store backs the per-request capability resolution.
func NewServer(
	shipContainerHandler commands.ShipContainerCommandHandler,
	setBulkStatusHandler commands.SetBulkStatusCommandHandler,
	registerPlateHandler commands.RegisterPlateCommandHandler,
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	payInstallmentHandler commands.PayInstallmentCommandHandler,
	withdrawServiceFeeHandler commands.WithdrawServiceFeeCommandHandler,
	grantRoleHandler commands.GrantRoleCommandHandler,
	revokeRoleHandler commands.RevokeRoleCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderOperatorsHandler queries.GetOrderOperatorsQueryHandler,
	getOperatorOrdersHandler queries.GetOperatorOrdersQueryHandler,
	getContainersHandler queries.GetContainersQueryHandler,
	roles ports.RoleStore,
) *Server {
	return &Server{
		shipContainerHandler:      shipContainerHandler,
		setBulkStatusHandler:      setBulkStatusHandler,
		registerPlateHandler:      registerPlateHandler,
		assignOperatorHandler:     assignOperatorHandler,
		payInstallmentHandler:     payInstallmentHandler,
		withdrawServiceFeeHandler: withdrawServiceFeeHandler,
		grantRoleHandler:          grantRoleHandler,
		revokeRoleHandler:         revokeRoleHandler,
		getOrderSummaryHandler:    getOrderSummaryHandler,
		getOrderOperatorsHandler:  getOrderOperatorsHandler,
		getOperatorOrdersHandler:  getOperatorOrdersHandler,
		getContainersHandler:      getContainersHandler,
		roles:                     roles,
	}
}

// resolveCapability turns the caller's account into a capability snapshot by
// sweeping the role store once.
func (s *Server) resolveCapability(ctx context.Context, account openapi_types.UUID) (access.Capability, error) {
	caller, err := kernel.AddressFromBytes(account[:])
	if err != nil {
		return access.Capability{}, err
	}

	held := make([]access.Role, 0)
	for _, role := range access.AllRoles() {
		has, hasErr := s.roles.HasRole(ctx, role, caller)
		if hasErr != nil {
			return access.Capability{}, hasErr
		}
		if has {
			held = append(held, role)
		}
	}

	return access.NewCapability(caller, held...)
}

// errorJSON writes the uniform error body.
func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

// commandStatus maps an application error to the HTTP status it surfaces as.
func commandStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, fleetorder.ErrTransitionNotAllowed),
		errors.Is(err, fleetorder.ErrInstallmentsOutstanding),
		errors.Is(err, fleetorder.ErrInstallmentsFullyPaid),
		errors.Is(err, fleetorder.ErrOrderNotCleared),
		errors.Is(err, fleetorder.ErrOrderNotRegistered),
		errors.Is(err, fleetorder.ErrOrderNotAssigned),
		errors.Is(err, fleetorder.ErrPlateAlreadyRegistered),
		errors.Is(err, assignment.ErrOperatorAlreadyRecorded),
		errors.Is(err, commands.ErrContainerSizeMismatch),
		errors.Is(err, commands.ErrContainerIsEmpty),
		errors.Is(err, commands.ErrBatchTooLarge),
		errors.Is(err, commands.ErrDuplicateOrderIDs),
		errors.Is(err, commands.ErrOrderNotShipped),
		errors.Is(err, commands.ErrNoOperatorReserved),
		errors.Is(err, commands.ErrNothingToWithdraw):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ShipContainer handles POST /api/v1/containers.
func (s *Server) ShipContainer(ctx echo.Context, params servers.ShipContainerParams) error {
	var body servers.NewContainer
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, err := s.resolveCapability(reqCtx, params.XAccount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	cmd, err := commands.NewShipContainerCommand(capability, body.Vins, body.TrackingRef)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid container data: "+err.Error())
	}

	if handleErr := s.shipContainerHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetContainers handles GET /api/v1/containers.
func (s *Server) GetContainers(ctx echo.Context) error {
	containers, err := s.getContainersHandler.Handle(ctx.Request().Context(), queries.NewGetContainersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve containers")
	}

	response := make([]servers.Container, len(containers))
	for i, container := range containers {
		response[i] = servers.Container{
			Id:          container.ContainerID,
			TrackingRef: container.TrackingRef,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetContainerStatus handles POST /api/v1/containers/{containerId}/status.
func (s *Server) SetContainerStatus(ctx echo.Context, containerId int, params servers.SetContainerStatusParams) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, err := s.resolveCapability(reqCtx, params.XAccount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	cmd, err := commands.NewSetBulkStatusCommand(capability, containerId, body.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if handleErr := s.setBulkStatusHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId int) error {
	query, err := queries.NewGetOrderSummaryQuery(orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:               summary.OrderID,
		ContainerId:      summary.ContainerID,
		Status:           summary.Status,
		InstallmentsPaid: summary.InstallmentsPaid,
		Vin:              summary.Vin,
		Plate:            summary.Plate,
	})
}

// RegisterPlate handles POST /api/v1/orders/{orderId}/plate.
func (s *Server) RegisterPlate(ctx echo.Context, orderId int, params servers.RegisterPlateParams) error {
	var body servers.PlateRegistration
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, err := s.resolveCapability(reqCtx, params.XAccount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	cmd, err := commands.NewRegisterPlateCommand(capability, orderId, body.Plate)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid plate data: "+err.Error())
	}

	if handleErr := s.registerPlateHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOperator handles POST /api/v1/orders/{orderId}/operator.
func (s *Server) AssignOperator(ctx echo.Context, orderId int, params servers.AssignOperatorParams) error {
	reqCtx := ctx.Request().Context()
	capability, err := s.resolveCapability(reqCtx, params.XAccount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	cmd, err := commands.NewAssignOperatorCommand(capability, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignOperatorHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayInstallment handles POST /api/v1/orders/{orderId}/installments.
func (s *Server) PayInstallment(ctx echo.Context, orderId int, params servers.PayInstallmentParams) error {
	var body servers.InstallmentPayment
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	sender, err := kernel.AddressFromBytes(params.XAccount[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	// Payer attribution defaults to the caller
	payer := sender
	if body.Payer != nil {
		payer, err = kernel.AddressFromBytes(body.Payer[:])
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid payer account: "+err.Error())
		}
	}

	cmd, err := commands.NewPayInstallmentCommand(sender, payer, orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.payInstallmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderOperators handles GET /api/v1/orders/{orderId}/operators.
func (s *Server) GetOrderOperators(ctx echo.Context, orderId int) error {
	query, err := queries.NewGetOrderOperatorsQuery(orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	operators, err := s.getOrderOperatorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve operators")
	}

	response := make([]servers.Operator, len(operators))
	for i, operator := range operators {
		response[i] = servers.Operator{Address: operator.Operator.Bytes()}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOperatorOrders handles GET /api/v1/operators/{operator}/orders.
func (s *Server) GetOperatorOrders(ctx echo.Context, operator openapi_types.UUID) error {
	address, err := kernel.AddressFromBytes(operator[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid operator address")
	}

	query, err := queries.NewGetOperatorOrdersQuery(address)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid operator address")
	}

	orders, err := s.getOperatorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]int, len(orders))
	for i, order := range orders {
		response[i] = order.OrderID
	}

	return ctx.JSON(http.StatusOK, response)
}

// WithdrawServiceFee handles POST /api/v1/fees/withdrawal.
func (s *Server) WithdrawServiceFee(ctx echo.Context, params servers.WithdrawServiceFeeParams) error {
	var body servers.WithdrawalRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, err := s.resolveCapability(reqCtx, params.XAccount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid caller account: "+err.Error())
	}

	destination, err := kernel.AddressFromBytes(body.Destination[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid destination account: "+err.Error())
	}

	cmd, err := commands.NewWithdrawServiceFeeCommand(capability, destination)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid withdrawal data: "+err.Error())
	}

	if handleErr := s.withdrawServiceFeeHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GrantRole handles POST /api/v1/roles/grants.
func (s *Server) GrantRole(ctx echo.Context, params servers.GrantRoleParams) error {
	var body servers.RoleAssignment
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, role, account, err := s.resolveRoleChange(reqCtx, params.XAccount, body)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewGrantRoleCommand(capability, role, account)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid grant data: "+err.Error())
	}

	if handleErr := s.grantRoleHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeRole handles POST /api/v1/roles/revocations.
func (s *Server) RevokeRole(ctx echo.Context, params servers.RevokeRoleParams) error {
	var body servers.RoleAssignment
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reqCtx := ctx.Request().Context()
	capability, role, account, err := s.resolveRoleChange(reqCtx, params.XAccount, body)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRevokeRoleCommand(capability, role, account)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid revoke data: "+err.Error())
	}

	if handleErr := s.revokeRoleHandler.Handle(reqCtx, cmd); handleErr != nil {
		return errorJSON(ctx, commandStatus(handleErr), handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveRoleChange translates a role assignment body into domain inputs.
func (s *Server) resolveRoleChange(
	ctx context.Context, caller openapi_types.UUID, body servers.RoleAssignment,
) (access.Capability, access.Role, kernel.Address, error) {
	capability, err := s.resolveCapability(ctx, caller)
	if err != nil {
		return access.Capability{}, "", kernel.Address{}, err
	}

	role, err := access.ParseRole(string(body.Role))
	if err != nil {
		return access.Capability{}, "", kernel.Address{}, err
	}

	account, err := kernel.AddressFromBytes(body.Account[:])
	if err != nil {
		return access.Capability{}, "", kernel.Address{}, err
	}

	return capability, role, account, nil
}
