package commands

import (
	"context"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/ports"
)

// RegisterPlateCommandHandler registers a license plate on a cleared order.
// Compliance gated. The aggregate enforces the Cleared precondition and the
// set-once plate rule; success moves the order to Registered.
type RegisterPlateCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRegisterPlateCommandHandler creates a handler for plate registration.
func NewRegisterPlateCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) RegisterPlateCommandHandler {
	return RegisterPlateCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the plate registration command.
// Loads the order, registers the plate through the aggregate, persists the
// change and publishes the Cleared to Registered status event.
func (h RegisterPlateCommandHandler) Handle(ctx context.Context, command RegisterPlateCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.RoleCompliance) {
		return ErrPermissionDenied
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.FleetOrderRepository()

	order, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	previous := order.Status()
	if err = order.RegisterPlate(command.Plate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx,
		events.NewStatusChanged(order.ID(), previous, fleetorder.Registered))

	return nil
}
