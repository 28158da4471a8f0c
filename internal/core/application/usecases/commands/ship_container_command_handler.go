package commands

import (
	"context"
	"errors"

	"fleetbook/internal/core/application/events"
	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/core/domain/model/fleetorder"
	"fleetbook/internal/core/ports"
)

// ErrContainerSizeMismatch is returned when the number of VINs does not match
// the id range the registry reserved for the new container.
var ErrContainerSizeMismatch = errors.New("vin count does not match container order range")

// ShipContainerCommandHandler opens the next container in the ownership
// registry and creates its orders. The registry owns container numbering and
// the per-container id ranges; the handler derives the range from the
// cumulative counts and requires exactly one VIN per id in it.
//
// Example:
//
//	handler := NewShipContainerCommandHandler(uowFactory, registry, publisher)
//	cmd, _ := NewShipContainerCommand(capability, vins, "TRK-100")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Shipping failed: %v", err)
//	}
type ShipContainerCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   ports.OwnershipRegistry
	publisher  ports.EventPublisher
}

// NewShipContainerCommandHandler creates a handler for container shipping.
func NewShipContainerCommandHandler(
	uowFactory OrderUoWFactory,
	registry ports.OwnershipRegistry,
	publisher ports.EventPublisher,
) ShipContainerCommandHandler {
	return ShipContainerCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		publisher:  publisher,
	}
}

// Handle processes the shipping command. Validates the VIN count against the
// planned size of the next container, then opens it, derives its id range,
// creates one Shipped order per VIN together with the container record in a
// single transaction, and publishes one status-changed event per created
// order. The count check runs before the side-effecting open so a mismatched
// call leaves the registry's container sequence untouched.
func (h ShipContainerCommandHandler) Handle(ctx context.Context, command ShipContainerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Capability().Has(access.RoleSuperAdmin) {
		return ErrPermissionDenied
	}

	plannedSize, err := h.registry.NextPlannedContainerSize(ctx)
	if err != nil {
		return err
	}
	if len(command.Vins()) != plannedSize {
		return ErrContainerSizeMismatch
	}

	containerID, err := h.registry.StartNextContainer(ctx)
	if err != nil {
		return err
	}

	upper, err := h.registry.ContainerCumulativeCount(ctx, containerID)
	if err != nil {
		return err
	}
	prev := upper - plannedSize

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.FleetOrderRepository()

	container, err := fleetorder.NewContainer(containerID, command.TrackingRef())
	if err != nil {
		return err
	}
	if err = orderRepo.AddContainer(ctx, container); err != nil {
		return err
	}

	orders := make([]*fleetorder.Order, 0, len(command.Vins()))
	for i, vin := range command.Vins() {
		order, orderErr := fleetorder.NewOrder(prev+1+i, containerID, vin)
		if orderErr != nil {
			return orderErr
		}
		if orderErr = orderRepo.Add(ctx, order); orderErr != nil {
			return orderErr
		}
		orders = append(orders, order)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, order := range orders {
		_ = h.publisher.Publish(ctx,
			events.NewStatusChanged(order.ID(), fleetorder.Initialized, order.Status()))
	}

	return nil
}
