package commands

import (
	"errors"

	"fleetbook/internal/core/domain/model/access"
	"fleetbook/internal/pkg/guard"
)

var (
	ErrShipContainerCommandIsNotConstructed = errors.New(
		"ShipContainerCommand must be created via NewShipContainerCommand constructor",
	)
	ErrVinsAreRequired       = errors.New("at least one vin is required")
	ErrVinIsEmpty            = errors.New("vin must not be empty")
	ErrTrackingRefIsRequired = errors.New("tracking reference is required")
)

// ShipContainerCommand represents a request to ship the next container: open
// it in the ownership registry and create one order per vehicle, all starting
// in Shipped status.
//
// Example:
//
//	cmd, err := NewShipContainerCommand(capability, []string{"VIN-1", "VIN-2"}, "TRK-100")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewShipContainerCommandHandler(uowFactory, registry, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to ship container: %w", err)
//	}
type ShipContainerCommand struct { //nolint:recvcheck //using for validation
	capability  access.Capability
	vins        []string
	trackingRef string

	guard guard.ConstructorGuard
}

// NewShipContainerCommand creates a command to ship a batch of vehicles.
// Validates that at least one non-empty VIN and a tracking reference are
// given. Returns an error if any validation fails.
func NewShipContainerCommand(
	capability access.Capability, vins []string, trackingRef string,
) (ShipContainerCommand, error) {
	command := ShipContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCapability(capability),
		command.setVins(vins),
		command.setTrackingRef(trackingRef),
	); err != nil {
		return ShipContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipContainerCommandIsNotConstructed if validation fails.
func (c ShipContainerCommand) Validate() error {
	return c.guard.Validate(ErrShipContainerCommandIsNotConstructed)
}

// Capability returns the caller's resolved roles.
func (c ShipContainerCommand) Capability() access.Capability {
	return c.capability
}

// Vins returns the vehicle identification numbers, one per order, in
// container order.
func (c ShipContainerCommand) Vins() []string {
	return c.vins
}

// TrackingRef returns the shipment's free-form tracking reference.
func (c ShipContainerCommand) TrackingRef() string {
	return c.trackingRef
}

func (c *ShipContainerCommand) setCapability(capability access.Capability) error {
	if err := capability.Account().Validate(); err != nil {
		return err
	}

	c.capability = capability
	return nil
}

func (c *ShipContainerCommand) setVins(vins []string) error {
	if len(vins) == 0 {
		return ErrVinsAreRequired
	}
	for _, vin := range vins {
		if vin == "" {
			return ErrVinIsEmpty
		}
	}

	c.vins = vins
	return nil
}

func (c *ShipContainerCommand) setTrackingRef(trackingRef string) error {
	if trackingRef == "" {
		return ErrTrackingRefIsRequired
	}

	c.trackingRef = trackingRef
	return nil
}
