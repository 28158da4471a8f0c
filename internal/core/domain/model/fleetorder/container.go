package fleetorder

import (
	"errors"
	"fmt"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
)

// ErrContainerIsNotConstructed is returned when a Container instance was not
// created through the NewContainer factory function.
var ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")

// Container represents a batch of fleet orders shipped together.
// Containers are identified by sequential integers handed out by the
// ownership registry and carry a free-form tracking reference supplied by
// the shipping line.
type Container struct {
	// id is the sequential container number
	id int

	// trackingRef is the shipping line's tracking reference
	trackingRef string

	// guard ensures the container was created via NewContainer
	guard kernel.ConstructorGuard
}

// NewContainer creates a Container with validation.
//
// Parameters:
//   - id: Sequential container number (must be positive)
//   - trackingRef: Shipping line tracking reference (must not be empty)
//
// Returns:
//   - *Container: The created container if all validations pass
//   - error: Validation error if any parameter is invalid
func NewContainer(id int, trackingRef string) (*Container, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("container id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if trackingRef == "" {
		return nil, errs.NewValueIsRequiredError("trackingRef")
	}

	return &Container{
		id:          id,
		trackingRef: trackingRef,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Container was created through NewContainer.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// ID returns the sequential container number.
func (c *Container) ID() int {
	return c.id
}

// TrackingRef returns the shipping line's tracking reference.
func (c *Container) TrackingRef() string {
	return c.trackingRef
}
