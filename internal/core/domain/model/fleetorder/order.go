package fleetorder

import (
	"errors"
	"fmt"

	"fleetbook/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrTransitionNotAllowed indicates that the requested status change is not
	// part of the lifecycle transition table.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInstallmentsOutstanding indicates an Assigned order cannot move to
	// Transferred because its installments are not fully paid yet.
	ErrInstallmentsOutstanding = errors.New("installments not fully paid")

	// ErrInstallmentsFullyPaid indicates no further installments can be
	// collected because the order reached its lock period.
	ErrInstallmentsFullyPaid = errors.New("installments already fully paid")

	// ErrOrderNotCleared indicates that license-plate registration was
	// attempted on an order that has not passed customs clearance.
	ErrOrderNotCleared = errors.New("order is not in Cleared status")

	// ErrOrderNotRegistered indicates that operator assignment was attempted
	// on an order without a registered license plate.
	ErrOrderNotRegistered = errors.New("order is not in Registered status")

	// ErrOrderNotAssigned indicates that an installment payment was attempted
	// on an order without an assigned operator.
	ErrOrderNotAssigned = errors.New("order is not in Assigned status")

	// ErrPlateAlreadyRegistered indicates that the order already carries a
	// license plate. Plates are recorded exactly once.
	ErrPlateAlreadyRegistered = errors.New("license plate already registered")
)

// Order represents one financed durable-asset unit tracked through its
// fulfillment lifecycle. It is the aggregate root that manages the order's
// status, its installment counter, and the identifiers recorded along the way.
//
// Order follows these invariants:
//   - The id is a positive integer assigned by the ownership registry
//   - The status, once non-zero, is always exactly one lifecycle flag
//   - installmentsPaid only increases, only while the order is Assigned,
//     and never exceeds the order's lock period
//   - The vehicle identification number is set exactly once, at shipment
//   - The license plate is set exactly once, while the order is Cleared
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are created when they are first touched by a shipping batch and
// persist indefinitely as historical records; there is no deletion.
type Order struct {
	// id is the registry-assigned order number, 1..totalFleet
	id int

	// containerID identifies the shipment batch the order belongs to
	containerID int

	// status is the current lifecycle state
	status Status

	// installmentsPaid counts collected weekly installments
	installmentsPaid int

	// vin is the vehicle identification number, recorded at shipment
	vin string

	// plate is the license plate, recorded at registration
	plate string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at the moment of shipment. This is the only
// way an order comes into existence: inclusion in a shipping batch records
// its vehicle identification number and moves it straight to Shipped.
//
// Parameters:
//   - id: Registry-assigned order number (must be positive)
//   - containerID: Shipment batch the order belongs to (must be positive)
//   - vin: Vehicle identification number (must not be empty)
//
// Returns:
//   - *Order: The created order in Shipped status if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	order, err := fleetorder.NewOrder(7, 2, "LZSJEAKB8NC000123")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, containerID int, vin string) (*Order, error) {
	order := &Order{
		status:        Shipped,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setContainerID(containerID),
		order.setVin(vin),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// lifecycle position at the time of persistence. The restored order behaves
// identically to one advanced through normal domain operations.
//
// Parameters:
//   - id: Registry-assigned order number
//   - containerID: Shipment batch the order belongs to
//   - status: Persisted lifecycle state (Initialized or a single valid flag)
//   - installmentsPaid: Persisted installment counter (must not be negative)
//   - vin: Persisted vehicle identification number
//   - plate: Persisted license plate, empty if not yet registered
//
// Returns:
//   - *Order: Restored order
//   - error: Validation error if any field is inconsistent
func RestoreOrder(id, containerID int, status Status, installmentsPaid int, vin, plate string) (*Order, error) {
	if status != Initialized {
		if err := status.Validate(); err != nil {
			return nil, err
		}
	}
	if installmentsPaid < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("installmentsPaid is invalid",
			fmt.Errorf("%d is negative", installmentsPaid))
	}

	order := &Order{
		status:           status,
		installmentsPaid: installmentsPaid,
		plate:            plate,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setContainerID(containerID),
		order.setVin(vin),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their registry-assigned numbers.
// Orders are considered equal if they have the same id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's registry-assigned number.
func (o *Order) ID() int {
	return o.id
}

// ContainerID returns the shipment batch the order belongs to.
func (o *Order) ContainerID() int {
	return o.containerID
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// InstallmentsPaid returns the number of collected weekly installments.
func (o *Order) InstallmentsPaid() int {
	return o.installmentsPaid
}

// Vin returns the vehicle identification number recorded at shipment.
func (o *Order) Vin() string {
	return o.vin
}

// Plate returns the license plate, or the empty string before registration.
func (o *Order) Plate() string {
	return o.plate
}

// ValidateTransition checks whether the order may move to the proposed
// status through the bulk-update path, without performing the move.
//
// The check combines the pure transition table with the one data-dependent
// rule: an Assigned order may become Transferred only once installmentsPaid
// has reached the order's lock period.
//
// An Initialized order is not transitionable through this method; first
// status assignment happens at shipment (NewOrder). The bulk updater owns
// that policy and calls this only for orders with a non-zero baseline.
//
// Parameters:
//   - next: Proposed status (must be a single valid flag)
//   - lockPeriod: Installment ceiling for this order, from the ownership registry
//
// Returns:
//   - nil if the transition is admissible
//   - ErrTransitionNotAllowed if the table forbids it
//   - ErrInstallmentsOutstanding if only the installment gate blocks it
func (o *Order) ValidateTransition(next Status, lockPeriod int) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, o.status, next)
	}

	if o.status == Assigned && next == Transferred && o.installmentsPaid < lockPeriod {
		return fmt.Errorf("%w: %d of %d installments paid", ErrInstallmentsOutstanding, o.installmentsPaid, lockPeriod)
	}

	return nil
}

// SetStatus applies a validated bulk transition to the order.
// Callers must run ValidateTransition (or the bulk updater's full validation
// phase) first; SetStatus revalidates to keep the aggregate self-protecting.
//
// Parameters:
//   - next: Proposed status
//   - lockPeriod: Installment ceiling for this order
//
// Returns:
//   - nil on success
//   - the ValidateTransition error otherwise
func (o *Order) SetStatus(next Status, lockPeriod int) error {
	if err := o.ValidateTransition(next, lockPeriod); err != nil {
		return err
	}

	o.status = next
	return nil
}

// RegisterPlate records the order's license plate and moves it to Registered.
//
// This method enforces the following business rules:
//   - The order must be in Cleared status
//   - The plate must not be empty
//   - The plate is recorded exactly once
//
// Parameters:
//   - plate: License plate to record
//
// Returns:
//   - nil on successful registration
//   - ErrOrderNotCleared, ErrPlateAlreadyRegistered, or a validation error otherwise
func (o *Order) RegisterPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	if o.status != Cleared {
		return fmt.Errorf("%w: current status is %s", ErrOrderNotCleared, o.status)
	}
	if o.plate != "" {
		return ErrPlateAlreadyRegistered
	}

	o.plate = plate
	o.status = Registered
	return nil
}

// MarkAssigned moves a Registered order to Assigned.
// The operator bookkeeping itself lives in the assignment book; this method
// only flips the lifecycle state once an operator has been drawn.
//
// Returns:
//   - nil on success
//   - ErrOrderNotRegistered if the order has no registered plate yet
func (o *Order) MarkAssigned() error {
	if o.status != Registered {
		return fmt.Errorf("%w: current status is %s", ErrOrderNotRegistered, o.status)
	}

	o.status = Assigned
	return nil
}

// RecordInstallment increments the installment counter after a successful
// collection.
//
// This method enforces the following business rules:
//   - The order must be in Assigned status
//   - The counter never exceeds the order's lock period
//
// Parameters:
//   - lockPeriod: Installment ceiling for this order, from the ownership registry
//
// Returns:
//   - the new installment count on success
//   - ErrOrderNotAssigned or ErrInstallmentsFullyPaid otherwise
func (o *Order) RecordInstallment(lockPeriod int) (int, error) {
	if o.status != Assigned {
		return 0, fmt.Errorf("%w: current status is %s", ErrOrderNotAssigned, o.status)
	}
	if o.installmentsPaid >= lockPeriod {
		return 0, ErrInstallmentsFullyPaid
	}

	o.installmentsPaid++
	return o.installmentsPaid, nil
}

// setID validates and sets the order's registry-assigned number.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setContainerID validates and sets the order's shipment batch.
// This is a private method used only during construction.
func (o *Order) setContainerID(containerID int) error {
	if containerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("containerID is invalid", fmt.Errorf("%d is not greater than 0", containerID))
	}
	o.containerID = containerID
	return nil
}

// setVin validates and sets the vehicle identification number.
// This is a private method used only during construction.
func (o *Order) setVin(vin string) error {
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}
	o.vin = vin
	return nil
}
