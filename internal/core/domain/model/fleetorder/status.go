package fleetorder

import (
	"fmt"

	"fleetbook/internal/pkg/errs"
)

// Status represents the lifecycle state of a fleet order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Initialized ──> Shipped ──> Arrived ──> Cleared ──> Registered ──> Assigned ──> Transferred
//
// Shipped, Arrived and Cleared are reached through bulk container updates.
// Cleared to Registered is consumed by license-plate registration and
// Registered to Assigned by operator assignment; both require side data a
// bulk update cannot supply, so they are dedicated single-order actions.
// Assigned to Transferred is gated on the order's installments being fully
// paid. Transferred is a final state.
//
// Each state occupies its own bit so a raw status value can travel through
// the bulk-update API unambiguously: any valid non-initial status has exactly
// one bit set.
type Status int

const (
	// Initialized is the implicit starting state of an order that has not
	// been shipped yet. It is the only valid status without a set bit and is
	// deliberately excluded from Validate.
	Initialized Status = 0

	// Shipped indicates the order left the factory as part of a container.
	Shipped Status = 1 << 0

	// Arrived indicates the order's container reached the destination port.
	Arrived Status = 1 << 1

	// Cleared indicates the order passed customs clearance.
	Cleared Status = 1 << 2

	// Registered indicates a license plate has been recorded for the order.
	Registered Status = 1 << 3

	// Assigned indicates an operator has been assigned and installments
	// are being collected.
	Assigned Status = 1 << 4

	// Transferred indicates ownership has been handed over to the operator
	// after the final installment. This is a final state.
	Transferred Status = 1 << 5
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Initialized: "Initialized",
		Shipped:     "Shipped",
		Arrived:     "Arrived",
		Cleared:     "Cleared",
		Registered:  "Registered",
		Assigned:    "Assigned",
		Transferred: "Transferred",
	}
}

// Validate checks if the Status value is a well-formed lifecycle state.
//
// A status is valid iff exactly one bit is set within the defined range
// (s > 0, s <= Transferred, s & (s-1) == 0). Initialized (0) is a distinct
// sentinel: valid as a stored starting value but never as a proposed one,
// so it fails this check.
//
// Returns:
//   - nil if the status is a single valid flag
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if s <= 0 || s > Transferred || s&(s-1) != 0 {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a single valid status flag", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - the state name for valid statuses and for Initialized (0)
//   - "Unknown" for any other value
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether next is the permitted successor of s,
// ignoring the installment gate on Assigned.
//
// The transition table is:
//
//	Shipped     -> Arrived
//	Arrived     -> Cleared
//	Cleared     -> none (consumed by license-plate registration)
//	Registered  -> none (consumed by operator assignment)
//	Assigned    -> Transferred (additionally gated on installments, see
//	               Order.ValidateTransition)
//	Transferred -> none (final)
//
// Initialized has no entry here: whether an unset order may receive a first
// status is a policy decision owned by the bulk updater, not the table.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Shipped:
		return next == Arrived
	case Arrived:
		return next == Cleared
	case Assigned:
		return next == Transferred
	default:
		return false
	}
}
