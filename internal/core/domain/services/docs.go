// Package services provides domain services that implement business
// computations spanning multiple domain concepts in the fleet order book.
//
// The package includes:
//   - YieldCalculator: A domain service splitting a weekly installment into
//     the system-retained operator-cost share and the per-fraction owner
//     yield, with a single isolated rounding policy
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
