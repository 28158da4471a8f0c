// Package fleetorder provides domain entities and business logic for fleet
// order management in the order book. It implements the Order aggregate root
// with lifecycle management, installment bookkeeping, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recorded
//     identifiers, the installment counter, and the lifecycle
//   - Status: A one-hot-encoded state machine that enforces valid
//     lifecycle transitions
//   - Container: A shipment batch of orders sharing a tracking reference
//
// Key business rules:
//   - Orders come into existence at shipment with a recorded VIN
//   - Status follows a defined workflow: Shipped -> Arrived -> Cleared ->
//     Registered -> Assigned -> Transferred
//   - License-plate registration and operator assignment are dedicated
//     single-order actions; the rest moves through bulk container updates
//   - An Assigned order becomes Transferred only once its installments
//     reach the lock period
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package fleetorder
