// Package assignment provides the operator assignment ledger for fleet
// orders: an ordered bidirectional multimap between order ids and operator
// accounts.
//
// The package includes:
//   - Book: The ledger with O(1) membership checks and O(1) swap removal
//     in both directions
//   - Entry: A persistence view of one (order, operator) pair with its
//     mirrored index positions
//
// The core invariant is mutual consistency: for every (order, operator)
// pair present in one direction an equivalent entry exists in the other with
// a matching stored position. All mutation goes through Book methods so the
// two hand-maintained directions can never drift apart.
package assignment
