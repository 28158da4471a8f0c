package assignment

import (
	"errors"
	"fmt"

	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"
)

var (
	// ErrBookIsNotConstructed is returned when a Book instance was not created
	// through the NewBook or RestoreBook factory functions.
	ErrBookIsNotConstructed = errors.New("Book must be created via NewBook or RestoreBook constructor")

	// ErrOperatorAlreadyRecorded indicates the operator is already recorded
	// against the order. Duplicate assignments are rejected with the index
	// structures untouched.
	ErrOperatorAlreadyRecorded = errors.New("operator already recorded for this order")

	// ErrEntryNotFound indicates the (order, operator) pair is not present
	// in the book.
	ErrEntryNotFound = errors.New("assignment entry not found")
)

// Book is the operator assignment ledger: an ordered bidirectional multimap
// between order ids and operator addresses.
//
// Both directions are kept as ordered slices mirrored by an id-to-index map:
//
//	orderOperators[id]   = [op0, op1, ...]   operatorIndex[id][op]  = position
//	operatorOrders[op]   = [id0, id1, ...]   orderIndex[op][id]     = position
//
// The maps give O(1) membership checks and O(1) removal-by-swap; the slices
// preserve insertion order for enumeration. The two directions are always
// mutually consistent: every pair present in one has a matching entry in the
// other.
//
// An order may accumulate multiple historical operator entries, but the
// assignment workflow keeps exactly one active operator per order.
type Book struct {
	// orderOperators lists operators recorded against each order, in order
	orderOperators map[int][]kernel.Address

	// operatorIndex maps (order, operator) to the operator's slice position
	operatorIndex map[int]map[kernel.Address]int

	// operatorOrders lists orders recorded against each operator, in order
	operatorOrders map[kernel.Address][]int

	// orderIndex maps (operator, order) to the order's slice position
	orderIndex map[kernel.Address]map[int]int

	// guard ensures the book was created via a constructor
	guard kernel.ConstructorGuard
}

// Entry is one (order, operator) pair of the book, used for persistence.
// OperatorPos and OrderPos are the mirrored slice positions, so a restored
// book reproduces the exact index state that was persisted.
type Entry struct {
	OrderID     int
	Operator    kernel.Address
	OperatorPos int
	OrderPos    int
}

// NewBook creates an empty assignment book.
func NewBook() *Book {
	return &Book{
		orderOperators: make(map[int][]kernel.Address),
		operatorIndex:  make(map[int]map[kernel.Address]int),
		operatorOrders: make(map[kernel.Address][]int),
		orderIndex:     make(map[kernel.Address]map[int]int),
		guard:          kernel.NewConstructorGuard(),
	}
}

// RestoreBook reconstructs a Book from persisted entries by placing each
// pair directly at its stored positions, so the restored index state matches
// what was persisted exactly.
//
// Returns an error if an entry carries an invalid operator address, a
// non-positive order id, an out-of-range position, or a duplicate pair.
func RestoreBook(entries []Entry) (*Book, error) {
	book := NewBook()

	perOrder := make(map[int]int)
	perOperator := make(map[kernel.Address]int)
	for _, e := range entries {
		if e.OrderID <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderID is invalid",
				fmt.Errorf("%d is not greater than 0", e.OrderID))
		}
		if err := e.Operator.Validate(); err != nil {
			return nil, err
		}
		perOrder[e.OrderID]++
		perOperator[e.Operator]++
	}

	for id, n := range perOrder {
		book.orderOperators[id] = make([]kernel.Address, n)
		book.operatorIndex[id] = make(map[kernel.Address]int, n)
	}
	for operator, n := range perOperator {
		book.operatorOrders[operator] = make([]int, n)
		book.orderIndex[operator] = make(map[int]int, n)
	}

	for _, e := range entries {
		if e.OperatorPos < 0 || e.OperatorPos >= len(book.orderOperators[e.OrderID]) {
			return nil, errs.NewValueIsOutOfRangeError("operator position", e.OperatorPos, 0,
				len(book.orderOperators[e.OrderID])-1)
		}
		if e.OrderPos < 0 || e.OrderPos >= len(book.operatorOrders[e.Operator]) {
			return nil, errs.NewValueIsOutOfRangeError("order position", e.OrderPos, 0,
				len(book.operatorOrders[e.Operator])-1)
		}
		if _, dup := book.operatorIndex[e.OrderID][e.Operator]; dup {
			return nil, ErrOperatorAlreadyRecorded
		}

		book.orderOperators[e.OrderID][e.OperatorPos] = e.Operator
		book.operatorIndex[e.OrderID][e.Operator] = e.OperatorPos
		book.operatorOrders[e.Operator][e.OrderPos] = e.OrderID
		book.orderIndex[e.Operator][e.OrderID] = e.OrderPos
	}

	return book, nil
}

// Validate ensures the Book was created through a factory function.
func (b *Book) Validate() error {
	if b == nil {
		return ErrBookIsNotConstructed
	}
	return b.guard.Validate(ErrBookIsNotConstructed)
}

// Record appends an operator to an order's operator list and mirrors the
// entry in the operator's order list, storing both positions for O(1)
// lookup and removal.
//
// Duplicate pairs are rejected with ErrOperatorAlreadyRecorded and leave
// both directions untouched.
//
// Parameters:
//   - orderID: Registry-assigned order number (must be positive)
//   - operator: Operator account (must be a constructed address)
//
// Returns:
//   - nil on success
//   - validation error or ErrOperatorAlreadyRecorded otherwise
func (b *Book) Record(orderID int, operator kernel.Address) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID is invalid",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	if err := operator.Validate(); err != nil {
		return err
	}
	if b.IsOperator(operator, orderID) {
		return ErrOperatorAlreadyRecorded
	}

	if b.operatorIndex[orderID] == nil {
		b.operatorIndex[orderID] = make(map[kernel.Address]int)
	}
	if b.orderIndex[operator] == nil {
		b.orderIndex[operator] = make(map[int]int)
	}

	b.operatorIndex[orderID][operator] = len(b.orderOperators[orderID])
	b.orderOperators[orderID] = append(b.orderOperators[orderID], operator)

	b.orderIndex[operator][orderID] = len(b.operatorOrders[operator])
	b.operatorOrders[operator] = append(b.operatorOrders[operator], orderID)

	return nil
}

// IsOperator reports whether the operator is recorded against the order.
//
// It returns false fast when the order has no recorded operators; otherwise
// it looks up the stored position and confirms the entry at that position
// still equals the queried operator, guarding against stale indices after
// removals.
func (b *Book) IsOperator(operator kernel.Address, orderID int) bool {
	operators := b.orderOperators[orderID]
	if len(operators) == 0 {
		return false
	}

	pos, ok := b.operatorIndex[orderID][operator]
	if !ok || pos >= len(operators) {
		return false
	}

	return operators[pos].IsEqual(operator)
}

// OperatorsOf returns the operators recorded against the order, in insertion
// order. The returned slice is a copy.
func (b *Book) OperatorsOf(orderID int) []kernel.Address {
	operators := b.orderOperators[orderID]
	out := make([]kernel.Address, len(operators))
	copy(out, operators)
	return out
}

// OrdersOf returns the orders recorded against the operator, in insertion
// order. The returned slice is a copy.
func (b *Book) OrdersOf(operator kernel.Address) []int {
	orders := b.operatorOrders[operator]
	out := make([]int, len(orders))
	copy(out, orders)
	return out
}

// Remove deletes the (order, operator) pair from both directions using
// swap removal: the last element of each slice is moved into the removed
// slot and its stored position is updated accordingly.
//
// No current assignment workflow removes entries, but the index supports it
// so future unassignment logic cannot desynchronize the two directions.
//
// Returns ErrEntryNotFound if the pair is not recorded.
func (b *Book) Remove(orderID int, operator kernel.Address) error {
	if !b.IsOperator(operator, orderID) {
		return ErrEntryNotFound
	}

	b.swapRemoveOperator(orderID, operator)
	b.swapRemoveOrder(operator, orderID)

	return nil
}

// Entries returns every (order, operator) pair with its stored positions,
// suitable for persistence. Iteration order over orders is unspecified;
// positions fully determine reconstruction.
func (b *Book) Entries() []Entry {
	var entries []Entry
	for orderID, operators := range b.orderOperators {
		for pos, operator := range operators {
			entries = append(entries, Entry{
				OrderID:     orderID,
				Operator:    operator,
				OperatorPos: pos,
				OrderPos:    b.orderIndex[operator][orderID],
			})
		}
	}
	return entries
}

// swapRemoveOperator removes operator from the order's operator list,
// relocating the moved element's stored position.
func (b *Book) swapRemoveOperator(orderID int, operator kernel.Address) {
	operators := b.orderOperators[orderID]
	pos := b.operatorIndex[orderID][operator]
	last := len(operators) - 1

	if pos != last {
		moved := operators[last]
		operators[pos] = moved
		b.operatorIndex[orderID][moved] = pos
	}

	b.orderOperators[orderID] = operators[:last]
	delete(b.operatorIndex[orderID], operator)
}

// swapRemoveOrder removes orderID from the operator's order list,
// relocating the moved element's stored position.
func (b *Book) swapRemoveOrder(operator kernel.Address, orderID int) {
	orders := b.operatorOrders[operator]
	pos := b.orderIndex[operator][orderID]
	last := len(orders) - 1

	if pos != last {
		moved := orders[last]
		orders[pos] = moved
		b.orderIndex[operator][moved] = pos
	}

	b.operatorOrders[operator] = orders[:last]
	delete(b.orderIndex[operator], orderID)
}
