package assignment_test

import (
	"testing"

	"fleetbook/internal/core/domain/model/assignment"
	"fleetbook/internal/core/domain/model/kernel"
	"fleetbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Record(t *testing.T) {
	t.Run("records_pair_in_both_directions", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()

		require.NoError(t, book.Record(7, operator))

		assert.True(t, book.IsOperator(operator, 7))
		assert.Equal(t, []kernel.Address{operator}, book.OperatorsOf(7))
		assert.Equal(t, []int{7}, book.OrdersOf(operator))
	})

	t.Run("rejects_duplicate_pair_leaving_indices_unchanged", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()
		require.NoError(t, book.Record(7, operator))

		err := book.Record(7, operator)

		require.Error(t, err)
		assert.ErrorIs(t, err, assignment.ErrOperatorAlreadyRecorded)
		assert.Len(t, book.OperatorsOf(7), 1)
		assert.Len(t, book.OrdersOf(operator), 1)
	})

	t.Run("rejects_non_positive_order_id", func(t *testing.T) {
		book := assignment.NewBook()

		err := book.Record(0, kernel.NewAddress())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_value_operator", func(t *testing.T) {
		book := assignment.NewBook()
		var operator kernel.Address

		err := book.Record(7, operator)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("same_operator_may_serve_multiple_orders", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()

		require.NoError(t, book.Record(1, operator))
		require.NoError(t, book.Record(2, operator))
		require.NoError(t, book.Record(3, operator))

		assert.Equal(t, []int{1, 2, 3}, book.OrdersOf(operator))
		assert.True(t, book.IsOperator(operator, 2))
	})
}

func TestBook_IsOperator(t *testing.T) {
	t.Run("false_fast_for_order_without_operators", func(t *testing.T) {
		book := assignment.NewBook()

		assert.False(t, book.IsOperator(kernel.NewAddress(), 42))
	})

	t.Run("false_for_operator_of_another_order", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()
		require.NoError(t, book.Record(1, operator))

		assert.False(t, book.IsOperator(operator, 2))
	})
}

func TestBook_Remove(t *testing.T) {
	t.Run("removes_pair_from_both_directions", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()
		require.NoError(t, book.Record(7, operator))

		require.NoError(t, book.Remove(7, operator))

		assert.False(t, book.IsOperator(operator, 7))
		assert.Empty(t, book.OperatorsOf(7))
		assert.Empty(t, book.OrdersOf(operator))
	})

	t.Run("swap_removal_relocates_moved_element_index", func(t *testing.T) {
		book := assignment.NewBook()
		first := kernel.NewAddress()
		second := kernel.NewAddress()
		third := kernel.NewAddress()
		require.NoError(t, book.Record(7, first))
		require.NoError(t, book.Record(7, second))
		require.NoError(t, book.Record(7, third))

		// Removing the head swaps the tail into its slot; the moved entry's
		// stored position must follow, so membership stays exact.
		require.NoError(t, book.Remove(7, first))

		assert.False(t, book.IsOperator(first, 7))
		assert.True(t, book.IsOperator(second, 7))
		assert.True(t, book.IsOperator(third, 7))
		assert.ElementsMatch(t, []kernel.Address{second, third}, book.OperatorsOf(7))
	})

	t.Run("swap_removal_on_operator_side", func(t *testing.T) {
		book := assignment.NewBook()
		operator := kernel.NewAddress()
		require.NoError(t, book.Record(1, operator))
		require.NoError(t, book.Record(2, operator))
		require.NoError(t, book.Record(3, operator))

		require.NoError(t, book.Remove(1, operator))

		assert.ElementsMatch(t, []int{2, 3}, book.OrdersOf(operator))
		assert.True(t, book.IsOperator(operator, 3))
		assert.False(t, book.IsOperator(operator, 1))
	})

	t.Run("rejects_missing_pair", func(t *testing.T) {
		book := assignment.NewBook()

		err := book.Remove(7, kernel.NewAddress())

		require.Error(t, err)
		assert.ErrorIs(t, err, assignment.ErrEntryNotFound)
	})
}

func TestBook_EntriesRoundTrip(t *testing.T) {
	t.Run("restore_reproduces_persisted_state", func(t *testing.T) {
		book := assignment.NewBook()
		opA := kernel.NewAddress()
		opB := kernel.NewAddress()
		require.NoError(t, book.Record(1, opA))
		require.NoError(t, book.Record(2, opB))
		require.NoError(t, book.Record(3, opA))

		restored, err := assignment.RestoreBook(book.Entries())

		require.NoError(t, err)
		assert.True(t, restored.IsOperator(opA, 1))
		assert.True(t, restored.IsOperator(opB, 2))
		assert.True(t, restored.IsOperator(opA, 3))
		assert.Equal(t, book.OrdersOf(opA), restored.OrdersOf(opA))
		assert.Equal(t, book.OperatorsOf(2), restored.OperatorsOf(2))
	})

	t.Run("restore_rejects_duplicate_entries", func(t *testing.T) {
		operator := kernel.NewAddress()
		entries := []assignment.Entry{
			{OrderID: 1, Operator: operator, OperatorPos: 0, OrderPos: 0},
			{OrderID: 1, Operator: operator, OperatorPos: 0, OrderPos: 0},
		}

		_, err := assignment.RestoreBook(entries)

		require.Error(t, err)
	})

	t.Run("restore_rejects_out_of_range_positions", func(t *testing.T) {
		entries := []assignment.Entry{
			{OrderID: 1, Operator: kernel.NewAddress(), OperatorPos: 5, OrderPos: 0},
		}

		_, err := assignment.RestoreBook(entries)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty_book_round_trips", func(t *testing.T) {
		restored, err := assignment.RestoreBook(nil)

		require.NoError(t, err)
		assert.Empty(t, restored.Entries())
	})
}
