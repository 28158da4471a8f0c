package reentry_test

import (
	"errors"
	"testing"

	"fleetbook/internal/pkg/reentry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Enter(t *testing.T) {
	t.Run("first_enter_succeeds", func(t *testing.T) {
		var g reentry.Guard

		require.NoError(t, g.Enter())
	})

	t.Run("nested_enter_is_rejected", func(t *testing.T) {
		var g reentry.Guard
		require.NoError(t, g.Enter())

		err := g.Enter()

		require.Error(t, err)
		assert.ErrorIs(t, err, reentry.ErrReentrantCall)
	})

	t.Run("enter_succeeds_again_after_leave", func(t *testing.T) {
		var g reentry.Guard
		require.NoError(t, g.Enter())
		g.Leave()

		require.NoError(t, g.Enter())
	})
}

func TestGuard_Do(t *testing.T) {
	t.Run("runs_function_and_returns_its_error", func(t *testing.T) {
		var g reentry.Guard
		want := errors.New("boom")

		err := g.Do(func() error { return want })

		require.ErrorIs(t, err, want)
	})

	t.Run("rejects_reentrant_do", func(t *testing.T) {
		var g reentry.Guard

		var inner error
		err := g.Do(func() error {
			inner = g.Do(func() error { return nil })
			return nil
		})

		require.NoError(t, err)
		assert.ErrorIs(t, inner, reentry.ErrReentrantCall)
	})

	t.Run("guard_is_released_after_failure", func(t *testing.T) {
		var g reentry.Guard
		_ = g.Do(func() error { return errors.New("boom") })

		require.NoError(t, g.Do(func() error { return nil }))
	})

	t.Run("guard_is_released_after_panic", func(t *testing.T) {
		var g reentry.Guard
		assert.Panics(t, func() {
			_ = g.Do(func() error { panic("boom") })
		})

		require.NoError(t, g.Do(func() error { return nil }))
	})
}
