package kernel_test

import (
	"testing"

	"fleetbook/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("generates_valid_address", func(t *testing.T) {
		addr := kernel.NewAddress()

		require.NoError(t, addr.Validate())
		assert.NotEqual(t, uuid.Nil, addr.Bytes())
	})

	t.Run("generates_distinct_addresses", func(t *testing.T) {
		a := kernel.NewAddress()
		b := kernel.NewAddress()

		assert.False(t, a.IsEqual(b))
	})
}

func TestAddressFromString(t *testing.T) {
	t.Run("parses_canonical_form", func(t *testing.T) {
		addr, err := kernel.AddressFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", addr.String())
	})

	t.Run("rejects_malformed_input", func(t *testing.T) {
		_, err := kernel.AddressFromString("not-an-address")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid address format")
	})
}

func TestAddressFromBytes(t *testing.T) {
	t.Run("round_trips_through_bytes", func(t *testing.T) {
		original := kernel.NewAddress()
		raw := original.Bytes()

		restored, err := kernel.AddressFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.AddressFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("rejects_nil_address_bytes", func(t *testing.T) {
		zero := uuid.Nil

		_, err := kernel.AddressFromBytes(zero[:])

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})

	t.Run("constructed_address_is_valid", func(t *testing.T) {
		addr := kernel.NewAddress()

		require.NoError(t, addr.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("same_account_compares_equal", func(t *testing.T) {
		a := kernel.NewAddress()
		b := a

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different_accounts_compare_unequal", func(t *testing.T) {
		a := kernel.NewAddress()
		b := kernel.NewAddress()

		assert.False(t, a.IsEqual(b))
	})
}
