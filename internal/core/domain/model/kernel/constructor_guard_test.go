package kernel_test

import (
	"errors"
	"testing"

	"fleetbook/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := kernel.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		assert.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		assert.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := kernel.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		assert.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard kernel.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		assert.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var guard kernel.ConstructorGuard // zero value

		// When
		err := guard.Validate(nil)

		// Then
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Vin struct {
		value string
		guard kernel.ConstructorGuard
	}

	var ErrVinNotConstructed = errors.New("Vin must be created via NewVin")

	NewVin := func(value string) (Vin, error) {
		if value == "" {
			return Vin{}, errors.New("vehicle identification number is required")
		}
		return Vin{
			value: value,
			guard: kernel.NewConstructorGuard(),
		}, nil
	}

	ValidateVin := func(v Vin) error {
		return v.guard.Validate(ErrVinNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		vin, err := NewVin("5YJ3E1EA7KF000316")

		// Then
		require.NoError(t, err)
		assert.NoError(t, ValidateVin(vin))
		assert.Equal(t, "5YJ3E1EA7KF000316", vin.value)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var vin Vin // zero value

		// When
		err := ValidateVin(vin)

		// Then
		// Zero value Vin has zero value guard which returns the error we pass
		assert.Error(t, err)
		assert.Equal(t, ErrVinNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test empty identifier
		_, err := NewVin("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "vehicle identification number is required")
	})
}
