package services

import (
	"errors"
	"math"
	"math/bits"

	"fleetbook/internal/pkg/errs"
)

// ErrNothingToDistribute is returned when the computed installment amount is
// zero, which indicates misconfigured registry values for the order.
var ErrNothingToDistribute = errors.New("computed installment amount is zero")

// valueUnitDecimals is the fixed-point convention of registry value fields:
// expected values are quoted in a USD-like unit carrying six decimals.
const valueUnitDecimals = 6

// InstallmentSplit is the result of splitting one weekly installment.
// All amounts are expressed in the value ledger's smallest unit.
type InstallmentSplit struct {
	// InstallmentAmount is pulled from the payer into the system account.
	InstallmentAmount uint64

	// AmountPerFraction is paid out of the system account per fraction of
	// ownership; an owner holding n fractions receives n times this amount.
	AmountPerFraction uint64
}

// YieldCalculator is a domain service computing the weekly installment due
// on a fleet order and its proportional owner-yield fan-out.
//
// Two registry value fields drive the split: the protocol expected value
// (what the operator repays, retained by the system) and the liquidity
// provider expected value (the pool distributed to fractional owners).
// Both are divided evenly across the order's lock period.
//
// All division is integer floor division with no remainder carry-forward
// across installments. The cumulative rounding loss is bounded by the
// fraction count times the number of installments; see the distribution
// tests. The flooring lives in one place (scaleToLedger and the divisions
// here) so a remainder-carry policy could replace it without touching
// callers.
//
// Example:
//
//	calc := services.NewYieldCalculator()
//	split, err := calc.Split(12000_000000, 3000_000000, 48, 6, 100)
//	if err != nil {
//	    return err
//	}
//	// split.InstallmentAmount is charged to the payer,
//	// owner payouts are fractions * split.AmountPerFraction.
type YieldCalculator struct{}

// NewYieldCalculator creates a new YieldCalculator instance.
func NewYieldCalculator() YieldCalculator {
	return YieldCalculator{}
}

// Split computes the installment charge and the per-fraction yield for one
// weekly installment of an order.
//
// Parameters:
//   - expectedValue: Total financed value of the order, in the six-decimal value unit
//   - lpExpectedValue: Total owner-yield pool of the order, same unit
//   - lockPeriod: Installment count ceiling for the order (must be positive)
//   - decimals: The value ledger's declared decimal precision
//   - maxFraction: The registry's maximum fraction count per order (must be positive)
//
// Returns:
//   - InstallmentSplit on success
//   - ErrNothingToDistribute if the installment floors to zero
//   - a validation error for non-positive lockPeriod or maxFraction
//   - an out-of-range error if scaling to the ledger unit overflows uint64
func (c YieldCalculator) Split(
	expectedValue, lpExpectedValue uint64,
	lockPeriod int,
	decimals uint8,
	maxFraction uint64,
) (InstallmentSplit, error) {
	if lockPeriod <= 0 {
		return InstallmentSplit{}, errs.NewValueIsInvalidError("lockPeriod")
	}
	if maxFraction == 0 {
		return InstallmentSplit{}, errs.NewValueIsInvalidError("maxFraction")
	}

	installment, err := scaleToLedger(expectedValue/uint64(lockPeriod), decimals)
	if err != nil {
		return InstallmentSplit{}, err
	}
	if installment == 0 {
		return InstallmentSplit{}, ErrNothingToDistribute
	}

	yieldShare, err := scaleToLedger(lpExpectedValue/uint64(lockPeriod), decimals)
	if err != nil {
		return InstallmentSplit{}, err
	}

	return InstallmentSplit{
		InstallmentAmount: installment,
		AmountPerFraction: yieldShare / maxFraction,
	}, nil
}

// OwnerPayout returns the yield owed to an owner holding the given number of
// fractions. Rejects products that do not fit uint64 so no garbage amount
// ever reaches the ledger.
func (c YieldCalculator) OwnerPayout(fractions, amountPerFraction uint64) (uint64, error) {
	return mulChecked(fractions, amountPerFraction, "payout")
}

// scaleToLedger converts an amount from the six-decimal value unit into the
// ledger's smallest unit. This is the single rounding policy point: the
// conversion floors when the ledger carries fewer decimals than the value
// unit. Scaling up rejects amounts whose ledger representation does not fit
// uint64 (a ledger may declare up to 18 decimals).
func scaleToLedger(amount uint64, decimals uint8) (uint64, error) {
	if decimals >= valueUnitDecimals {
		return mulChecked(amount, pow10(decimals-valueUnitDecimals), "amount")
	}
	return amount / pow10(valueUnitDecimals-decimals), nil
}

// mulChecked multiplies a by b, failing when the product overflows uint64.
func mulChecked(a, b uint64, paramName string) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errs.NewValueIsOutOfRangeError(paramName, a, 0, uint64(math.MaxUint64)/max(b, 1))
	}
	return lo, nil
}

// pow10 returns 10^n for small n.
func pow10(n uint8) uint64 {
	result := uint64(1)
	for i := uint8(0); i < n; i++ {
		result *= 10
	}
	return result
}
