// Package money defines the integer milliunit representation used for all
// monetary arithmetic in the budget engine. One milliunit is 1/1000th of a
// currency unit, so 1500750 represents 1500.75. No floating-point currency
// math happens on Milliunit values; display amounts cross into and out of
// this package exactly once, through the conversion functions below.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Milliunit is a signed integer amount of 1/1000th currency units.
type Milliunit int64

// Zero is the canonical empty amount.
const Zero Milliunit = 0

// MaxAssigned is the maximum absolute value accepted for any assigned or
// moved amount (100 billion milliunits, i.e. 100 million currency units).
const MaxAssigned Milliunit = 100_000_000_000

var thousand = decimal.NewFromInt(1000)

// FromDecimal converts a display amount to milliunits, rounding half away
// from zero on the third decimal place. Whole-cent amounts round-trip
// exactly.
func FromDecimal(d decimal.Decimal) Milliunit {
	return Milliunit(d.Mul(thousand).Round(0).IntPart())
}

// FromFloat converts a display amount received at the API boundary to
// milliunits. NaN and infinities return (Zero, false); callers surface that
// as an invalid-input outcome rather than an error.
func FromFloat(amount float64) (Milliunit, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Zero, false
	}
	return FromDecimal(decimal.NewFromFloat(amount)), true
}

// ToDecimal returns the display amount as an exact decimal.
func (m Milliunit) ToDecimal() decimal.Decimal {
	return decimal.New(int64(m), -3)
}

// ToFloat returns the display amount for JSON responses.
func (m Milliunit) ToFloat() float64 {
	f, _ := m.ToDecimal().Float64()
	return f
}

// Abs returns the absolute value.
func (m Milliunit) Abs() Milliunit {
	if m < 0 {
		return -m
	}
	return m
}

// IsNegative reports whether the amount is below zero.
func (m Milliunit) IsNegative() bool { return m < 0 }

// IsZero reports whether the amount is exactly zero.
func (m Milliunit) IsZero() bool { return m == 0 }

// Min returns the smaller of two amounts.
func Min(a, b Milliunit) Milliunit {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Milliunit) Milliunit {
	if a > b {
		return a
	}
	return b
}

// ClampAssigned bounds an amount to [-MaxAssigned, MaxAssigned].
func ClampAssigned(m Milliunit) Milliunit {
	if m > MaxAssigned {
		return MaxAssigned
	}
	if m < -MaxAssigned {
		return -MaxAssigned
	}
	return m
}
