// File: decimal.go
// Title: Decimal Rounding Implementation
// Description: Implements an exact decimal value on top of big.Rat with
//              rounding to a fixed number of fractional digits. Used to
//              render results with exactly three decimals.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding
// - 2026-10-19 v0.2.0: Sign-symmetric rounding, floats parsed from shortest text

package mathx

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds halves away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds halves to the even neighbour (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeDown truncates toward zero
	RoundingModeDown
)

// Decimal represents an exact decimal number
type Decimal struct {
	value *big.Rat
}

// NewDecimal creates a Decimal from text such as "123.45", "-0.5" or "1/3"
func NewDecimal(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("invalid decimal format: %s", s)
	}
	return Decimal{value: r}, nil
}

// MustNewDecimal creates a Decimal from text, panicking on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromFloat creates a Decimal from the shortest decimal text that
// round-trips to f. Infinities and NaN become zero.
func NewDecimalFromFloat(f float64) Decimal {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return NewDecimalFromInt(0)
	}
	// FormatFloat output always parses
	r, _ := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	return Decimal{value: r}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d is zero
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Compare returns -1, 0 or +1 comparing d with other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Float64 returns the nearest float64 value
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Round returns d rounded to places fractional digits. Rounding is
// symmetric around zero, so -2.0625 rounds half-up to -2.063.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	neg := num.Sign() < 0
	num.Abs(num)

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	twice := new(big.Int).Lsh(r, 1)
	cmp := twice.Cmp(den)

	switch mode {
	case RoundingModeHalfUp:
		if cmp >= 0 {
			q.Add(q, big.NewInt(1))
		}
	case RoundingModeHalfEven:
		if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
			q.Add(q, big.NewInt(1))
		}
	case RoundingModeDown:
	}

	if neg {
		q.Neg(q)
	}
	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// StringFixed rounds d and renders exactly places fractional digits
func (d Decimal) StringFixed(places int, mode RoundingMode) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, mode).rat().FloatString(places)
}

// String returns the exact decimal text when d has a finite expansion,
// otherwise a fraction "n/d"
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	if places, exact := r.FloatPrec(); exact {
		return r.FloatString(places)
	}
	return r.RatString()
}

// FormatHalfUp renders v with exactly places fractional digits, rounding
// halves away from zero on the shortest decimal text of v
func FormatHalfUp(v float64, places int) string {
	return NewDecimalFromFloat(v).StringFixed(places, RoundingModeHalfUp)
}
