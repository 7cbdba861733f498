// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     fraction
// Description: Exact fraction and mixed fraction values
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package fraction implements fraction and mixed fraction values on int64
// numerators and denominators. Values are immutable; every operation returns
// a new value. Fraction arithmetic does not reduce, Mixed arithmetic always
// normalises.
package fraction

import (
	"fmt"
	"strconv"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

// Fraction is a numerator/denominator pair with a non-zero denominator
type Fraction struct {
	numerator   int64
	denominator int64
}

// New creates a fraction. A zero denominator fails with CodeDivideByZero.
func New(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, divideByZero("fraction.New", numerator)
	}
	return Fraction{numerator: numerator, denominator: denominator}, nil
}

// MustNew is New for constant arguments; it panics on a zero denominator
func MustNew(numerator, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// Numerator returns the numerator
func (f Fraction) Numerator() int64 {
	return f.numerator
}

// Denominator returns the denominator
func (f Fraction) Denominator() int64 {
	if f.denominator == 0 {
		// zero value Fraction reads as 0/1
		return 1
	}
	return f.denominator
}

// Add returns f + other by cross multiplication
func (f Fraction) Add(other Fraction) Fraction {
	return Fraction{
		numerator:   f.numerator*other.Denominator() + other.numerator*f.Denominator(),
		denominator: f.Denominator() * other.Denominator(),
	}
}

// Subtract returns f - other by cross multiplication
func (f Fraction) Subtract(other Fraction) Fraction {
	return Fraction{
		numerator:   f.numerator*other.Denominator() - other.numerator*f.Denominator(),
		denominator: f.Denominator() * other.Denominator(),
	}
}

// Multiply returns f * other
func (f Fraction) Multiply(other Fraction) Fraction {
	return Fraction{
		numerator:   f.numerator * other.numerator,
		denominator: f.Denominator() * other.Denominator(),
	}
}

// Divide returns f / other. Dividing by a zero fraction fails with
// CodeDivideByZero.
func (f Fraction) Divide(other Fraction) (Fraction, error) {
	if other.numerator == 0 {
		return Fraction{}, divideByZero("fraction.Divide", f.numerator)
	}
	return Fraction{
		numerator:   f.numerator * other.Denominator(),
		denominator: f.Denominator() * other.numerator,
	}, nil
}

// Simplify reduces f to lowest terms with a positive denominator
func (f Fraction) Simplify() Fraction {
	n, d := f.numerator, f.Denominator()
	if g := GCD(n, d); g > 1 {
		n /= g
		d /= g
	}
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction{numerator: n, denominator: d}
}

// Equal reports whether f and other denote the same value
func (f Fraction) Equal(other Fraction) bool {
	return f.numerator*other.Denominator() == other.numerator*f.Denominator()
}

// ToDecimal returns the floating point value of f
func (f Fraction) ToDecimal() float64 {
	return float64(f.numerator) / float64(f.Denominator())
}

// String renders "n/d", or just n when the denominator is 1
func (f Fraction) String() string {
	if f.Denominator() == 1 {
		return strconv.FormatInt(f.numerator, 10)
	}
	return fmt.Sprintf("%d/%d", f.numerator, f.Denominator())
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, x) is |x|.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func divideByZero(op string, numerator int64) *mdwerror.Error {
	return mdwerror.New(mdwerror.CodeDivideByZero.DisplayMessage()).
		WithCode(mdwerror.CodeDivideByZero).
		WithOperation(op).
		WithDetail("numerator", numerator)
}
