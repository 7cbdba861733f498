// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     fraction
// Description: Mixed fractions (whole part plus proper fraction)
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package fraction

import (
	"fmt"
	"strconv"
)

// Mixed is a whole number plus a fraction. In normalised form the fraction
// is proper; a value below one carries its sign on the numerator, any other
// value carries it on the whole part.
type Mixed struct {
	whole    int64
	fraction Fraction
}

// NewMixed creates a mixed fraction as given, without normalising. A
// negative denominator moves its sign to the numerator.
func NewMixed(whole, numerator, denominator int64) (Mixed, error) {
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	f, err := New(numerator, denominator)
	if err != nil {
		return Mixed{}, err
	}
	return Mixed{whole: whole, fraction: f}, nil
}

// FromFraction converts f into a normalised mixed fraction
func FromFraction(f Fraction) Mixed {
	return Mixed{fraction: f}.Normalize()
}

// Whole returns the whole part
func (m Mixed) Whole() int64 {
	return m.whole
}

// Numerator returns the numerator of the fractional part
func (m Mixed) Numerator() int64 {
	return m.fraction.Numerator()
}

// Denominator returns the denominator of the fractional part
func (m Mixed) Denominator() int64 {
	return m.fraction.Denominator()
}

// Fraction returns the fractional part
func (m Mixed) Fraction() Fraction {
	return m.fraction
}

// ToImproper folds the whole part into the numerator: |w|*d + n, negated
// when w is negative.
func (m Mixed) ToImproper() Fraction {
	d := m.fraction.Denominator()
	n := abs(m.whole)*d + m.fraction.numerator
	if m.whole < 0 {
		n = -n
	}
	return Fraction{numerator: n, denominator: d}
}

// Normalize reduces m and splits it into a whole part and a proper
// fraction. The sign comes from the improper numerator.
func (m Mixed) Normalize() Mixed {
	improper := m.ToImproper().Simplify()

	var sign int64 = 1
	if improper.numerator < 0 {
		sign = -1
	}
	magnitude := abs(improper.numerator)
	d := improper.denominator

	whole := magnitude / d
	rest := magnitude % d
	if whole == 0 {
		return Mixed{fraction: Fraction{numerator: sign * rest, denominator: d}}
	}
	return Mixed{whole: sign * whole, fraction: Fraction{numerator: rest, denominator: d}}
}

// Add returns m + other, normalised
func (m Mixed) Add(other Mixed) Mixed {
	return FromFraction(m.ToImproper().Add(other.ToImproper()))
}

// Subtract returns m - other, normalised
func (m Mixed) Subtract(other Mixed) Mixed {
	return FromFraction(m.ToImproper().Subtract(other.ToImproper()))
}

// MultiplyBy returns m * other, normalised
func (m Mixed) MultiplyBy(other Mixed) Mixed {
	return FromFraction(m.ToImproper().Multiply(other.ToImproper()))
}

// DivideBy returns m / other, normalised. A zero divisor fails with
// CodeDivideByZero.
func (m Mixed) DivideBy(other Mixed) (Mixed, error) {
	q, err := m.ToImproper().Divide(other.ToImproper())
	if err != nil {
		return Mixed{}, err
	}
	return FromFraction(q), nil
}

// Equal reports whether m and other denote the same value
func (m Mixed) Equal(other Mixed) bool {
	return m.ToImproper().Equal(other.ToImproper())
}

// ToDecimal returns the floating point value of m
func (m Mixed) ToDecimal() float64 {
	return m.ToImproper().ToDecimal()
}

// String renders "w |n|/d", the bare whole part when there is no fraction,
// or the fraction alone when the whole part is zero.
func (m Mixed) String() string {
	switch {
	case m.fraction.numerator == 0:
		return strconv.FormatInt(m.whole, 10)
	case m.whole == 0:
		return m.fraction.String()
	default:
		return fmt.Sprintf("%d %d/%d", m.whole, abs(m.fraction.numerator), m.fraction.Denominator())
	}
}
