// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     decimalconv
// Description: Decimal to mixed fraction conversion
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package decimalconv converts a float64 result into the text shown in
// fraction mode: a mixed fraction with diagonal glyphs when the decimal
// expansion terminates early, otherwise the decimal rounded half-up to
// exactly three fractional digits.
package decimalconv

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/fracalc/foundation/utils/mathx"
	"github.com/msto63/fracalc/internal/fraction"
	"github.com/msto63/fracalc/internal/glyph"
)

const (
	// MaxFiniteDigits is the longest expansion treated as terminating
	MaxFiniteDigits = 12

	// MaxPeriodicDigits bounds digit extraction on the periodic path
	MaxPeriodicDigits = 20

	// PeriodicPlaces is the number of fractional digits shown for a
	// periodic value
	PeriodicPlaces = 3
)

// magnitudes at or above this are integral in float64 and exceed int64
const maxWhole = 1 << 62

// Expansion describes how a value was classified
type Expansion struct {
	Negative bool
	Whole    int64

	// Periodic is set when no terminating expansion was found within
	// MaxFiniteDigits digits.
	Periodic bool

	// Numerator and Denominator hold the reduced fractional part of a
	// terminating value. A zero Numerator means the value is integral.
	Numerator   int64
	Denominator int64

	// Digits holds the fractional digits extracted on the periodic path.
	// RepeatStart is the index where a repeating state was seen again, or
	// -1. Truncated is set when extraction stopped at MaxPeriodicDigits.
	Digits      []int
	RepeatStart int
	Truncated   bool
}

// Expand classifies v. The sign is taken off first and the magnitude is
// examined, so -2.75 expands like 2.75 with Negative set. NaN, infinities
// and magnitudes beyond the int64 range yield an empty expansion.
func Expand(v float64) Expansion {
	exp := Expansion{Negative: v < 0, Denominator: 1, RepeatStart: -1}
	mag := math.Abs(v)
	if !(mag < maxWhole) {
		return exp
	}

	whole := math.Trunc(mag)
	frac := mag - whole
	exp.Whole = int64(whole)

	for digits := 1; digits <= MaxFiniteDigits; digits++ {
		scale := math.Pow(10, float64(digits))
		scaled := frac * scale
		if int64(math.Floor(scaled))%10 == 0 && digits > 1 {
			n := int64(math.Round(scaled))
			if n == 0 {
				return exp
			}
			reduced := fraction.MustNew(n, int64(scale)).Simplify()
			exp.Numerator = reduced.Numerator()
			exp.Denominator = reduced.Denominator()
			return exp
		}
	}

	exp.Periodic = true
	exp.Digits, exp.RepeatStart, exp.Truncated = extractDigits(frac)
	return exp
}

// extractDigits produces digits of frac one at a time until the remainder
// is zero, a remainder repeats or the digit bound is reached.
func extractDigits(frac float64) (digits []int, repeatStart int, truncated bool) {
	seen := make(map[uint64]int, MaxPeriodicDigits)
	for len(digits) < MaxPeriodicDigits {
		state := math.Float64bits(frac)
		if first, ok := seen[state]; ok {
			return digits, first, false
		}
		seen[state] = len(digits)

		d := math.Min(math.Floor(frac*10), 9)
		digits = append(digits, int(d))
		frac = frac*10 - d
		if frac == 0 {
			return digits, -1, false
		}
	}
	return digits, -1, true
}

// Convert renders v for fraction mode:
//
//	0.25  -> "¹⁄₄"
//	2.75  -> "2 ³⁄₄"
//	-2.75 -> "-2 ³⁄₄"
//	1/3   -> "0.333"
//	3     -> "3"
func Convert(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if math.Abs(v) >= maxWhole {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return Expand(v).String()
}

// String renders the expansion the way Convert does
func (e Expansion) String() string {
	sign := ""
	if e.Negative {
		sign = "-"
	}

	switch {
	case e.Periodic:
		var b strings.Builder
		b.WriteString(sign)
		b.WriteString(strconv.FormatInt(e.Whole, 10))
		b.WriteByte('.')
		for _, d := range e.Digits {
			b.WriteByte(byte('0' + d))
		}
		// the digit string is well formed by construction
		return mathx.MustNewDecimal(b.String()).StringFixed(PeriodicPlaces, mathx.RoundingModeHalfUp)

	case e.Numerator == 0:
		if e.Whole == 0 {
			return "0"
		}
		return sign + strconv.FormatInt(e.Whole, 10)

	case e.Whole == 0:
		return sign + strings.TrimLeft(glyph.DiagonalFraction(e.Numerator, e.Denominator), " ")

	default:
		return sign + strconv.FormatInt(e.Whole, 10) + glyph.DiagonalFraction(e.Numerator, e.Denominator)
	}
}

// Notation renders the extracted digits with the repeating part in
// parentheses, e.g. "0.(3)" or "0.1(6)". Values that are not periodic
// render as Whole and Numerator/Denominator.
func (e Expansion) Notation() string {
	sign := ""
	if e.Negative {
		sign = "-"
	}
	if !e.Periodic {
		if e.Numerator == 0 {
			return sign + strconv.FormatInt(e.Whole, 10)
		}
		return sign + fraction.FromFraction(fraction.MustNew(e.Whole*e.Denominator+e.Numerator, e.Denominator)).String()
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strconv.FormatInt(e.Whole, 10))
	b.WriteByte('.')
	for i, d := range e.Digits {
		if i == e.RepeatStart {
			b.WriteByte('(')
		}
		b.WriteByte(byte('0' + d))
	}
	switch {
	case e.RepeatStart >= 0:
		b.WriteByte(')')
	case e.Truncated:
		b.WriteString("…")
	}
	return b.String()
}
