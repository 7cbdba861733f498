// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     format
// Description: Result formatting for fraction and plain arithmetic mode
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package format renders evaluation results. Integer results print without
// a decimal point in both modes. Otherwise fraction mode converts the value
// into a mixed fraction (or a three digit decimal for periodic values) and
// plain mode prints the decimal, rounded to three digits when it is long.
package format

import (
	"math"
	"strconv"

	"github.com/msto63/fracalc/foundation/utils/mathx"
	"github.com/msto63/fracalc/internal/decimalconv"
	"github.com/msto63/fracalc/internal/glyph"
)

const (
	// MaxPlainLength is the longest decimal text plain mode prints as is
	MaxPlainLength = 10

	// RoundedPlaces is the number of fractional digits of a long result
	RoundedPlaces = 3
)

// Mode selects the formatting policy
type Mode int

const (
	// ModeArithmetic formats plain arithmetic results
	ModeArithmetic Mode = iota

	// ModeFraction formats results of expressions with fraction literals
	ModeFraction
)

// String returns the name of the mode
func (m Mode) String() string {
	switch m {
	case ModeFraction:
		return "fraction"
	case ModeArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// Result formats v according to mode
func Result(v float64, mode Mode) string {
	if mode == ModeFraction {
		return Fraction(v)
	}
	return Arithmetic(v)
}

// IsInteger reports whether v has no fractional part
func IsInteger(v float64) bool {
	return !math.IsInf(v, 0) && math.Floor(v) == v
}

// Integer renders an integral v without a decimal point. Negative zero
// renders as "0".
func Integer(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// Fraction formats v in fraction mode
func Fraction(v float64) string {
	if IsInteger(v) {
		return Integer(v)
	}
	return decimalconv.Convert(v)
}

// Arithmetic formats v in plain mode
func Arithmetic(v float64) string {
	if IsInteger(v) {
		return Integer(v)
	}
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if len(text) > MaxPlainLength {
		return mathx.FormatHalfUp(v, RoundedPlaces)
	}
	return text
}

// DiagonalFraction renders numerator/denominator with superscript and
// subscript digits around the fraction slash, prefixed by a space
func DiagonalFraction(numerator, denominator int64) string {
	return glyph.DiagonalFraction(numerator, denominator)
}
