// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     glyph
// Description: Superscript/subscript digit tables and diagonal fractions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package glyph holds the unicode glyphs used to display and enter diagonal
// fractions, and the conversions between them and plain ASCII text.
package glyph

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// FractionSlash separates numerator and denominator of a diagonal fraction
	FractionSlash = '⁄'

	// DivisionMarker stands in for a plain '/' while fraction literals are
	// being resolved
	DivisionMarker = '÷'

	// SuperscriptMinus is the sign of a negative diagonal numerator
	SuperscriptMinus = '⁻'

	// SubscriptMinus is accepted on input like SuperscriptMinus
	SubscriptMinus = '₋'
)

// Superscripts maps the digits 0-9 to their superscript glyphs
var Superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// Subscripts maps the digits 0-9 to their subscript glyphs
var Subscripts = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

var normalizer = newNormalizer()

func newNormalizer() *strings.Replacer {
	pairs := make([]string, 0, 2*(2*len(Superscripts)+4))
	for i := range Superscripts {
		digit := strconv.Itoa(i)
		pairs = append(pairs, string(Superscripts[i]), digit, string(Subscripts[i]), digit)
	}
	pairs = append(pairs,
		"/", string(DivisionMarker),
		string(FractionSlash), "/",
		string(SuperscriptMinus), "-",
		string(SubscriptMinus), "-",
	)
	return strings.NewReplacer(pairs...)
}

// Normalize rewrites text into the form the number extractor works on:
// superscript and subscript digits become ASCII digits, a plain '/' becomes
// DivisionMarker and the fraction slash becomes '/'. All replacements
// happen in one pass, so a replaced '/' is never replaced again.
func Normalize(text string) string {
	return normalizer.Replace(text)
}

// ContainsFraction reports whether text holds a diagonal fraction literal
func ContainsFraction(text string) bool {
	return strings.ContainsRune(text, FractionSlash)
}

// Superscript renders v with superscript digits
func Superscript(v int64) string {
	return mapDigits(v, Superscripts)
}

// Subscript renders v with subscript digits
func Subscript(v int64) string {
	return mapDigits(v, Subscripts)
}

func mapDigits(v int64, table [10]rune) string {
	var b strings.Builder
	for _, r := range strconv.FormatInt(v, 10) {
		if r == '-' {
			b.WriteRune(SuperscriptMinus)
			continue
		}
		b.WriteRune(table[r-'0'])
	}
	return b.String()
}

// DiagonalFraction renders n/d as a leading space, the superscript
// numerator, the fraction slash and the subscript denominator. A zero
// denominator renders as "" and a zero numerator as "0". A negative
// denominator moves its sign to the numerator.
func DiagonalFraction(numerator, denominator int64) string {
	switch {
	case denominator == 0:
		return ""
	case numerator == 0:
		return "0"
	}
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	return " " + Superscript(numerator) + string(FractionSlash) + Subscript(denominator)
}

var trailingFraction = regexp.MustCompile(`\s*(\d+)/(\d+)\s*$`)

// ComposeTrailing turns a plain "n/d" at the end of text into a diagonal
// fraction, so "2 3/4" becomes "2 ³⁄₄". It reports false when text does not
// end in a fraction or the fraction cannot be rendered.
func ComposeTrailing(text string) (string, bool) {
	m := trailingFraction.FindStringSubmatchIndex(text)
	if m == nil {
		return text, false
	}
	n, errN := strconv.ParseInt(text[m[2]:m[3]], 10, 64)
	d, errD := strconv.ParseInt(text[m[4]:m[5]], 10, 64)
	if errN != nil || errD != nil || d == 0 {
		return text, false
	}
	// a zero numerator still needs the slash to stay a fraction literal
	diagonal := " " + Superscript(n) + string(FractionSlash) + Subscript(d)
	return strings.TrimLeft(text[:m[0]]+diagonal, " "), true
}
