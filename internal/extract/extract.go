// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     extract
// Description: Number literal extraction and fraction literal resolution
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package extract turns free-form calculator input into the canonical
// arithmetic text the evaluator accepts. Number literals are lifted out of
// the text, parsed and written back in one canonical decimal form, and
// fraction literals ("2 3/4", "1/2" after glyph normalisation) are replaced
// by their decimal value.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	"github.com/msto63/fracalc/internal/fraction"
	"github.com/msto63/fracalc/internal/glyph"
)

// Placeholder marks the position of an extracted number in a shape string
const Placeholder = '\uE000'

var (
	numberPattern   = regexp.MustCompile(`-?\d+(\.\d+)?`)
	fractionPattern = regexp.MustCompile(`(\d+)\s+(\d+)/(\d+)|(\d+)/(\d+)`)
)

// Literal is a fraction literal found in normalised text
type Literal struct {
	// Text is the matched source text, e.g. "2 3/4"
	Text string

	// Start and End are byte offsets of Text in the normalised input
	Start int
	End   int

	Value fraction.Mixed
}

// Extract replaces every number literal in text with Placeholder, left to
// right, and returns the resulting shape with the parsed values in order.
func Extract(text string) (string, []float64, error) {
	matches := numberPattern.FindAllStringIndex(text, -1)
	values := make([]float64, 0, len(matches))

	var shape strings.Builder
	last := 0
	for _, m := range matches {
		lit := text[m[0]:m[1]]
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(v, 0) {
			return "", nil, mathError("number out of range", "literal", lit)
		}
		values = append(values, v)
		shape.WriteString(text[last:m[0]])
		shape.WriteRune(Placeholder)
		last = m[1]
	}
	shape.WriteString(text[last:])

	return shape.String(), values, nil
}

// Reinsert replaces the placeholders of shape, in order, with the canonical
// text of values. The number of placeholders must match len(values).
func Reinsert(shape string, values []float64) (string, error) {
	if n := strings.Count(shape, string(Placeholder)); n != len(values) {
		return "", mathError("placeholder count mismatch", "placeholders", n)
	}

	var b strings.Builder
	i := 0
	for _, r := range shape {
		if r == Placeholder {
			b.WriteString(CanonicalNumber(values[i]))
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Canonicalize rewrites every number literal in text in canonical form, so
// "007" becomes "7" and "2.50" becomes "2.5".
func Canonicalize(text string) (string, error) {
	shape, values, err := Extract(text)
	if err != nil {
		return "", err
	}
	return Reinsert(shape, values)
}

// CanonicalNumber is the shortest decimal text that parses back to v
func CanonicalNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FindFractions returns the fraction literals of normalised text in order.
// A literal with a zero denominator fails with CodeDivideByZero, one whose
// parts do not fit int64 or that directly follows a decimal point fails
// with CodeMathError.
func FindFractions(normalized string) ([]Literal, error) {
	var literals []Literal
	for _, m := range fractionPattern.FindAllStringSubmatchIndex(normalized, -1) {
		if m[0] > 0 && normalized[m[0]-1] == '.' {
			return nil, mathError("malformed fraction literal", "literal", normalized[m[0]:m[1]])
		}

		var parts []string
		if m[2] >= 0 {
			parts = []string{normalized[m[2]:m[3]], normalized[m[4]:m[5]], normalized[m[6]:m[7]]}
		} else {
			parts = []string{"0", normalized[m[8]:m[9]], normalized[m[10]:m[11]]}
		}

		var nums [3]int64
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return nil, mathError("fraction literal out of range", "literal", normalized[m[0]:m[1]])
			}
			nums[i] = v
		}

		value, err := fraction.NewMixed(nums[0], nums[1], nums[2])
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid fraction literal").
				WithDetail("literal", normalized[m[0]:m[1]])
		}

		literals = append(literals, Literal{
			Text:  normalized[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Value: value,
		})
	}
	return literals, nil
}

// Resolve prepares fraction-mode input for evaluation: the glyphs are
// normalised, every fraction literal is replaced by its decimal value, the
// division marker becomes '/' again and the numbers are canonicalised.
// The literals found are returned alongside.
func Resolve(text string) (string, []Literal, error) {
	normalized := glyph.Normalize(text)

	literals, err := FindFractions(normalized)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	last := 0
	for _, lit := range literals {
		b.WriteString(normalized[last:lit.Start])
		b.WriteString(CanonicalNumber(lit.Value.ToDecimal()))
		last = lit.End
	}
	b.WriteString(normalized[last:])

	resolved := strings.ReplaceAll(b.String(), string(glyph.DivisionMarker), "/")
	canonical, err := Canonicalize(resolved)
	if err != nil {
		return "", nil, err
	}
	return canonical, literals, nil
}

func mathError(message string, key string, value interface{}) *mdwerror.Error {
	return mdwerror.New(mdwerror.CodeMathError.DisplayMessage()).
		WithCode(mdwerror.CodeMathError).
		WithOperation("extract").
		WithDetail("reason", message).
		WithDetail(key, value)
}
