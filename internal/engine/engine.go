// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     engine
// Description: Entry points of the numeric engine
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package engine exposes the calculator's numeric engine to the display
// layers: fraction-mode evaluation, plain arithmetic evaluation and diagonal
// fraction rendering. All functions are pure and safe for concurrent use.
// Failures are *mdwerror.Error values coded CodeMathError, CodeUndefined or
// CodeDivideByZero.
package engine

import (
	"strings"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	"github.com/msto63/fracalc/internal/evaluator"
	"github.com/msto63/fracalc/internal/extract"
	"github.com/msto63/fracalc/internal/format"
	"github.com/msto63/fracalc/internal/glyph"
)

// Engine evaluates calculator input with a configured evaluator
type Engine struct {
	evaluator *evaluator.Evaluator
}

// New creates an engine using ev, or a default evaluator when ev is nil
func New(ev *evaluator.Evaluator) *Engine {
	if ev == nil {
		ev = evaluator.New(evaluator.Options{})
	}
	return &Engine{evaluator: ev}
}

var defaultEngine = New(nil)

// EvaluateFractionExpression resolves the fraction literals in text,
// evaluates the expression and renders the result as a mixed fraction
func EvaluateFractionExpression(text string) (string, error) {
	return defaultEngine.EvaluateFractionExpression(text)
}

// EvaluateArithmeticExpression evaluates plain arithmetic text and renders
// the result in plain mode
func EvaluateArithmeticExpression(text string) (string, error) {
	return defaultEngine.EvaluateArithmeticExpression(text)
}

// FormatDiagonalFraction renders numerator/denominator as a diagonal
// fraction such as " ³⁄₄"
func FormatDiagonalFraction(numerator, denominator int64) string {
	return format.DiagonalFraction(numerator, denominator)
}

// EvaluateFractionExpression resolves the fraction literals in text,
// evaluates the expression and renders the result as a mixed fraction
func (e *Engine) EvaluateFractionExpression(text string) (string, error) {
	v, err := e.Value(text, format.ModeFraction)
	if err != nil {
		return "", err
	}
	return format.Fraction(v), nil
}

// EvaluateArithmeticExpression evaluates plain arithmetic text and renders
// the result in plain mode
func (e *Engine) EvaluateArithmeticExpression(text string) (string, error) {
	v, err := e.Value(text, format.ModeArithmetic)
	if err != nil {
		return "", err
	}
	return format.Arithmetic(v), nil
}

// Evaluate evaluates text in the given mode and formats the result
func (e *Engine) Evaluate(text string, mode format.Mode) (string, error) {
	v, err := e.Value(text, mode)
	if err != nil {
		return "", err
	}
	return format.Result(v, mode), nil
}

// Value evaluates text in the given mode and returns the unformatted result
func (e *Engine) Value(text string, mode format.Mode) (float64, error) {
	var (
		prepared string
		err      error
	)
	if mode == format.ModeFraction {
		prepared, _, err = extract.Resolve(text)
	} else {
		prepared, err = extract.Canonicalize(strings.ReplaceAll(text, string(glyph.DivisionMarker), "/"))
	}
	if err != nil {
		return 0, err
	}
	return e.evaluator.Evaluate(prepared)
}

// DetectMode picks fraction mode for text holding a diagonal fraction
// literal and plain mode for anything else
func DetectMode(text string) format.Mode {
	if glyph.ContainsFraction(text) {
		return format.ModeFraction
	}
	return format.ModeArithmetic
}

// DisplayMessage returns the message shown to the user for err: the
// calculator message of its code, or the error text for other failures
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := mdwerror.GetCode(err).DisplayMessage(); msg != "" {
		return msg
	}
	return err.Error()
}
