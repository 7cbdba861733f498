// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     evaluator
// Description: Recursive descent evaluator for + - * /
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package evaluator evaluates arithmetic expressions made of decimal
// numbers and the operators + - * /. Multiplication and division bind
// tighter than addition and subtraction; operators of equal precedence
// associate to the left. A '-' where an operand is expected is the sign of
// the number that follows, so "2*-3" and "2+-3" are valid. A sign directly
// after a binary '-' is rejected: "2--3" is a Math Error.
//
// Grammar:
//
//	expression = term { ("+" | "-") term } .
//	term       = operand { ("*" | "/") operand } .
//	operand    = [ "-" ] number .
package evaluator

import (
	"fmt"
	"math"
	"strconv"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
	mdwlog "github.com/msto63/fracalc/foundation/core/log"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// Options configures evaluator behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// Evaluator evaluates arithmetic expressions. It holds no per-call state
// and is safe for concurrent use.
type Evaluator struct {
	logger  *mdwlog.Logger
	options Options
}

// ParseError represents a syntax error with position information
type ParseError struct {
	Message  string
	Position int
	Token    Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == TokenEOF {
		return fmt.Sprintf("parse error at position %d: %s (at end of input)", pe.Position, pe.Message)
	}
	return fmt.Sprintf("parse error at position %d: %s (near '%s')", pe.Position, pe.Message, pe.Token.Value)
}

// New creates an evaluator with the given options
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	return &Evaluator{
		logger:  opts.Logger.WithField("component", "evaluator"),
		options: opts,
	}
}

// Evaluate evaluates expr with a default evaluator
func Evaluate(expr string) (float64, error) {
	return New(Options{}).Evaluate(expr)
}

// Evaluate evaluates expr. Malformed input fails with CodeMathError;
// division by zero or a result that is not finite fails with CodeUndefined.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	if len(expr) > e.options.MaxInputLength {
		return 0, mdwerror.New(mdwerror.CodeMathError.DisplayMessage()).
			WithCode(mdwerror.CodeMathError).
			WithOperation("evaluator.Evaluate").
			WithDetail("reason", "input exceeds maximum length").
			WithDetail("length", len(expr)).
			WithDetail("max_length", e.options.MaxInputLength)
	}

	e.logger.Trace("evaluating expression", mdwlog.Fields{"expression": expr})

	p := &parser{lexer: NewLexer(expr)}
	p.advance()

	result, err := p.parseExpression()
	if err == nil && p.current.Type != TokenEOF {
		err = p.syntaxError("unexpected token after expression")
	}
	if err != nil {
		e.logger.Debug("evaluation failed", mdwlog.Fields{
			"expression": expr,
			"error":      err.Error(),
		})
		return 0, err
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, undefined("result is not finite", expr)
	}

	e.logger.Trace("expression evaluated", mdwlog.Fields{"expression": expr, "result": result})
	return result, nil
}

// parser holds the state of a single evaluation
type parser struct {
	lexer   *Lexer
	current Token
}

func (p *parser) advance() {
	p.current = p.lexer.NextToken()
}

func (p *parser) parseExpression() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current.Type
		p.advance()
		if op == TokenMinus && p.current.Type == TokenMinus {
			return 0, p.syntaxError("unexpected operator")
		}

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == TokenPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseOperand()
	if err != nil {
		return 0, err
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash {
		op := p.current
		p.advance()

		right, err := p.parseOperand()
		if err != nil {
			return 0, err
		}
		if op.Type == TokenStar {
			left *= right
			continue
		}
		if right == 0 {
			return 0, undefined("division by zero", p.lexer.input).WithDetail("position", op.Position)
		}
		left /= right
	}
	return left, nil
}

func (p *parser) parseOperand() (float64, error) {
	negative := false
	if p.current.Type == TokenMinus {
		negative = true
		p.advance()
	}

	switch p.current.Type {
	case TokenNumber:
	case TokenEOF:
		return 0, p.syntaxError("expected a number")
	case TokenIllegal:
		return 0, p.syntaxError("illegal character")
	default:
		if p.current.Type.isOperator() {
			return 0, p.syntaxError("unexpected operator")
		}
		return 0, p.syntaxError("expected a number")
	}

	v, err := strconv.ParseFloat(p.current.Value, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, p.syntaxError("number out of range")
	}
	p.advance()

	if negative {
		v = -v
	}
	return v, nil
}

func (p *parser) syntaxError(message string) *mdwerror.Error {
	pe := &ParseError{Message: message, Position: p.current.Position, Token: p.current}
	return mdwerror.Wrap(pe, mdwerror.CodeMathError.DisplayMessage()).
		WithCode(mdwerror.CodeMathError).
		WithOperation("evaluator.Evaluate").
		WithDetail("position", pe.Position)
}

func undefined(reason, expr string) *mdwerror.Error {
	return mdwerror.New(mdwerror.CodeUndefined.DisplayMessage()).
		WithCode(mdwerror.CodeUndefined).
		WithOperation("evaluator.Evaluate").
		WithDetail("reason", reason).
		WithDetail("expression", expr)
}
