// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     evaluator
// Description: Tokenizer for four-operator arithmetic
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package evaluator

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenNumber // 123, 123.45

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
)

// Token represents a lexical token with its byte position in the input
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	default:
		return "UNKNOWN"
	}
}

// isOperator reports whether the token is one of the four operators
func (tt TokenType) isOperator() bool {
	return tt >= TokenPlus && tt <= TokenSlash
}

// Lexer splits an arithmetic expression into tokens
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.position

	var tok Token
	switch l.ch {
	case '+':
		tok = Token{Type: TokenPlus, Value: "+", Position: pos}
	case '-':
		tok = Token{Type: TokenMinus, Value: "-", Position: pos}
	case '*':
		tok = Token{Type: TokenStar, Value: "*", Position: pos}
	case '/':
		tok = Token{Type: TokenSlash, Value: "/", Position: pos}
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: TokenEOF, Position: pos}
		}
		tok = Token{Type: TokenIllegal, Value: "\\x00", Position: pos}
	default:
		if isDigit(l.ch) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
		}
		// report the whole rune, not its first byte
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		for i := 1; i < size; i++ {
			l.readChar()
		}
		tok = Token{Type: TokenIllegal, Value: string(r), Position: pos}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens of the input, ending with TokenEOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenIllegal:
			return tokens, fmt.Errorf("illegal character '%s' at position %d", tok.Value, tok.Position)
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readNumber reads an integer or a decimal with digits on both sides of
// the point
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
