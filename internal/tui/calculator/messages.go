// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     calculator
// Description: Message types for async operations in the calculator TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calculator

import (
	calc "github.com/msto63/fracalc/internal/calculator"
	"github.com/msto63/fracalc/internal/history"
)

// evaluatedMsg carries the outcome of an evaluation
type evaluatedMsg struct {
	result calc.Result
}

// historyLoadedMsg is sent when the history pane has been (re)loaded
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}
