// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Calculator failures are
//              user input problems and rank low; storage and configuration
//              failures rank higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for calculator codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. the history database is unusable
	SeverityHigh

	// SeverityCritical indicates an error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeInvalidConfig:
		return SeverityHigh
	case CodeMathError, CodeUndefined, CodeDivideByZero,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
