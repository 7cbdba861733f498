// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              calculator engine and of the surrounding service layers
//              (configuration, history storage, input validation).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Calculator failure kinds, dropped platform codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calculator failure kinds
	CodeMathError    Code = "MATH_ERROR"     // expression could not be parsed or evaluated
	CodeUndefined    Code = "UNDEFINED"      // evaluation produced an infinite value
	CodeDivideByZero Code = "DIVIDE_BY_ZERO" // fraction constructed or divided with a zero denominator

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMathError, CodeUndefined, CodeDivideByZero,
		CodeDatabaseError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMathError, CodeUndefined, CodeDivideByZero:
		return "calculation"
	case CodeDatabaseError:
		return "database"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// DisplayMessage returns the short text shown to the user for a calculator
// failure. Other codes have no display text.
func (c Code) DisplayMessage() string {
	switch c {
	case CodeMathError:
		return "Math Error"
	case CodeUndefined:
		return "Undefined"
	case CodeDivideByZero:
		return "Divide by zero"
	default:
		return ""
	}
}
