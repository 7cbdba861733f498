// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal values and rounding for
//              rendering calculator results.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Reduced to decimal parsing and rounding for result display

// Package mathx provides exact decimal rounding.
//
// A Decimal holds an exact rational value. Floats enter through their
// shortest decimal text, so 0.1 is the decimal 0.1 and not the binary value
// closest to it. Rounding works on that exact value:
//
//	d := mathx.NewDecimalFromFloat(2.0625)
//	d.StringFixed(3, mathx.RoundingModeHalfUp)   // "2.063"
//	d.StringFixed(3, mathx.RoundingModeHalfEven) // "2.062"
//
// FormatHalfUp is the shorthand used by the result formatter.
package mathx
