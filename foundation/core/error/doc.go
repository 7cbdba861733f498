// Package error provides the structured error type used across fracalc.
//
// Package: error
// Title: fracalc Error Handling
// Description: Structured errors with codes, severity, details and a captured
//              stack trace. Calculator failures (math error, undefined result,
//              division by zero) are plain codes on this type so callers can
//              branch on them and the display layer can show the message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Calculator codes, errors.As based code lookup
//
// Usage:
//   import mdwerror "github.com/msto63/fracalc/foundation/core/error"
//
//   err := mdwerror.New("Undefined").
//     WithCode(mdwerror.CodeUndefined).
//     WithDetail("expression", "5/0")
//
//   if mdwerror.HasCode(err, mdwerror.CodeUndefined) {
//     // show "Undefined"
//   }
package error
