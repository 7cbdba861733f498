// Package log provides structured logging for fracalc.
//
// Package: log
// Title: fracalc Structured Logging
// Description: Leveled, structured logger with key/value fields, JSON, text
//              and console formatters, named child loggers and operation
//              timers. Calculator failures logged through LogError carry
//              their error code and severity as fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async mode and request context, sorted field output
//
// Usage:
//   import mdwlog "github.com/msto63/fracalc/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatText,
//     Output: os.Stderr,
//   }).WithName("calculator")
//
//   timer := logger.StartTimer("evaluate")
//   logger.Debug("evaluating", mdwlog.Fields{"input": "1/2+1/4"})
//   timer.Stop()
package log
