// Package log provides structured logging for numtower.
//
// Package: log
// Title: numtower Structured Logging
// Description: Leveled logger with persistent context fields, JSON, text and
//              logfmt formatters, integration with foundation/core/error and
//              operation timers. The numeric engine never logs; the formula
//              evaluator, the history store and the CLI do.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-09 v0.2.0: Dropped async buffering and request/user context
// - 2026-10-12 v0.3.0: Immutable loggers, no package level default
//
// There is no global logger. Components take a *Logger and fall back to
// Discard when given nil.
//
// Usage:
//   logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//   timer := logger.StartTimer("formula.eval").WithField("expr", src)
//   defer timer.Stop()
package log
