// Package error provides the structured error type used across numtower.
//
// Package: error
// Title: numtower Error Handling Framework
// Description: Structured errors with codes, severity, stack traces and free-form
//              details. Every failure raised by the numeric engine, the formula
//              language, the configuration layer and the history store is an *Error
//              so callers can branch on Code() instead of matching message text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-09 v0.2.0: Numeric tower codes, dropped request/user context
// - 2026-10-12 v0.3.0: Severity derived from the code table
//
// Usage:
//   import mdwerror "github.com/msto63/numtower/foundation/core/error"
//
//   err := mdwerror.New("negative base with even root index").
//     WithCode(mdwerror.CodeDomain).
//     WithOperation("tower.Pow").
//     WithDetail("exponent", "1/4")
//
//   if mdwerror.HasCode(err, mdwerror.CodeDomain) {
//     // handle domain errors
//   }
package error
