// Package errors provides module-scoped constructors for the structured errors
// defined in foundation/core/error.
//
// Package: errors
// Title: numtower Error Standards
// Description: Every module builds its failures through these helpers so that
//              codes, the "module" and "operation" details and severities stay
//              uniform across the numeric engine, the formula language, the
//              configuration layer and the history store.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-09 v0.2.0: Numeric tower modules and codes
// - 2026-10-12 v0.3.0: Shared scoping of module and operation
//
// Usage:
//   import "github.com/msto63/numtower/foundation/core/errors"
//
//   return errors.DivisionByZero(errors.ModuleTower, "Div")
//
//   err := errors.NewErrorBuilder(errors.ModuleFormula).
//     Operation("Compile").
//     Code(mdwerror.CodeSyntax).
//     Messagef("unexpected %q", tok).
//     Detail("position", pos).
//     Build()
package errors
