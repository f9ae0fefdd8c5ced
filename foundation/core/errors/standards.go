// File: standards.go
// Title: Error Standards for numtower
// Description: Standardized error constructors keyed by module, so every failure
//              carries "module" and "operation" details and a code from
//              foundation/core/error.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-09 v0.2.0: Invalid-type, domain, division and internal constructors
// - 2026-10-12 v0.3.0: Shared scoping helper, wrapped lookups

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTower   = "tower"
	ModuleFormula = "formula"
	ModuleHistory = "history"
)

func qualified(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}

// scoped tags err with its module and operation
func scoped(err *mdwerror.Error, module, operation string) *mdwerror.Error {
	err.WithDetail("module", module)
	if operation != "" {
		err.WithDetail("operation", operation).WithOperation(qualified(module, operation))
	}
	return err
}

func moduleError(module, operation, message string, code mdwerror.Code) *mdwerror.Error {
	return scoped(mdwerror.New(message).WithCode(code), module, operation)
}

// InvalidType reports operands whose shape matches no supported case
func InvalidType(module, operation string, got interface{}) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("%s.%s: unsupported operand type %T", module, operation, got),
		mdwerror.CodeInvalidType).
		WithDetail("type", fmt.Sprintf("%T", got))
}

// Domain reports an argument for which the operation has no value
func Domain(module, operation, message string) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("%s.%s: %s", module, operation, message),
		mdwerror.CodeDomain)
}

// DivisionByZero reports an exact division or remainder by zero
func DivisionByZero(module, operation string) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("%s.%s: division by zero", module, operation),
		mdwerror.CodeDivisionByZero)
}

// Internal reports a broken invariant; callers usually panic with it
func Internal(module, operation, message string) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("%s.%s: internal error: %s", module, operation, message),
		mdwerror.CodeInternal).
		WithSeverity(mdwerror.SeverityCritical)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected),
		mdwerror.CodeInvalidInput).
		WithDetail("input", input).
		WithDetail("expected", expected)
}

// FormatError creates a standardized format error
func FormatError(module, operation string, input interface{}, expectedFormat string) *mdwerror.Error {
	return moduleError(module, operation,
		fmt.Sprintf("invalid format in %s.%s: %v", module, operation, input),
		mdwerror.CodeInvalidFormat).
		WithDetail("input", input).
		WithDetail("expected_format", expectedFormat)
}

// OperationError wraps a lower-level failure of a module operation
func OperationError(module, operation string, cause error, code mdwerror.Code) *mdwerror.Error {
	return scoped(mdwerror.Wrap(cause, qualified(module, operation)+" failed").WithCode(code), module, operation)
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

func detailString(err error, key string) string {
	var e *mdwerror.Error
	if !stderrors.As(err, &e) {
		return ""
	}
	v, ok := e.Detail(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
