// File: codes.go
// Title: Error Code Definitions
// Description: Error codes classifying failures of the numeric engine, the
//              formula language and the surrounding tooling, together with the
//              category and default severity of each.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-09 v0.2.0: Replaced platform codes with numeric and formula codes
// - 2026-10-12 v0.3.0: Single code table for category and severity

package error

// Code classifies an error
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Numeric engine
	CodeInvalidType    Code = "INVALID_TYPE"
	CodeDomain         Code = "DOMAIN"
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeInvalidFormat  Code = "INVALID_FORMAT"

	// Formula language
	CodeSyntax        Code = "SYNTAX"
	CodeUnknownSymbol Code = "UNKNOWN_SYMBOL"
	CodeArity         Code = "ARITY"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeDatabaseError Code = "DATABASE_ERROR"
)

type codeInfo struct {
	category string
	severity Severity
}

var codes = map[Code]codeInfo{
	CodeUnknown:      {"generic", SeverityMedium},
	CodeInternal:     {"generic", SeverityCritical},
	CodeNotFound:     {"generic", SeverityLow},
	CodeInvalidInput: {"generic", SeverityLow},

	CodeInvalidType:    {"arithmetic", SeverityLow},
	CodeDomain:         {"arithmetic", SeverityLow},
	CodeDivisionByZero: {"arithmetic", SeverityLow},
	CodeInvalidFormat:  {"arithmetic", SeverityLow},

	CodeSyntax:        {"formula", SeverityLow},
	CodeUnknownSymbol: {"formula", SeverityLow},
	CodeArity:         {"formula", SeverityLow},

	CodeConfigError:   {"configuration", SeverityHigh},
	CodeInvalidConfig: {"configuration", SeverityLow},
	CodeDatabaseError: {"storage", SeverityHigh},
}

func (c Code) String() string { return string(c) }

// IsValid reports whether c is a known code
func (c Code) IsValid() bool {
	_, ok := codes[c]
	return ok
}

// Category returns the area a code belongs to, "generic" for unknown codes
func (c Code) Category() string {
	if info, ok := codes[c]; ok {
		return info.category
	}
	return "generic"
}

// Severity returns the default severity of errors with this code
func (c Code) Severity() Severity {
	if info, ok := codes[c]; ok {
		return info.severity
	}
	return SeverityMedium
}
