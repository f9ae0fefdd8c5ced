// File: severity.go
// Title: Error Severity Levels
// Description: Severity lets logging pick a level and lets callers tell user
//              mistakes from bugs.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-09 v0.2.0: Code mapping for numeric and formula codes
// - 2026-10-12 v0.3.0: Code mapping moved to the code table

package error

// Severity ranks how serious a failure is
type Severity int

const (
	// SeverityLow is a caller mistake, e.g. a malformed expression
	SeverityLow Severity = iota

	// SeverityMedium is a failure with a workaround
	SeverityMedium

	// SeverityHigh is a failing dependency such as the history database
	SeverityHigh

	// SeverityCritical is a broken internal invariant
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}
