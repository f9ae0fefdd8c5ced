// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     version
// Description: Central version management for numtower components
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package version

import "fmt"

// Component versions
const (
	// Release version of the numtower distribution
	Release = "0.3.0"

	Tower   = "0.3.0"
	Formula = "0.2.0"
	History = "0.1.0"
	REPL    = "0.1.0"
)

// Build information - set via ldflags during build
var (
	BuildTime = "" // Build timestamp
	GitCommit = "" // Git commit hash
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "tower":
		return Tower
	case "formula":
		return Formula
	case "history":
		return History
	case "repl":
		return REPL
	default:
		return Release
	}
}

// String returns the release version with build details when set
func String() string {
	s := "v" + Release
	if GitCommit != "" {
		s += fmt.Sprintf(" (%s)", GitCommit)
	}
	if BuildTime != "" {
		s += " built " + BuildTime
	}
	return s
}
