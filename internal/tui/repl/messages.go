// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     repl
// Description: Transcript lines and message types for async operations
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package repl

// LineKind classifies a transcript line
type LineKind int

const (
	LineInput LineKind = iota
	LineResult
	LineError
	LineInfo
)

// Line is one entry of the transcript
type Line struct {
	Kind LineKind
	Text string
}

// Message types for tea.Cmd async operations

// recallLoadedMsg is sent when previous inputs are read from the history store
type recallLoadedMsg struct {
	inputs []string
	err    error
}

// recordedMsg is sent after an evaluation was written to the history store
type recordedMsg struct {
	err error
}
