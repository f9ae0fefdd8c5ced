// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-09 v0.2.0: Removed audit level
// - 2026-10-12 v0.3.0: Table driven names, LevelOff

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelOff disables every level
	LevelOff
)

var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
}

var levelAliases = map[string]Level{
	"trace": LevelTrace, "trc": LevelTrace,
	"debug": LevelDebug, "dbg": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo, "information": LevelInfo,
	"warn": LevelWarn, "wrn": LevelWarn, "warning": LevelWarn,
	"error": LevelError, "err": LevelError,
	"fatal": LevelFatal, "ftl": LevelFatal,
}

// String returns the lowercase name of the level
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if l < LevelTrace || l > LevelFatal {
		return "???"
	}
	return levelNames[l].short
}

// Enabled reports whether l passes the minimum level min
func (l Level) Enabled(min Level) bool {
	return l >= min && l < LevelOff
}

// ParseLevel parses a level name or its short tag, case-insensitively
func ParseLevel(level string) (Level, error) {
	if l, ok := levelAliases[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unrecognized level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
