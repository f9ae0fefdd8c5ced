// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/msto63/numtower/foundation/core/config"
	mdwlog "github.com/msto63/numtower/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: text, json or logfmt (default: text)
	Format string

	// Output writer, stderr when nil
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromConfig derives a LoggerConfig from the application config. verbose
// lowers the level to debug.
func FromConfig(cfg *config.Config, verbose bool) LoggerConfig {
	lc := LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
	}
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

// NewLogger creates a logger from cfg. Unrecognized levels fall back to
// info and unrecognized formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cfg.Output,
		Name:   cfg.Name,
	})
}

// OpenLogFile opens path for appending, creating parent directories
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
