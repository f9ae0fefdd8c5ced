// File: config.go
// Title: Typed Configuration
// Description: Implements loading, defaulting, environment overrides and
//              validation of the numtower configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-09 v0.2.0: Typed sections, search path and env overrides

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

// Environment variables consulted by LoadDefault and applyEnv
const (
	EnvConfigPath  = "NUMTOWER_CONFIG"
	EnvLogLevel    = "NUMTOWER_LOG_LEVEL"
	EnvDisplayMode = "NUMTOWER_DISPLAY_MODE"
	EnvHistoryPath = "NUMTOWER_HISTORY_PATH"
)

// Display modes
const (
	ModeExact = "exact"
	ModeFloat = "float"
	ModeBoth  = "both"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	History HistoryConfig `toml:"history" yaml:"history"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`

	// path the configuration was loaded from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DisplayConfig controls how results are rendered
type DisplayConfig struct {
	Mode           string `toml:"mode" yaml:"mode"`
	FloatPrecision *int   `toml:"float_precision" yaml:"float_precision"`
}

// HistoryConfig holds evaluation history settings
type HistoryConfig struct {
	Enabled *bool  `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	Limit   int    `toml:"limit" yaml:"limit"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	Prompt   string `toml:"prompt" yaml:"prompt"`
	MaxLines int    `toml:"max_lines" yaml:"max_lines"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if strings.TrimSpace(path) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}
	cfg.source = path
	return cfg, nil
}

// Parse decodes configuration content, applies defaults and environment
// overrides, and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads the configuration from NUMTOWER_CONFIG or the first
// existing default location. Without any file the defaults are returned.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths returns the locations searched by LoadDefault in order
func DefaultPaths() []string {
	paths := []string{"./numtower.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "numtower", "config.toml"))
	}
	return paths
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// ParseFormat returns the Format named by s ("toml", "yaml" or "yml")
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatTOML, invalid("format", s, "toml or yaml")
}

// Encode writes the configuration to w in the given format
func (c *Config) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
	default:
		return mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Encode").
			WithDetail("format", format.String())
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Encode")
	}
	return nil
}

// HistoryEnabled reports whether evaluations are recorded
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// Precision returns the float display precision, -1 for shortest
func (c *Config) Precision() int {
	if c.Display.FloatPrecision == nil {
		return -1
	}
	return *c.Display.FloatPrecision
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("general.log_level", c.General.LogLevel, "trace, debug, info, warn, error, fatal")
	}

	switch strings.ToLower(c.General.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return invalid("general.log_format", c.General.LogFormat, "text, json, logfmt")
	}

	switch c.Display.Mode {
	case ModeExact, ModeFloat, ModeBoth:
	default:
		return invalid("display.mode", c.Display.Mode, "exact, float, both")
	}

	if p := c.Precision(); p < -1 || p > 100 {
		return invalid("display.float_precision", p, "-1..100")
	}
	if c.History.Limit < 1 {
		return invalid("history.limit", c.History.Limit, "positive integer")
	}
	if c.REPL.MaxLines < 1 {
		return invalid("repl.max_lines", c.REPL.MaxLines, "positive integer")
	}
	return nil
}

func invalid(key string, value interface{}, expected string) error {
	return mdwerror.New(fmt.Sprintf("invalid value %v for %s", value, key)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value).
		WithDetail("expected", expected)
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "numtower"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Display
	if c.Display.Mode == "" {
		c.Display.Mode = ModeExact
	}
	if c.Display.FloatPrecision == nil {
		p := -1
		c.Display.FloatPrecision = &p
	}

	// History
	if c.History.Enabled == nil {
		enabled := true
		c.History.Enabled = &enabled
	}
	if c.History.Path == "" {
		c.History.Path = "$HOME/.local/share/numtower/history.db"
	}
	if c.History.Limit == 0 {
		c.History.Limit = 50
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "» "
	}
	if c.REPL.MaxLines == 0 {
		c.REPL.MaxLines = 500
	}
}

// applyEnv overrides file values with NUMTOWER_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvDisplayMode); v != "" {
		c.Display.Mode = strings.ToLower(v)
	}
	if v := os.Getenv(EnvHistoryPath); v != "" {
		c.History.Path = v
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}
