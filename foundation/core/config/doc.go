// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the typed numtower configuration from TOML
//              or YAML files with environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-09 v0.2.0: Typed sections replace the generic key/value store

/*
Package config loads the numtower configuration.

The configuration is a typed struct with four sections:

	[general]
	name = "numtower"
	log_level = "info"     # trace, debug, info, warn, error
	log_format = "text"    # text, json, logfmt

	[display]
	mode = "exact"         # exact, float, both
	float_precision = -1   # -1 prints the shortest representation

	[history]
	enabled = true
	path = "$HOME/.local/share/numtower/history.db"
	limit = 50

	[repl]
	prompt = "» "
	max_lines = 500

Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
Missing values are filled with defaults, then the environment variables
NUMTOWER_LOG_LEVEL, NUMTOWER_DISPLAY_MODE and NUMTOWER_HISTORY_PATH override
the file. Paths are expanded with os.ExpandEnv.

Basic usage:

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	fmt.Println(cfg.Display.Mode)
*/
package config
