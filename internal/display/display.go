// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     display
// Description: Rendering of tower values in the configured display mode
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package display

import (
	"github.com/msto63/numtower/foundation/core/config"
	"github.com/msto63/numtower/pkg/tower"
)

// Options selects how values are rendered
type Options struct {
	Mode      string
	Precision int
}

// FromConfig returns the display options of cfg
func FromConfig(cfg *config.Config) Options {
	return Options{Mode: cfg.Display.Mode, Precision: cfg.Precision()}
}

// Render formats v. Exact mode prints the canonical form, float mode the
// float64 approximation, and both mode prints "exact ≈ float" unless the
// two agree.
func (o Options) Render(v tower.Value) string {
	switch o.Mode {
	case config.ModeFloat:
		return tower.FormatFloat(v, o.Precision)
	case config.ModeBoth:
		exact, approx := v.String(), tower.FormatFloat(v, o.Precision)
		if exact == approx || !v.IsFinite() {
			return exact
		}
		return exact + " ≈ " + approx
	default:
		return v.String()
	}
}

// Assignment renders name = v, or just v when name is empty
func (o Options) Assignment(name string, v tower.Value) string {
	if name == "" {
		return o.Render(v)
	}
	return name + " = " + o.Render(v)
}
