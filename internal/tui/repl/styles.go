// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     repl
// Description: Styles for the interactive numtower shell
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = "numtower"

// Palette
var (
	colorAccent  = lipgloss.Color("#6366F1") // Indigo
	colorInput   = lipgloss.Color("#22D3EE") // Cyan
	colorValue   = lipgloss.Color("#FBBF24") // Amber
	colorOnline  = lipgloss.Color("#34D399") // Green
	colorFailure = lipgloss.Color("#F87171") // Red
	colorBorder  = lipgloss.Color("#3F3F46") // Zinc 700
	colorSurface = lipgloss.Color("#18181B") // Zinc 900
	colorText    = lipgloss.Color("#FAFAFA")
	colorMuted   = lipgloss.Color("#A1A1AA")
	colorFaint   = lipgloss.Color("#71717A")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(border lipgloss.Border, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(border).BorderForeground(c).Padding(0, 1)
}

var (
	logoStyle    = fg(colorAccent).Bold(true)
	taglineStyle = fg(colorMuted).Italic(true)
	headerStyle  = boxed(lipgloss.DoubleBorder(), colorAccent).Padding(0, 2)

	transcriptStyle  = boxed(lipgloss.RoundedBorder(), colorBorder)
	inputBoxStyle    = boxed(lipgloss.RoundedBorder(), colorAccent)
	placeholderStyle = fg(colorFaint).Italic(true)

	statusStyle  = lipgloss.NewStyle().Background(colorSurface).Foreground(colorText).Padding(0, 1)
	labelStyle   = fg(colorMuted)
	valueStyle   = fg(colorValue).Bold(true)
	onlineStyle  = fg(colorOnline).Bold(true)
	offlineStyle = fg(colorFaint)

	keyStyle  = fg(colorAccent).Bold(true)
	hintStyle = fg(colorMuted)
)

// lineStyles colors transcript lines by kind
var lineStyles = map[LineKind]lipgloss.Style{
	LineInput:  fg(colorInput),
	LineResult: fg(colorText).Bold(true),
	LineError:  fg(colorFailure),
	LineInfo:   fg(colorMuted).Italic(true),
}

func keyHint(key, action string) string {
	return keyStyle.Render(key) + " " + hintStyle.Render(action)
}
