// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     render
// Description: Terminal styling for diagnostics, echoed values and watch
//              separators. Without color every method returns plain text.
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/lox/foundation/lox/ast"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	DiagnosticStyle = lipgloss.NewStyle().
			Foreground(colorError)

	EchoStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// Renderer applies the styles when color is enabled
type Renderer struct {
	color bool
}

// New creates a renderer
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Plain returns a renderer that never styles
func Plain() *Renderer {
	return &Renderer{}
}

// Color reports whether styles are applied
func (r *Renderer) Color() bool {
	return r != nil && r.color
}

// Diagnostics styles every line of a diagnostics report
func (r *Renderer) Diagnostics(report string) string {
	if !r.Color() || report == "" {
		return report
	}
	lines := strings.Split(report, "\n")
	for i, line := range lines {
		lines[i] = DiagnosticStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Echo renders a value echoed by an interactive session
func (r *Renderer) Echo(v ast.Value) string {
	s := v.String()
	if v.Kind() == ast.StringValue {
		s = fmt.Sprintf("%q", s)
	}
	if !r.Color() {
		return s
	}
	return EchoStyle.Render(s)
}

// Separator renders the line printed before each watch re-run
func (r *Renderer) Separator(name, runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	s := fmt.Sprintf("---- %s (run %s) ----", name, runID)
	if !r.Color() {
		return s
	}
	return SeparatorStyle.Render(s)
}

// Title renders a bold heading
func (r *Renderer) Title(s string) string {
	if !r.Color() {
		return s
	}
	return TitleStyle.Render(s)
}
