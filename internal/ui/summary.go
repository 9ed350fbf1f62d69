// Package ui renders non-interactive terminal output blocks.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dryRunStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
)

// Summary describes a finished provisioning run.
type Summary struct {
	Platform    string
	Interpreter string
	EnvDir      string
	EnvPython   string
	Python      string
	Packages    int
	DryRun      bool
}

// RenderPlanHeader returns the banner shown before a dry run.
func RenderPlanHeader() string {
	return dryRunStyle.Render("Dry run: printing planned actions only") + "\n"
}

// RenderActivation returns the activation instructions block. The
// two-space indent keeps the hint copy-pastable.
func RenderActivation(hint string) string {
	return "Activate it with:\n  " + hintStyle.Render(hint) + "\n"
}

// RenderSummary returns the detail block printed under the final
// status line. Styling degrades to plain text on non-TTY output.
func RenderSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Provisioning summary") + "\n")
	b.WriteString(strings.Repeat("─", 40) + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"Platform", s.Platform},
		{"Interpreter", s.Interpreter},
		{"Environment", s.EnvDir},
		{"Env python", s.EnvPython},
		{"Python", s.Python},
		{"Packages", strconv.Itoa(s.Packages)},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if s.DryRun {
		b.WriteString(dryRunStyle.Render("Dry run: no changes were made") + "\n")
	}

	return b.String()
}
