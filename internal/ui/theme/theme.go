// Package theme holds the shared lipgloss styles for CLI output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, legible on dark and light terminals
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#EF4444") // Red
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Bar renders a simple progress bar: filled/total cells of the given width.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
