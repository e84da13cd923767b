package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles are bound to the command's output so colors are dropped when it is
// not a terminal.
type styles struct {
	changed   lipgloss.Style
	unchanged lipgloss.Style
	missing   lipgloss.Style
	label     lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	opts := []termenv.OutputOption{termenv.WithColorCache(true)}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(out, opts...)

	return styles{
		changed: r.NewStyle().
			Foreground(lipgloss.Color("#00ff5f")).
			Bold(true),
		unchanged: r.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#a8a8a8")),
		missing: r.NewStyle().
			Foreground(lipgloss.Color("#ff005f")).
			Bold(true),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#5fd7ff")),
	}
}
