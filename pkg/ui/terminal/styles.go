package terminal

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for light and dark terminals.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
	colorError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#8b949e"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
)

type styles struct {
	success lipgloss.Style
	err     lipgloss.Style
	label   lipgloss.Style
	dir     lipgloss.Style
	kind    lipgloss.Style
	source  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
		label:   r.NewStyle().Foreground(colorMuted).Width(10).PaddingLeft(2),
		dir:     r.NewStyle().Foreground(colorAccent).Bold(true),
		kind:    r.NewStyle().Foreground(colorMuted),
		source:  r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
