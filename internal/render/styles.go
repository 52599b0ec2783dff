package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorMuted   = lipgloss.Color("#666666")
	colorSubtle  = lipgloss.Color("#414868")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorHigh    = lipgloss.Color("#E74C3C")
	colorMedium  = lipgloss.Color("#F39C12")
	colorLow     = lipgloss.Color("#2EC4B6")
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	track    lipgloss.Style
	done     lipgloss.Style
	high     lipgloss.Style
	medium   lipgloss.Style
	low      lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(colorPrimary),
		subtitle: r.NewStyle().Foreground(colorMuted),
		label:    r.NewStyle().Bold(true),
		track:    r.NewStyle().Foreground(colorSubtle),
		done:     r.NewStyle().Foreground(colorSuccess),
		high:     r.NewStyle().Foreground(colorHigh),
		medium:   r.NewStyle().Foreground(colorMedium),
		low:      r.NewStyle().Foreground(colorLow),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1),
	}
}

// barColor returns the category colour when it is a hex colour.
func barColor(c string) lipgloss.TerminalColor {
	c = strings.TrimSpace(c)
	if len(c) == 7 && strings.HasPrefix(c, "#") {
		return lipgloss.Color(c)
	}
	return colorPrimary
}
