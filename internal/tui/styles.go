package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/basket/internal/config"
)

// styles are derived from the configured theme once per model.
type styles struct {
	Header   lipgloss.Style
	Logo     lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Title    lipgloss.Style
	Done     lipgloss.Style
	Subtle   lipgloss.Style
	High     lipgloss.Style
	Footer   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Dialog   lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	theme.ApplyDefaults()
	accent := lipgloss.Color(theme.Accent)
	subtle := lipgloss.Color(theme.Subtle)

	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(theme.Done)),
		Subtle: lipgloss.NewStyle().
			Foreground(subtle),
		High: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.High)),
		Footer: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Error)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(theme.Error)).
			Padding(1, 2),
	}
}
