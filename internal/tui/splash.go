package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 _               _        _
| |__   __ _ ___| | _____| |_
| '_ \ / _` + "`" + ` / __| |/ / _ \ __|
| |_) | (_| \__ \   <  __/ |_
|_.__/ \__,_|___/_|\_\___|\__|
`

// renderSplash draws the logo with three dots that pulse one at a time.
func (m Model) renderSplash() string {
	dots := make([]string, 3)
	for i := range dots {
		if i < m.splashFrame {
			dots[i] = m.styles.Logo.Render("●")
		} else {
			dots[i] = m.styles.Subtle.Render("○")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Logo.Render(strings.Trim(logo, "\n")),
		"",
		strings.Join(dots, " "),
		"",
		m.styles.Subtle.Render("press any key"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
