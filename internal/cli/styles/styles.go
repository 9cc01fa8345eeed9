// Package styles holds the lipgloss styles used for human-readable CLI output.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle  lipgloss.Style
	LabelStyle  lipgloss.Style // field labels like "Price:"
	ValueStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	DoneStyle   lipgloss.Style // struck-through bought items
	HighStyle   lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	theme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(theme.Subtle))

	HighStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.High))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Done))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))
}

// CategoryGlyph is the icon shown next to items of category c.
func CategoryGlyph(c models.Category) string {
	switch c {
	case models.CategoryFood:
		return "🍎"
	case models.CategorySupplies:
		return "🧴"
	case models.CategoryBook:
		return "📚"
	}
	return "•"
}

// Checkbox renders the bought state of an item.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// RenderItemLine renders one row of `basket list`:
// "[ ] #3 🍎 Milk  $2.50 !"
func RenderItemLine(item models.Item) string {
	title := ValueStyle.Render(item.Title)
	if item.IsDone {
		title = DoneStyle.Render(item.Title)
	}

	line := fmt.Sprintf("%s %s %s %s  %s",
		Checkbox(item.IsDone),
		SubtleStyle.Render(fmt.Sprintf("#%d", item.ID)),
		CategoryGlyph(item.Category),
		title,
		SubtleStyle.Render("$"+item.Price))

	if item.Priority == models.PriorityHigh {
		line += " " + HighStyle.Render("!")
	}
	return line
}

// RenderTotal renders the total estimated cost line.
func RenderTotal(total string) string {
	return LabelStyle.Render("Total Estimated Cost:") + " " + ValueStyle.Render("$"+total)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
