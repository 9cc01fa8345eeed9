package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/basket/internal/cli/styles"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenSplash:
		return m.renderSplash()
	case screenAdd, screenEdit:
		return m.renderForm()
	case screenConfirmClear:
		return m.renderConfirmClear()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("🧺 Shopping List"))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(m.styles.Subtle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Nothing here yet. Press %s to add an item.", m.keys.Add.Help().Key)))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			b.WriteString(m.renderItem(item, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderFooter())
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderItem draws one card. Expanded cards also show the description and
// the creation date.
func (m Model) renderItem(item models.Item, selected bool) string {
	cardWidth := max(m.width-4, 20)

	title := m.styles.Title.Render(item.Title)
	if item.IsDone {
		title = m.styles.Done.Render(item.Title)
	}

	line := fmt.Sprintf("%s %s %s", styles.Checkbox(item.IsDone), styles.CategoryGlyph(item.Category), title)
	if item.Priority == models.PriorityHigh {
		line += " " + m.styles.High.Render("!")
	}
	price := m.styles.Subtle.Render("$" + item.Price)
	gap := cardWidth - 2 - lipgloss.Width(line) - lipgloss.Width(price)
	if gap < 1 {
		gap = 1
	}
	line += strings.Repeat(" ", gap) + price

	if m.expanded[item.ID] {
		desc := wordwrap.String(item.Description, cardWidth-4)
		line += "\n\n" + m.styles.Title.Render(desc) +
			"\n\n" + m.styles.Subtle.Render("Added "+item.CreateDate)
	}

	card := m.styles.Card
	if selected {
		card = m.styles.Selected
	}
	return card.Width(cardWidth).Render(line)
}

func (m Model) renderFooter() string {
	total := list.FormatCost(m.svc.TotalCost(m.items))
	return m.styles.Footer.Render("Total Estimated Cost: $" + total)
}

func (m Model) renderForm() string {
	var b strings.Builder
	if m.formError != "" {
		b.WriteString(m.styles.Error.Render(m.formError))
		b.WriteString("\n\n")
	}
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("enter next • esc cancel"))
	return b.String()
}

func (m Model) renderConfirmClear() string {
	dialog := m.styles.Dialog.Render(fmt.Sprintf(
		"Delete all %d items?\n\n%s",
		len(m.items),
		m.styles.Subtle.Render("y confirm • n cancel"),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}
