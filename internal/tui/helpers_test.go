package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/models"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// newTestModel returns a model past the splash screen over svc.
func newTestModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	cfg := config.Default()
	cfg.TUI.SplashDuration = 0
	m := New(context.Background(), svc, cfg, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(m.cancel)
	return m
}

// update feeds msg to m and returns the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update must return a Model")
	return got, cmd
}

// withItems delivers a snapshot the way the live subscription would.
func withItems(t *testing.T, m Model, items ...models.Item) Model {
	t.Helper()
	m, _ = update(t, m, snapshotMsg{items: items})
	return m
}

func testItems() []models.Item {
	return []models.Item{
		{ID: 1, Title: "Milk", Description: "2 liters", Price: "5.00", CreateDate: "Mon Jan  2 15:04:05 UTC 2006", Priority: models.PriorityNormal, Category: models.CategoryFood},
		{ID: 2, Title: "Soap", Description: "lavender", Price: "3.25", CreateDate: "Mon Jan  2 15:04:05 UTC 2006", Priority: models.PriorityHigh, Category: models.CategorySupplies},
		{ID: 3, Title: "Dune", Description: "paperback", Price: "abc", CreateDate: "Mon Jan  2 15:04:05 UTC 2006", Priority: models.PriorityNormal, Category: models.CategoryBook},
	}
}
