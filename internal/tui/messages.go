package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

const splashFrameInterval = 400 * time.Millisecond

type (
	splashTickMsg struct{}
	splashDoneMsg struct{}

	// subscribedMsg carries the open live snapshot channel.
	subscribedMsg struct{ snapshots <-chan []models.Item }

	// snapshotMsg is one emission of the live list.
	snapshotMsg struct{ items []models.Item }

	// subscriptionClosedMsg means the store or the context ended the subscription.
	subscriptionClosedMsg struct{}

	// opDoneMsg reports the outcome of a mutation run in the background.
	opDoneMsg struct {
		action string
		status string
		err    error
	}
)

func splashTick() tea.Cmd {
	return tea.Tick(splashFrameInterval, func(time.Time) tea.Msg {
		return splashTickMsg{}
	})
}

func splashTimeout(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

func subscribe(ctx context.Context, svc list.Service) tea.Cmd {
	return func() tea.Msg {
		snapshots, err := svc.ListItems(ctx)
		if err != nil {
			return opDoneMsg{action: "load items", err: err}
		}
		return subscribedMsg{snapshots: snapshots}
	}
}

func waitForSnapshot(snapshots <-chan []models.Item) tea.Cmd {
	return func() tea.Msg {
		items, ok := <-snapshots
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg{items: items}
	}
}

// runOp runs a mutation off the render loop. The new list arrives through
// the live subscription, not through the returned message.
func (m Model) runOp(action, status string, op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{action: action, status: status, err: op(ctx)}
	}
}
