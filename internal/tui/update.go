package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
	"github.com/thenoetrevino/basket/internal/tui/huhforms"
)

// formValidationMessage is shown above the add form when a field is blank.
const formValidationMessage = "Please fill in all fields"

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		return m, nil

	case splashTickMsg:
		if m.screen != screenSplash {
			return m, nil
		}
		m.splashFrame = (m.splashFrame + 1) % 4
		return m, splashTick()

	case splashDoneMsg:
		if m.screen == screenSplash {
			m.screen = screenList
		}
		return m, nil

	case subscribedMsg:
		m.snapshots = msg.snapshots
		return m, waitForSnapshot(m.snapshots)

	case snapshotMsg:
		m.items = msg.items
		m.loaded = true
		m.clampCursor()
		return m, waitForSnapshot(m.snapshots)

	case subscriptionClosedMsg:
		m.snapshots = nil
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.setError(msg.action, msg.err)
		} else if msg.status != "" {
			m.setStatus(msg.status)
		}
		return m, nil
	}

	if m.screen == screenAdd || m.screen == screenEdit {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenSplash:
		if keyMsg.String() == "ctrl+c" {
			return m, m.quit()
		}
		m.screen = screenList
		return m, nil
	case screenConfirmClear:
		return m.updateConfirmClear(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.openAddForm()

	case key.Matches(msg, m.keys.Clear):
		if len(m.items) == 0 {
			m.setStatus("The list is already empty")
			return m, nil
		}
		m.screen = screenConfirmClear
		return m, nil
	}

	item, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Expand):
		m.expanded[item.ID] = !m.expanded[item.ID]
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		done := !item.IsDone
		status := fmt.Sprintf("Bought %s", item.Title)
		if !done {
			status = fmt.Sprintf("Put %s back on the list", item.Title)
		}
		return m, m.runOp("update item", status, func(ctx context.Context) error {
			return m.svc.ToggleDone(ctx, item, done)
		})

	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm(item)

	case key.Matches(msg, m.keys.Delete):
		delete(m.expanded, item.ID)
		return m, m.runOp("delete item", fmt.Sprintf("Deleted %s", item.Title), func(ctx context.Context) error {
			return m.svc.DeleteItem(ctx, item)
		})
	}

	return m, nil
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.screen = screenList
		m.expanded = make(map[int]bool)
		return m, m.runOp("clear the list", "Cleared the list", m.svc.ClearAll)
	case "n", "N", "esc":
		m.screen = screenList
		return m, nil
	case "ctrl+c":
		return m, m.quit()
	}
	return m, nil
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.values = huhforms.NewItemValues()
	m.form = huhforms.CreateAddItemForm(m.values, m.descriptionLines()).WithWidth(m.formWidth())
	m.formError = ""
	m.screen = screenAdd
	return m, m.form.Init()
}

func (m Model) openEditForm(item models.Item) (tea.Model, tea.Cmd) {
	m.editing = item
	m.values = huhforms.ValuesFromItem(item)
	m.form = huhforms.CreateEditItemForm(m.values, m.descriptionLines()).WithWidth(m.formWidth())
	m.formError = ""
	m.screen = screenEdit
	return m, m.form.Init()
}

func (m Model) closeForm() Model {
	m.form = nil
	m.values = nil
	m.formError = ""
	m.screen = screenList
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeForm(), nil
		case "ctrl+c":
			return m, m.quit()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		return m.closeForm(), nil
	}
	return m, cmd
}

// submitForm validates the completed form and runs the add or edit.
// A blank field reopens the form with the entered values kept.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	values := m.values

	if m.screen == screenAdd {
		req := values.AddRequest()
		if err := list.ValidateAddRequest(req); err != nil {
			m.formError = formValidationMessage
			m.form = huhforms.CreateAddItemForm(values, m.descriptionLines()).WithWidth(m.formWidth())
			return m, m.form.Init()
		}
		m = m.closeForm()
		return m, m.runOp("add item", fmt.Sprintf("Added %s", req.Title), func(ctx context.Context) error {
			_, err := m.svc.AddItem(ctx, req)
			return err
		})
	}

	original := m.editing
	edited := values.Apply(original)
	if err := list.ValidateAddRequest(values.AddRequest()); err != nil {
		m.formError = formValidationMessage
		m.form = huhforms.CreateEditItemForm(values, m.descriptionLines()).WithWidth(m.formWidth())
		return m, m.form.Init()
	}
	m = m.closeForm()
	return m, m.runOp("edit item", fmt.Sprintf("Saved %s", edited.Title), func(ctx context.Context) error {
		return m.svc.EditItem(ctx, original, edited)
	})
}

func (m Model) formWidth() int {
	if m.width < 40 {
		return m.width
	}
	return min(m.width-4, 72)
}

func (m Model) descriptionLines() int {
	return max(3, min(8, m.height/4))
}
