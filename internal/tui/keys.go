package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/basket/internal/config"
)

// keyMap holds the list screen bindings, built from the configured key mappings.
type keyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Expand key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// teaKey converts a configured key name to the string bubbletea reports.
func teaKey(name string) string {
	if name == "space" {
		return " "
	}
	return name
}

func binding(name, help string, extra ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(append([]string{teaKey(name)}, extra...)...),
		key.WithHelp(name, help),
	)
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:    binding(km.AddItem, "add"),
		Edit:   binding(km.EditItem, "edit"),
		Toggle: binding(km.ToggleDone, "bought"),
		Delete: binding(km.DeleteItem, "delete"),
		Clear:  binding(km.ClearAll, "clear all"),
		Expand: binding(km.Expand, "details"),
		Up:     binding(km.PrevItem, "up", "up"),
		Down:   binding(km.NextItem, "down", "down"),
		Help:   binding(km.ShowHelp, "help"),
		Quit:   binding(km.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Expand, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Add, k.Edit, k.Toggle},
		{k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}
