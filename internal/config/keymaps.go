package config

// KeyMappings defines all configurable key bindings.
// Keys use bubbletea names ("enter", "ctrl+c"); "space" means the space bar.
type KeyMappings struct {
	AddItem    string `yaml:"add_item" mapstructure:"add_item"`
	EditItem   string `yaml:"edit_item" mapstructure:"edit_item"`
	ToggleDone string `yaml:"toggle_done" mapstructure:"toggle_done"`
	DeleteItem string `yaml:"delete_item" mapstructure:"delete_item"`
	ClearAll   string `yaml:"clear_all" mapstructure:"clear_all"`
	Expand     string `yaml:"expand" mapstructure:"expand"`

	// Navigation
	PrevItem string `yaml:"prev_item" mapstructure:"prev_item"`
	NextItem string `yaml:"next_item" mapstructure:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help" mapstructure:"show_help"`
	Quit     string `yaml:"quit" mapstructure:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddItem:    "a",
		EditItem:   "e",
		ToggleDone: "space",
		DeleteItem: "d",
		ClearAll:   "C",
		Expand:     "enter",

		PrevItem: "k",
		NextItem: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() map[string]*string {
	return map[string]*string{
		"add_item":    &k.AddItem,
		"edit_item":   &k.EditItem,
		"toggle_done": &k.ToggleDone,
		"delete_item": &k.DeleteItem,
		"clear_all":   &k.ClearAll,
		"expand":      &k.Expand,
		"prev_item":   &k.PrevItem,
		"next_item":   &k.NextItem,
		"show_help":   &k.ShowHelp,
		"quit":        &k.Quit,
	}
}

func (k KeyMappings) asMap() map[string]string {
	out := make(map[string]string)
	for name, ptr := range k.fields() {
		out[name] = *ptr
	}
	return out
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	defaultFields := defaults.fields()
	for name, ptr := range k.fields() {
		if *ptr == "" {
			*ptr = *defaultFields[name]
		}
	}
}
