package config

// Theme defines the colors used by the terminal UI.
// Any color left empty is taken from the named preset.
type Theme struct {
	Preset string `yaml:"preset" mapstructure:"preset"`

	Accent string `yaml:"accent" mapstructure:"accent"` // selection, title, header
	Normal string `yaml:"normal" mapstructure:"normal"`
	Subtle string `yaml:"subtle" mapstructure:"subtle"` // muted text, done items
	Done   string `yaml:"done" mapstructure:"done"`
	High   string `yaml:"high" mapstructure:"high"` // high priority marker
	Error  string `yaml:"error" mapstructure:"error"`
}

// DefaultTheme returns the default purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset: "default",
		Accent: "#874BFD",
		Normal: "#D0D0D0",
		Subtle: "#585858",
		Done:   "#5FD75F",
		High:   "#FFD700",
		Error:  "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Normal: "#D0D0D0",
		Subtle: "#808080",
		Done:   "#A8A8A8",
		High:   "#FFFFFF",
		Error:  "#FFFFFF",
	}
}

// ThemePreset returns a preset theme by name, falling back to the default
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

func (t *Theme) fields() map[string]*string {
	return map[string]*string{
		"accent": &t.Accent,
		"normal": &t.Normal,
		"subtle": &t.Subtle,
		"done":   &t.Done,
		"high":   &t.High,
		"error":  &t.Error,
	}
}

// asMap registers every theme key with only the preset filled in, so colors
// resolve from whichever preset ends up selected.
func (t Theme) asMap() map[string]string {
	out := map[string]string{"preset": t.Preset}
	for name := range t.fields() {
		out[name] = ""
	}
	return out
}

// ApplyDefaults fills in missing colors from the preset
func (t *Theme) ApplyDefaults() {
	if t.Preset == "" {
		t.Preset = "default"
	}
	preset := ThemePreset(t.Preset)
	presetFields := preset.fields()
	for name, ptr := range t.fields() {
		if *ptr == "" {
			*ptr = *presetFields[name]
		}
	}
}
