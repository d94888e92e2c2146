package theme

import (
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/config"
)

// Preset palettes inspired by popular themes.
var presets = map[string]Palette{
	"tokyo-night": {
		Accent:     lipgloss.Color("#bb9af7"),
		Heading:    lipgloss.Color("#e0af68"),
		Dim:        lipgloss.Color("#565f89"),
		InStock:    lipgloss.Color("#9ece6a"),
		OutOfStock: lipgloss.Color("#f7768e"),
		Info:       lipgloss.Color("#7dcfff"),
		Text:       lipgloss.Color("#c0caf5"),
		SelectedBG: lipgloss.Color("#364a82"),
		Border:     lipgloss.Color("#7aa2f7"),
		Backdrop:   lipgloss.Color("#1d202f"),
		ModalBG:    lipgloss.Color("#24283b"),
	},
	"dracula": {
		Accent:     lipgloss.Color("#bd93f9"),
		Heading:    lipgloss.Color("#f1fa8c"),
		Dim:        lipgloss.Color("#6272a4"),
		InStock:    lipgloss.Color("#50fa7b"),
		OutOfStock: lipgloss.Color("#ff5555"),
		Info:       lipgloss.Color("#8be9fd"),
		Text:       lipgloss.Color("#f8f8f2"),
		SelectedBG: lipgloss.Color("#44475a"),
		Border:     lipgloss.Color("#bd93f9"),
		Backdrop:   lipgloss.Color("#21222c"),
		ModalBG:    lipgloss.Color("#282a36"),
	},
	"nord": {
		Accent:     lipgloss.Color("#81a1c1"),
		Heading:    lipgloss.Color("#ebcb8b"),
		Dim:        lipgloss.Color("#4c566a"),
		InStock:    lipgloss.Color("#a3be8c"),
		OutOfStock: lipgloss.Color("#bf616a"),
		Info:       lipgloss.Color("#88c0d0"),
		Text:       lipgloss.Color("#eceff4"),
		SelectedBG: lipgloss.Color("#434c5e"),
		Border:     lipgloss.Color("#81a1c1"),
		Backdrop:   lipgloss.Color("#242933"),
		ModalBG:    lipgloss.Color("#2e3440"),
	},
	"gruvbox": {
		Accent:     lipgloss.Color("#d3869b"),
		Heading:    lipgloss.Color("#fabd2f"),
		Dim:        lipgloss.Color("#928374"),
		InStock:    lipgloss.Color("#b8bb26"),
		OutOfStock: lipgloss.Color("#fb4934"),
		Info:       lipgloss.Color("#83a598"),
		Text:       lipgloss.Color("#ebdbb2"),
		SelectedBG: lipgloss.Color("#504945"),
		Border:     lipgloss.Color("#d3869b"),
		Backdrop:   lipgloss.Color("#1d2021"),
		ModalBG:    lipgloss.Color("#282828"),
	},
	"mono": Default(),
}

// Names returns sorted preset names.
func Names() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FromName returns a preset by name, or the default theme if unknown.
func FromName(name string) Palette {
	if p, ok := Get(name); ok {
		return p
	}
	if p, ok := presets[config.DefaultThemeName]; ok {
		return p
	}
	return Default()
}

// Get returns a preset and whether it exists.
func Get(name string) (Palette, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

// FromConfig resolves the configured theme and applies env overrides.
func FromConfig(cfg *config.Config) Palette {
	name := config.DefaultThemeName
	if cfg != nil && cfg.Appearance.Theme != "" {
		name = cfg.Appearance.Theme
	}
	return FromEnv(FromName(name))
}
