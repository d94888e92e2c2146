package theme

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// Palette defines the core colors used by the TUI. Colors can be ANSI
// indices or truecolor hex values.
type Palette struct {
	// Accents and roles
	Accent  color.Color // primary accent, titles
	Heading color.Color // section headings, hints
	Dim     color.Color // subtle text

	// Stock colors
	InStock    color.Color
	OutOfStock color.Color

	Info color.Color // prices, links
	Text color.Color // bright text

	// Backgrounds
	SelectedBG color.Color // cursor card
	Border     color.Color // card and panel borders
	Backdrop   color.Color // dimmed area behind the modal
	ModalBG    color.Color // modal content box
}

// Default returns the stock ANSI palette.
func Default() Palette {
	return Palette{
		Accent:     lipgloss.Color("13"),
		Heading:    lipgloss.Color("11"),
		Dim:        lipgloss.Color("8"),
		InStock:    lipgloss.Color("10"),
		OutOfStock: lipgloss.Color("9"),
		Info:       lipgloss.Color("14"),
		Text:       lipgloss.Color("15"),
		SelectedBG: lipgloss.Color("13"),
		Border:     lipgloss.Color("13"),
		Backdrop:   lipgloss.Color("236"),
		ModalBG:    lipgloss.Color("0"),
	}
}

// FromEnv overlays the provided base palette with environment-provided colors.
// Hex values like "#88c0d0" or ANSI numbers like "33" are both supported.
//
// Supported variables:
//
//	LUMINA_COLOR_ACCENT
//	LUMINA_COLOR_HEADING
//	LUMINA_COLOR_DIM
//	LUMINA_COLOR_IN_STOCK
//	LUMINA_COLOR_OUT_OF_STOCK
//	LUMINA_COLOR_INFO
//	LUMINA_COLOR_TEXT
//	LUMINA_COLOR_BORDER
//	LUMINA_BG_SELECTED
//	LUMINA_BG_BACKDROP
//	LUMINA_BG_MODAL
func FromEnv(base Palette) Palette {
	set := func(env string, apply func(color.Color)) {
		if v := os.Getenv(env); v != "" {
			apply(lipgloss.Color(v))
		}
	}

	set("LUMINA_COLOR_ACCENT", func(c color.Color) { base.Accent = c; base.SelectedBG = c })
	set("LUMINA_COLOR_HEADING", func(c color.Color) { base.Heading = c })
	set("LUMINA_COLOR_DIM", func(c color.Color) { base.Dim = c })
	set("LUMINA_COLOR_IN_STOCK", func(c color.Color) { base.InStock = c })
	set("LUMINA_COLOR_OUT_OF_STOCK", func(c color.Color) { base.OutOfStock = c })
	set("LUMINA_COLOR_INFO", func(c color.Color) { base.Info = c })
	set("LUMINA_COLOR_TEXT", func(c color.Color) { base.Text = c })
	set("LUMINA_COLOR_BORDER", func(c color.Color) { base.Border = c })
	set("LUMINA_BG_SELECTED", func(c color.Color) { base.SelectedBG = c })
	set("LUMINA_BG_BACKDROP", func(c color.Color) { base.Backdrop = c })
	set("LUMINA_BG_MODAL", func(c color.Color) { base.ModalBG = c })
	return base
}
