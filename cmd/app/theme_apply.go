package main

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/theme"
)

// Global variables for storing current theme colors
var (
	currentPalette theme.Palette

	selectedBG color.Color = lipgloss.Color("13")
	backdropBG color.Color = lipgloss.Color("236")
	modalBG    color.Color = lipgloss.Color("0")
)

// applyTheme updates global color variables and derived styles used
// throughout the TUI. Call this early at startup.
func applyTheme(p theme.Palette) {
	currentPalette = p

	if p.Border == nil {
		p.Border = p.Accent
	}
	if p.SelectedBG == nil {
		p.SelectedBG = p.Accent
	}

	// Update base color variables in view.go
	magentaBright = p.Accent
	yellowBright = p.Heading
	dimColor = p.Dim
	inStockColor = p.InStock
	outOfStockColor = p.OutOfStock
	cyanBright = p.Info
	whiteBright = p.Text
	borderColor = p.Border

	selectedBG = p.SelectedBG
	backdropBG = p.Backdrop
	modalBG = p.ModalBG

	// Rebuild frequently used styles so they pick up new colors
	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		PaddingLeft(1).
		PaddingRight(1)
	selectedCardStyle = cardStyle.BorderForeground(magentaBright)
	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(magentaBright).
		PaddingLeft(1).
		PaddingRight(1).
		Background(modalBG)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(yellowBright)
	statusStyle = lipgloss.NewStyle().Foreground(dimColor)
}
