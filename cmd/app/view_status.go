package main

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/model"
)

// renderStatusLine shows the catalog source and product count on the left
// and the latest status message on the right.
func (m *Model) renderStatusLine() string {
	left := m.state.Source
	switch {
	case m.state.Mode == model.ModeLoading:
		left += " • loading"
	default:
		left += fmt.Sprintf(" • %d products", len(m.controller.Products()))
	}
	if m.state.Mode == model.ModeSearch {
		left += " • typing filters as you go, enter/esc to finish"
	}

	right := ""
	if msg := m.state.UI.StatusMessage; msg != "" {
		right = lipgloss.NewStyle().Foreground(cyanBright).Render(msg)
	}

	leftRendered := statusStyle.Render(left)
	gap := m.state.Terminal.Cols - lipgloss.Width(leftRendered) - lipgloss.Width(right)
	if gap < 1 {
		return clipAnsiToWidth(leftRendered+" "+right, m.state.Terminal.Cols)
	}
	return leftRendered + padRight("", gap) + right
}

// renderHelpLine shows the short key help for the current mode and page.
func (m *Model) renderHelpLine() string {
	var bindings []key.Binding
	switch {
	case m.state.Mode == model.ModeDetail:
		bindings = m.keys.detailHelp()
	case m.state.Mode == model.ModeSearch:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	case m.state.Page == model.PageLanding:
		bindings = m.keys.landingHelp()
	default:
		bindings = m.keys.ShortHelp()
	}
	return clipAnsiToWidth(m.help.ShortHelpView(bindings), m.state.Terminal.Cols)
}
