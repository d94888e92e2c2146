package main

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/model"
)

const (
	searchLabel    = "Search "
	minSearchWidth = 12
	maxSearchWidth = 40
)

// InputComponentState manages interactive input components
type InputComponentState struct {
	searchInput textinput.Model
}

// NewInputComponents creates a new input component state
func NewInputComponents() *InputComponentState {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search products..."
	searchInput.Prompt = ""
	searchInput.CharLimit = 200
	searchInput.SetWidth(maxSearchWidth)

	return &InputComponentState{searchInput: searchInput}
}

// UpdateSearchInput updates the search textinput component
func (ic *InputComponentState) UpdateSearchInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ic.searchInput, cmd = ic.searchInput.Update(msg)
	return cmd
}

// FocusSearchInput focuses the search input
func (ic *InputComponentState) FocusSearchInput() tea.Cmd {
	return ic.searchInput.Focus()
}

// BlurInputs removes focus from all inputs
func (ic *InputComponentState) BlurInputs() {
	ic.searchInput.Blur()
}

// SearchFocused reports whether the search field has focus
func (ic *InputComponentState) SearchFocused() bool {
	return ic.searchInput.Focused()
}

// GetSearchValue returns current search input value
func (ic *InputComponentState) GetSearchValue() string {
	return ic.searchInput.Value()
}

// SetSearchValue sets the search input value
func (ic *InputComponentState) SetSearchValue(value string) {
	ic.searchInput.SetValue(value)
}

// SetWidth resizes the search field
func (ic *InputComponentState) SetWidth(w int) {
	ic.searchInput.SetWidth(w)
}

// searchFieldWidth sizes the search field to the terminal, leaving room for
// the selectors on the same line.
func searchFieldWidth(cols int) int {
	return max(minSearchWidth, min(maxSearchWidth, cols/3))
}

// renderSearchField draws the search control; focused it shows the live
// textinput, otherwise the current value or a hint.
func (m *Model) renderSearchField() string {
	width := searchFieldWidth(m.state.Terminal.Cols)
	label := lipgloss.NewStyle().Bold(true).Foreground(cyanBright).Render(searchLabel)

	var field string
	if m.inputComponents.SearchFocused() {
		field = m.inputComponents.searchInput.View()
	} else if v := m.inputComponents.GetSearchValue(); v != "" {
		field = lipgloss.NewStyle().Foreground(whiteBright).Render(truncateCell(v, width))
	} else {
		field = statusStyle.Render(truncateCell("press / to search", width))
	}

	border := dimColor
	if m.state.Mode == model.ModeSearch {
		border = yellowBright
	}
	box := lipgloss.NewStyle().Foreground(border).Render("[") +
		padRight(field, width) +
		lipgloss.NewStyle().Foreground(border).Render("]")
	return label + box
}
