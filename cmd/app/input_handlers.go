package main

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/tui/clipboard"
)

// handleKeyMsg dispatches key presses by mode
func (m *Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state.Mode {
	case model.ModeLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case model.ModeSearch:
		return m.handleSearchModeKeys(msg)
	case model.ModeDetail:
		return m.handleDetailModeKeys(msg)
	case model.ModeHelp:
		return m.handleHelpModeKeys(msg)
	}
	return m.handleNormalModeKeys(msg)
}

func (m *Model) handleNormalModeKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.state.Mode = model.ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		if m.state.Page == model.PageLanding {
			m.setPage(model.PageCatalog)
		} else {
			m.setPage(model.PageLanding)
		}
		return m, nil
	case key.Matches(msg, m.keys.Landing):
		m.setPage(model.PageLanding)
		return m, nil
	case key.Matches(msg, m.keys.Catalog):
		m.setPage(model.PageCatalog)
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.openSelected()
		return m, nil
	}

	if m.state.Page == model.PageLanding {
		m.handleLandingNavigation(msg)
		return m, nil
	}
	return m.handleCatalogKeys(msg)
}

func (m *Model) handleCatalogKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	nav := m.catalogNav
	switch {
	case key.Matches(msg, m.keys.Up):
		nav.MoveUp()
	case key.Matches(msg, m.keys.Down):
		nav.MoveDown()
	case key.Matches(msg, m.keys.Left):
		nav.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		nav.MoveRight()
	case key.Matches(msg, m.keys.Top):
		nav.GoToTop()
	case key.Matches(msg, m.keys.Bottom):
		nav.GoToBottom()
	case key.Matches(msg, m.keys.Search):
		return m, m.enterSearch()
	case key.Matches(msg, m.keys.Genre):
		m.catalog.CycleGenre(1)
		m.afterFilterChange()
	case key.Matches(msg, m.keys.GenreBack):
		m.catalog.CycleGenre(-1)
		m.afterFilterChange()
	case key.Matches(msg, m.keys.Availability):
		m.catalog.CycleAvailability(1)
		m.afterFilterChange()
	case key.Matches(msg, m.keys.AvailBack):
		m.catalog.CycleAvailability(-1)
		m.afterFilterChange()
	case key.Matches(msg, m.keys.Reset):
		m.resetFilters()
	}
	return m, nil
}

// handleLandingNavigation moves the cursor within a section and across the
// boundary between the two sections.
func (m *Model) handleLandingNavigation(msg tea.KeyPressMsg) {
	_, nav := m.landingFocus()
	switch {
	case key.Matches(msg, m.keys.Up):
		if !nav.MoveUp() && m.landingCursor == sectionFeatured && m.landing.Primary.Len() > 0 {
			m.landingCursor = sectionPrimary
			m.primaryNav.GoToBottom()
		}
	case key.Matches(msg, m.keys.Down):
		if !nav.MoveDown() && m.landingCursor == sectionPrimary && m.landing.Featured.Len() > 0 {
			m.landingCursor = sectionFeatured
			m.featuredNav.GoToTop()
		}
	case key.Matches(msg, m.keys.Left):
		nav.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		nav.MoveRight()
	case key.Matches(msg, m.keys.Top):
		nav.GoToTop()
	case key.Matches(msg, m.keys.Bottom):
		nav.GoToBottom()
	}
}

// openSelected opens the modal for the card under the cursor, if any.
func (m *Model) openSelected() {
	if m.state.Page == model.PageCatalog {
		m.catalog.Select(m.catalogNav.Cursor())
	} else {
		region, nav := m.landingFocus()
		m.landing.Select(region, nav.Cursor())
	}
	m.syncDetailMode()
}

// enterSearch focuses the search field. It is inert until the catalog is
// loaded, like every other catalog control.
func (m *Model) enterSearch() tea.Cmd {
	if !m.catalog.Ready() {
		return nil
	}
	m.state.Mode = model.ModeSearch
	return m.inputComponents.FocusSearchInput()
}

// exitSearch leaves the search field; the typed filter stays applied.
func (m *Model) exitSearch() {
	m.inputComponents.BlurInputs()
	if m.state.Mode == model.ModeSearch {
		m.state.Mode = model.ModeNormal
	}
}

// handleSearchModeKeys feeds keystrokes to the search field and re-filters on
// every change to its value.
func (m *Model) handleSearchModeKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.exitSearch()
		return m, nil
	}

	before := m.inputComponents.GetSearchValue()
	cmd := m.inputComponents.UpdateSearchInput(msg)
	if after := m.inputComponents.GetSearchValue(); after != before {
		cblog.With("component", "search").Debug("Search changed", "query", after)
		m.catalog.SetSearch(after)
		m.afterFilterChange()
	}
	return m, cmd
}

func (m *Model) handleDetailModeKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.activeModal().Close()
		m.syncDetailMode()
	case key.Matches(msg, m.keys.Copy):
		return m, clipboard.CopyCmd(m.activeModal().Product().Title)
	}
	return m, nil
}

func (m *Model) handleHelpModeKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help, m.keys.Close, m.keys.Quit) {
		m.state.Mode = model.ModeNormal
	}
	return m, nil
}
