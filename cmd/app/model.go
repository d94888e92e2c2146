package main

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/darksworm/lumina/pkg/tui/clipboard"
	"github.com/darksworm/lumina/pkg/tui/listnav"
)

// landingSection picks which landing region has the cursor
type landingSection int

const (
	sectionPrimary landingSection = iota
	sectionFeatured
)

// Model represents the main Bubbletea model containing all application state
type Model struct {
	state *model.AppState

	// Data source and the controller that owns the loaded catalog
	loader     *catalog.Loader
	controller *storefront.Controller
	landing    *storefront.LandingPage
	catalog    *storefront.CatalogPage

	// Interactive input components using bubbles
	inputComponents *InputComponentState

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// Card cursors
	primaryNav    *listnav.GridNavigator
	featuredNav   *listnav.GridNavigator
	catalogNav    *listnav.GridNavigator
	landingCursor landingSection

	// Clickable areas recorded by the last View
	hits hitMap

	ready bool
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Terminal/System messages
	case tea.WindowSizeMsg:
		m.state.Terminal.Rows = msg.Height
		m.state.Terminal.Cols = msg.Width
		m.inputComponents.SetWidth(searchFieldWidth(msg.Width))
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClickMsg(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheelMsg(msg)

	case spinner.TickMsg:
		if m.state.Mode != model.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Data load
	case model.CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case model.CatalogLoadFailedMsg:
		// Already logged by the loader. Sections simply stay empty.
		m.state.LoadFailed = true
		m.state.Mode = model.ModeNormal
		return m, nil

	// Page / filter messages
	case model.SetPageMsg:
		m.setPage(msg.Page)
		return m, nil

	case model.SetSearchQueryMsg:
		m.catalog.SetSearch(msg.Query)
		m.inputComponents.SetSearchValue(m.catalog.Controls().Search)
		m.afterFilterChange()
		return m, nil

	case model.SetGenreMsg:
		m.catalog.SetGenre(msg.Genre)
		m.afterFilterChange()
		return m, nil

	case model.SetAvailabilityMsg:
		m.catalog.SetAvailability(msg.Availability)
		m.afterFilterChange()
		return m, nil

	case model.ResetFiltersMsg:
		m.resetFilters()
		return m, nil

	case clipboard.CopyMsg:
		if msg.Success {
			m.state.UI.StatusMessage = "Copied \"" + msg.Text + "\""
		} else {
			m.state.UI.StatusMessage = "Nothing copied"
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleCatalogLoaded(msg model.CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.controller.Deliver(msg.Products) {
		cblog.With("component", "app").Warn("Ignoring second catalog delivery")
		return m, nil
	}
	m.state.Loaded = true
	m.state.Mode = model.ModeNormal
	m.primaryNav.SetItemCount(m.landing.Primary.Len())
	m.featuredNav.SetItemCount(m.landing.Featured.Len())
	m.catalogNav.SetItemCount(m.catalog.Grid.Len())
	m.updateLayout()
	if m.landing.Primary.Len() == 0 && m.landing.Featured.Len() > 0 {
		m.landingCursor = sectionFeatured
	}
	cblog.With("component", "app").Info("Storefront ready",
		"products", len(msg.Products),
		"speakers", m.landing.Primary.Len(),
		"featured", m.landing.Featured.Len())
	return m, nil
}

// activeModal returns the detail modal of the current page
func (m *Model) activeModal() *storefront.Modal {
	if m.state.Page == model.PageCatalog {
		return m.catalog.Modal
	}
	return m.landing.Modal
}

// syncDetailMode keeps Mode in step with the modal state
func (m *Model) syncDetailMode() {
	switch {
	case m.activeModal().IsOpen():
		m.inputComponents.BlurInputs()
		m.state.Mode = model.ModeDetail
	case m.state.Mode == model.ModeDetail:
		m.state.Mode = model.ModeNormal
	}
}

func (m *Model) setPage(p model.Page) {
	if m.state.Page == p {
		return
	}
	m.activeModal().Close()
	m.inputComponents.BlurInputs()
	m.state.Page = p
	if m.state.Mode == model.ModeSearch || m.state.Mode == model.ModeDetail {
		m.state.Mode = model.ModeNormal
	}
}

// afterFilterChange re-syncs the grid cursor with the freshly rendered grid
func (m *Model) afterFilterChange() {
	m.catalogNav.SetItemCount(m.catalog.Grid.Len())
	m.catalogNav.Reset()
}

// resetFilters resets the filter state and the widgets showing it
func (m *Model) resetFilters() {
	m.catalog.Reset()
	m.inputComponents.SetSearchValue(m.catalog.Controls().Search)
	m.afterFilterChange()
}
