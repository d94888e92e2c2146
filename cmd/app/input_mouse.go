package main

import (
	tea "charm.land/bubbletea/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
)

type hitKind int

const (
	hitTab hitKind = iota
	hitCard
	hitSearch
	hitGenre
	hitAvailability
	hitReset
	hitModal
	hitModalClose
)

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// hitZone is a clickable area recorded while rendering.
type hitZone struct {
	rect
	kind    hitKind
	page    model.Page
	section landingSection
	index   int
}

// hitMap holds zones in drawing order; later zones are on top.
type hitMap []hitZone

// at returns the topmost zone under (x, y).
func (h hitMap) at(x, y int) (hitZone, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].contains(x, y) {
			return h[i], true
		}
	}
	return hitZone{}, false
}

func (m *Model) handleMouseClickMsg(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	delta := 1
	switch mouse.Button {
	case tea.MouseLeft:
	case tea.MouseRight:
		delta = -1
	default:
		return m, nil
	}

	zone, ok := m.hits.at(mouse.X, mouse.Y)

	switch m.state.Mode {
	case model.ModeLoading:
		return m, nil
	case model.ModeHelp:
		if !ok || zone.kind != hitModal {
			m.state.Mode = model.ModeNormal
		}
		return m, nil
	case model.ModeDetail:
		m.activeModal().Click(modalTarget(zone, ok))
		m.syncDetailMode()
		return m, nil
	case model.ModeSearch:
		if !ok || zone.kind != hitSearch {
			m.exitSearch()
		}
	}

	if !ok {
		return m, nil
	}

	cblog.With("component", "mouse").Debug("Click", "x", mouse.X, "y", mouse.Y, "kind", zone.kind)

	switch zone.kind {
	case hitTab:
		m.setPage(zone.page)
	case hitCard:
		m.selectCard(zone)
	case hitSearch:
		return m, m.enterSearch()
	case hitGenre:
		m.catalog.CycleGenre(delta)
		m.afterFilterChange()
	case hitAvailability:
		m.catalog.CycleAvailability(delta)
		m.afterFilterChange()
	case hitReset:
		m.resetFilters()
	}
	return m, nil
}

// modalTarget maps the zone under a click to the modal click target.
// Anything outside the modal box is backdrop.
func modalTarget(zone hitZone, ok bool) storefront.ClickTarget {
	if ok {
		switch zone.kind {
		case hitModalClose:
			return storefront.TargetClose
		case hitModal:
			return storefront.TargetContent
		}
	}
	return storefront.TargetBackdrop
}

// selectCard moves the matching cursor to the clicked card and opens it.
func (m *Model) selectCard(zone hitZone) {
	switch zone.page {
	case model.PageCatalog:
		m.catalogNav.SetCursor(zone.index)
	default:
		m.landingCursor = zone.section
		_, nav := m.landingFocus()
		nav.SetCursor(zone.index)
	}
	m.openSelected()
}

func (m *Model) handleMouseWheelMsg(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.state.Mode != model.ModeNormal && m.state.Mode != model.ModeSearch {
		return m, nil
	}

	nav := m.catalogNav
	if m.state.Page == model.PageLanding {
		_, nav = m.landingFocus()
	}
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		nav.MoveUp()
	case tea.MouseWheelDown:
		nav.MoveDown()
	}
	return m, nil
}
