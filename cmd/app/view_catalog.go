package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/model"
)

// renderCatalog draws the filter controls, a result summary and the grid.
func (m *Model) renderCatalog(s *screen) {
	m.renderControls(s)

	grid := m.catalog.Grid
	summary := ""
	if m.catalog.Ready() {
		summary = fmt.Sprintf("Showing %d of %d products", grid.Len(), m.catalog.Total())
		if !m.catalog.State().IsDefault() {
			summary += " (filtered, r to reset)"
		}
	}
	s.add(statusStyle.Render(summary) + scrollHint(m.catalogNav, grid.Len()))
	s.add("")

	if text := grid.Placeholder(); text != "" {
		s.add(lipgloss.NewStyle().Italic(true).Foreground(dimColor).Render(text))
		return
	}
	renderGrid(s, grid, m.catalogNav, true, gridTarget{page: model.PageCatalog})
}

// renderControls draws search, genre, availability and reset on one line and
// records a zone for each.
func (m *Model) renderControls(s *screen) {
	y := s.height()
	controls := m.catalog.Controls()
	line := ""

	place := func(rendered string, kind hitKind) {
		if line != "" {
			line += "  "
		}
		s.hit(hitZone{rect: rect{X: lipgloss.Width(line), Y: y, W: lipgloss.Width(rendered), H: 1}, kind: kind})
		line += rendered
	}

	place(m.renderSearchField(), hitSearch)
	place(renderSelector("Genre", controls.Genre), hitGenre)
	place(renderSelector("Availability", controls.Availability.Label()), hitAvailability)

	reset := lipgloss.NewStyle().Foreground(dimColor)
	if !m.catalog.State().IsDefault() {
		reset = reset.Foreground(yellowBright).Bold(true)
	}
	place(reset.Render("[ Reset ]"), hitReset)

	s.add(line)
}

// renderSelector draws a labelled cycling selector, e.g. "Genre ‹ all ›".
func renderSelector(label, value string) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(cyanBright)
	arrow := lipgloss.NewStyle().Foreground(dimColor)
	return labelStyle.Render(label) + " " + arrow.Render("‹ ") +
		lipgloss.NewStyle().Foreground(whiteBright).Render(value) + arrow.Render(" ›")
}

// availabilityColor picks the stock color for an availability string.
func availabilityColor(available string) lipgloss.Style {
	switch available {
	case model.InStock:
		return lipgloss.NewStyle().Foreground(inStockColor)
	case model.OutOfStock:
		return lipgloss.NewStyle().Foreground(outOfStockColor)
	}
	return lipgloss.NewStyle().Foreground(whiteBright)
}
