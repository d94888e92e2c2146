package main

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/darksworm/lumina/pkg/tui/listnav"
)

// gridTarget tells a card zone which cursor to move when it is clicked.
type gridTarget struct {
	page    model.Page
	section landingSection
}

// renderCard draws one card box. All cards share the same size so the grid
// stays aligned and hit-testing can work in whole card cells.
func renderCard(card storefront.Card, selected bool) string {
	image := card.Image
	if image == "" {
		image = "no image"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(whiteBright)
	if selected {
		titleStyle = titleStyle.Background(selectedBG)
	}

	lines := make([]string, cardLines)
	lines[0] = statusStyle.Render(fitCell(truncateCell(image, cardInnerWidth), cardInnerWidth))
	lines[1] = titleStyle.Render(fitCell(truncateCell(card.Title, cardInnerWidth), cardInnerWidth))
	lines[2] = strings.Repeat(" ", cardInnerWidth)
	if card.Kind == storefront.CardFeatured && card.Price != "" {
		price := lipgloss.NewStyle().Foreground(cyanBright).Render(truncateCell(card.Price, cardInnerWidth))
		lines[2] = fitCell(price, cardInnerWidth)
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderGrid draws the visible rows of region and records a zone per card.
// The cursor card is highlighted only when focused is set.
func renderGrid(s *screen, region *storefront.Region, nav *listnav.GridNavigator, focused bool, target gridTarget) {
	start, end := nav.VisibleRange()
	cols := nav.Columns()
	gap := strings.Repeat(" ", cardGap)

	for rowStart := start; rowStart < end; rowStart += cols {
		rowEnd := min(end, rowStart+cols)
		rowLines := make([]string, cardHeight)
		y := s.height()

		for idx := rowStart; idx < rowEnd; idx++ {
			card, ok := region.Card(idx)
			if !ok {
				break
			}
			col := idx - rowStart
			boxLines := strings.Split(renderCard(card, focused && idx == nav.Cursor()), "\n")
			for i := range rowLines {
				if col > 0 {
					rowLines[i] += gap
				}
				if i < len(boxLines) {
					rowLines[i] += boxLines[i]
				}
			}
			s.hit(hitZone{
				rect:    rect{X: col * (cardOuterWidth + cardGap), Y: y, W: cardOuterWidth, H: cardHeight},
				kind:    hitCard,
				page:    target.page,
				section: target.section,
				index:   idx,
			})
		}
		s.add(strings.Join(rowLines, "\n"))
	}
}

// scrollHint tells how many cards sit outside the visible rows.
func scrollHint(nav *listnav.GridNavigator, total int) string {
	start, end := nav.VisibleRange()
	hidden := total - (end - start)
	if hidden <= 0 {
		return ""
	}
	return statusStyle.Render("  ↕ " + strconv.Itoa(hidden) + " more")
}
