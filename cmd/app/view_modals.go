package main

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/muesli/reflow/wordwrap"
)

// modalInnerWidth is the content width of the detail modal for the current
// terminal.
func (m *Model) modalInnerWidth() int {
	outer := min(maxModalWidth, m.state.Terminal.Cols-4)
	return max(minModalWidth, outer) - 4
}

// renderDetailModal draws the product details. Every line is exactly inner
// cells wide so the close control sits at a known column.
func (m *Model) renderDetailModal(d storefront.Detail, inner int) string {
	var lines []string

	title := lipgloss.NewStyle().Bold(true).Foreground(magentaBright).
		Render(truncateCell(d.Title, inner-len(modalCloseLabel)-1))
	closeBtn := lipgloss.NewStyle().Bold(true).Foreground(outOfStockColor).Render(modalCloseLabel)
	lines = append(lines, padRight(title, inner-len(modalCloseLabel))+closeBtn)
	lines = append(lines, statusStyle.Render(truncateCell("Image  "+d.Image, inner)))
	lines = append(lines, "")

	// Leave room for the field block, hints and border.
	maxDesc := max(minDescriptionLines, m.state.Terminal.Rows-16)
	desc := strings.Split(wordwrap.String(d.Description, inner), "\n")
	if len(desc) > maxDesc {
		desc = desc[:maxDesc]
		desc[maxDesc-1] = truncateCell(desc[maxDesc-1]+"…", inner)
	}
	for _, l := range desc {
		lines = append(lines, truncateCell(l, inner))
	}
	lines = append(lines, "")

	label := lipgloss.NewStyle().Foreground(cyanBright)
	field := func(name, value string, style lipgloss.Style) {
		lines = append(lines, label.Render(padRight(name, 14))+style.Render(truncateCell(value, inner-14)))
	}
	plain := lipgloss.NewStyle().Foreground(whiteBright)
	field("Price", d.Price, plain)
	field("Weight", d.Weight, plain)
	field("Volume", d.Volume, plain)
	field("Playtime", d.Playtime, plain)
	field("Availability", d.Available, availabilityColor(d.Available))
	lines = append(lines, "")

	hint := m.help.ShortHelpView(m.keys.detailHelp())
	lines = append(lines, hint)

	for i, l := range lines {
		lines[i] = fitCell(l, inner)
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}

// overlayDetailModal centers the detail modal over the dimmed page and
// records the modal and close-control zones on top of the page zones.
func (m *Model) overlayDetailModal(base string) string {
	modal := m.activeModal()
	if !modal.IsOpen() {
		return base
	}
	inner := m.modalInnerWidth()
	box := m.renderDetailModal(modal.Detail(), inner)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x := centerIn(m.state.Terminal.Cols, w)
	y := centerIn(m.state.Terminal.Rows, h)

	m.hits = append(m.hits,
		hitZone{rect: rect{X: x, Y: y, W: w, H: h}, kind: hitModal},
		hitZone{
			// border + padding, then the label ends the first content line
			rect: rect{X: x + 2 + inner - len(modalCloseLabel), Y: y + 1, W: len(modalCloseLabel), H: 1},
			kind: hitModalClose,
		},
	)
	return overlay(base, box, x, y)
}

// overlayHelpModal shows every key binding above the dimmed page.
func (m *Model) overlayHelpModal(base string) string {
	h := m.help
	h.ShowAll = true
	body := headerStyle.Render("Keyboard shortcuts") + "\n\n" +
		h.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		statusStyle.Render("Click a card to open it • click the backdrop to close")
	box := modalStyle.Render(normalizeLinesToWidth(body, max(minModalWidth, min(lipgloss.Width(body), m.state.Terminal.Cols-4))))

	x := centerIn(m.state.Terminal.Cols, lipgloss.Width(box))
	y := centerIn(m.state.Terminal.Rows, lipgloss.Height(box))
	m.hits = append(m.hits, hitZone{rect: rect{X: x, Y: y, W: lipgloss.Width(box), H: lipgloss.Height(box)}, kind: hitModal})
	return overlay(base, box, x, y)
}
