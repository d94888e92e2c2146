package main

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/model"
)

var (
	magentaBright = lipgloss.Color("13") // Accent, cursor card
	yellowBright  = lipgloss.Color("11") // Headings
	dimColor      = lipgloss.Color("8")  // Dimmed text
	cyanBright    = lipgloss.Color("14") // Prices, labels
	whiteBright   = lipgloss.Color("15") // Bright white
	borderColor   = lipgloss.Color("13")

	inStockColor    = lipgloss.Color("10")
	outOfStockColor = lipgloss.Color("9")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			PaddingLeft(1).
			PaddingRight(1)
	selectedCardStyle = cardStyle.BorderForeground(magentaBright)
	modalStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(magentaBright).
				PaddingLeft(1).
				PaddingRight(1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(yellowBright)
	statusStyle = lipgloss.NewStyle().Foreground(dimColor)
)

// Fixed vertical chrome around the card grids.
const (
	headerLines         = 2 // banner + gap
	footerLines         = 2 // status + key help
	sectionChromeLines  = 2 // landing heading + gap
	catalogChromeLines  = 3 // controls + summary + gap
	cardInnerWidth      = 22
	cardOuterWidth      = cardInnerWidth + 4 // border + padding
	cardGap             = 1
	cardLines           = 3
	cardHeight          = cardLines + 2
	minModalWidth       = 24
	maxModalWidth       = 64
	modalCloseLabel     = "[x]"
	minDescriptionLines = 3
)

// gridColumns is how many cards fit side by side in cols terminal columns.
func gridColumns(cols int) int {
	return max(1, (cols+cardGap)/(cardOuterWidth+cardGap))
}

// View renders the whole screen and records the clickable zones that the
// mouse handler hit-tests against.
func (m *Model) View() tea.View {
	var content string
	if !m.ready {
		m.hits = nil
		content = statusStyle.Render("Starting…")
	} else {
		content = m.renderMainLayout()
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) renderMainLayout() string {
	s := &screen{}
	m.renderBanner(s)
	s.add("")

	bodyStart := s.height()
	switch {
	case m.state.Mode == model.ModeLoading:
		s.add(m.renderLoading())
	case m.state.Page == model.PageCatalog:
		m.renderCatalog(s)
	default:
		m.renderLanding(s)
	}
	s.fit(bodyStart + max(0, m.state.Terminal.Rows-headerLines-footerLines))

	s.add(m.renderStatusLine())
	s.add(m.renderHelpLine())

	base := normalizeLinesToWidth(s.String(), m.state.Terminal.Cols)
	m.hits = s.hits

	switch m.state.Mode {
	case model.ModeDetail:
		return m.overlayDetailModal(base)
	case model.ModeHelp:
		return m.overlayHelpModal(base)
	}
	return base
}

func (m *Model) renderLoading() string {
	cblog.With("component", "view").Debug("Rendering loading screen", "source", m.state.Source)
	return m.spinner.View() + " " + statusStyle.Render("Loading catalog from "+m.state.Source+"…")
}

// renderBanner draws the title and the two page tabs.
func (m *Model) renderBanner(s *screen) {
	title := lipgloss.NewStyle().Bold(true).Foreground(magentaBright).Render("lumina")
	line := title + "  "
	y := s.height()

	for _, tab := range []struct {
		page  model.Page
		label string
	}{
		{model.PageLanding, "1 Home"},
		{model.PageCatalog, "2 Catalog"},
	} {
		style := lipgloss.NewStyle().Foreground(dimColor).PaddingLeft(1).PaddingRight(1)
		if m.state.Page == tab.page {
			style = style.Bold(true).Foreground(whiteBright).Background(selectedBG)
		}
		rendered := style.Render(tab.label)
		s.hit(hitZone{
			rect: rect{X: lipgloss.Width(line), Y: y, W: lipgloss.Width(rendered), H: 1},
			kind: hitTab,
			page: tab.page,
		})
		line += rendered + " "
	}
	s.add(line)
}

// screen accumulates rendered lines together with the zones drawn on them.
type screen struct {
	lines []string
	hits  hitMap
}

func (s *screen) height() int { return len(s.lines) }

// add appends a (possibly multi-line) block and returns the row it starts on.
func (s *screen) add(block string) int {
	y := len(s.lines)
	s.lines = append(s.lines, strings.Split(block, "\n")...)
	return y
}

func (s *screen) hit(z hitZone) {
	s.hits = append(s.hits, z)
}

// fit pads or clips the screen to n lines, dropping zones that fall off.
func (s *screen) fit(n int) {
	for len(s.lines) < n {
		s.lines = append(s.lines, "")
	}
	if len(s.lines) > n {
		s.lines = s.lines[:n]
		kept := s.hits[:0]
		for _, z := range s.hits {
			if z.Y+z.H <= n {
				kept = append(kept, z)
			}
		}
		s.hits = kept
	}
}

func (s *screen) String() string {
	return strings.Join(s.lines, "\n")
}
