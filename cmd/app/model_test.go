package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/darksworm/lumina/pkg/tui/clipboard"
)

// staticSource serves a fixed product list.
type staticSource struct {
	products []model.Product
	err      error
}

func (s staticSource) Load(context.Context) ([]model.Product, error) { return s.products, s.err }
func (s staticSource) Location() string                             { return "test.json" }

func testProducts() []model.Product {
	return []model.Product{
		{Title: "Aero", Image: "img/aero.png", Genre: "Speaker", Available: model.InStock, Price: "999 kr", Description: "Portable speaker"},
		{Title: "Case", Image: "img/case.png", Genre: "Accessory", Available: model.OutOfStock},
		{Title: "Canvas Totebag", Image: "img/tote.png", Genre: "Accessory", Available: model.InStock, Price: "199 kr"},
		{Title: "Cover Moonlight White", Image: "img/white.png", Genre: "Speaker Cover", Available: model.InStock, Price: "249 kr"},
		{Title: "Boom", Image: "img/boom.png", Genre: "Speaker", Available: model.OutOfStock, Description: "Loud"},
	}
}

// newTestModel returns a sized model with the test catalog delivered.
func newTestModel(t *testing.T, page model.Page) *Model {
	t.Helper()
	m := NewModel(page, catalog.NewLoader(staticSource{products: testProducts()}))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(model.CatalogLoadedMsg{Products: testProducts()})
	return m
}

// keyPress builds a key press for a binding name or a printable string.
func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(string(r)))
	}
}

func gridTitles(r *storefront.Region) []string {
	var out []string
	for _, c := range r.Cards() {
		out = append(out, c.Title)
	}
	return out
}

func TestInitStartsLoadOnce(t *testing.T) {
	m := NewModel(model.PageLanding, catalog.NewLoader(staticSource{}))
	if m.state.Mode != model.ModeLoading {
		t.Fatalf("expected loading mode, got %s", m.state.Mode)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected init command")
	}
	if !m.loader.Started() {
		t.Fatal("expected the load to be started by Init")
	}
	if cmd := m.loader.Cmd(context.Background()); cmd != nil {
		t.Fatal("expected no second load command")
	}
}

func TestCatalogLoadedPopulatesBothPages(t *testing.T) {
	m := newTestModel(t, model.PageLanding)

	if m.state.Mode != model.ModeNormal || !m.state.Loaded {
		t.Fatalf("expected loaded normal mode, got %s loaded=%v", m.state.Mode, m.state.Loaded)
	}
	if got := gridTitles(m.landing.Primary); len(got) != 2 || got[0] != "Aero" || got[1] != "Boom" {
		t.Errorf("unexpected speakers %v", got)
	}
	if got := gridTitles(m.landing.Featured); len(got) != 2 || got[0] != "Canvas Totebag" {
		t.Errorf("unexpected featured %v", got)
	}
	if m.catalog.Grid.Len() != 5 {
		t.Errorf("expected full grid, got %d", m.catalog.Grid.Len())
	}
}

func TestSecondDeliveryIsIgnored(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	m.Update(model.CatalogLoadedMsg{Products: testProducts()[:1]})

	if m.catalog.Grid.Len() != 5 {
		t.Fatalf("expected grid to keep the first delivery, got %d cards", m.catalog.Grid.Len())
	}
}

func TestLoadFailureLeavesPagesEmpty(t *testing.T) {
	m := NewModel(model.PageCatalog, catalog.NewLoader(staticSource{err: errors.New("boom")}))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(model.CatalogLoadFailedMsg{Err: errors.New("boom")})

	if m.state.Mode != model.ModeNormal || !m.state.LoadFailed {
		t.Fatalf("expected normal mode after failure, got %s", m.state.Mode)
	}
	if m.catalog.Grid.Len() != 0 || m.catalog.Grid.Placeholder() != "" {
		t.Errorf("grid must stay unpopulated, got %d cards / %q", m.catalog.Grid.Len(), m.catalog.Grid.Placeholder())
	}

	// Controls stay inert
	m.Update(keyPress("/"))
	if m.state.Mode == model.ModeSearch {
		t.Error("search must not open before the catalog is loaded")
	}
	m.Update(keyPress("g"))
	if m.catalog.Controls().Genre != model.AllGenres {
		t.Errorf("genre must stay all, got %q", m.catalog.Controls().Genre)
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)

	m.Update(keyPress("/"))
	if m.state.Mode != model.ModeSearch {
		t.Fatalf("expected search mode, got %s", m.state.Mode)
	}

	m.Update(keyPress("c"))
	if got := m.catalog.Grid.Len(); got != 3 {
		t.Fatalf("after 'c' expected 3 matches, got %d %v", got, gridTitles(m.catalog.Grid))
	}
	typeText(m, "ase")
	if got := gridTitles(m.catalog.Grid); len(got) != 1 || got[0] != "Case" {
		t.Fatalf("expected [Case], got %v", got)
	}

	m.Update(keyPress("backspace"))
	if m.catalog.State().SearchText != "cas" {
		t.Errorf("expected search text 'cas', got %q", m.catalog.State().SearchText)
	}

	m.Update(keyPress("enter"))
	if m.state.Mode != model.ModeNormal {
		t.Errorf("enter should leave search, got %s", m.state.Mode)
	}
	if m.inputComponents.GetSearchValue() != "cas" {
		t.Errorf("search text should stay applied, got %q", m.inputComponents.GetSearchValue())
	}
}

func TestSearchMatchesNothingShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	m.Update(keyPress("/"))
	typeText(m, "zzz")

	if m.catalog.Grid.Len() != 0 || m.catalog.Grid.Placeholder() != storefront.NoResultsText {
		t.Fatalf("expected placeholder only, got %d cards / %q", m.catalog.Grid.Len(), m.catalog.Grid.Placeholder())
	}
}

func TestSelectorKeysAndReset(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)

	m.Update(keyPress("g")) // Speaker
	if got := gridTitles(m.catalog.Grid); len(got) != 2 || got[0] != "Aero" {
		t.Fatalf("expected speakers, got %v", got)
	}
	m.Update(keyPress("a")) // In stock
	if got := gridTitles(m.catalog.Grid); len(got) != 1 || got[0] != "Aero" {
		t.Fatalf("expected [Aero], got %v", got)
	}
	m.Update(keyPress("A")) // back to all
	if m.catalog.Controls().Availability != model.AvailabilityAll {
		t.Fatalf("expected availability all, got %s", m.catalog.Controls().Availability)
	}
	m.Update(keyPress("a"))
	m.Update(keyPress("/"))
	typeText(m, "aero")
	m.Update(keyPress("esc"))
	m.Update(keyPress("right"))

	m.Update(keyPress("r"))

	c := m.catalog.Controls()
	if c.Search != "" || c.Genre != model.AllGenres || c.Availability != model.AvailabilityAll {
		t.Errorf("controls not reset: %+v", c)
	}
	if m.inputComponents.GetSearchValue() != "" {
		t.Errorf("search field not cleared: %q", m.inputComponents.GetSearchValue())
	}
	if m.catalog.Grid.Len() != 5 {
		t.Errorf("expected full list after reset, got %d", m.catalog.Grid.Len())
	}
	if m.catalogNav.Cursor() != 0 {
		t.Errorf("expected cursor back at first card, got %d", m.catalogNav.Cursor())
	}
}

func TestFilterKeysDoNothingOnLanding(t *testing.T) {
	m := newTestModel(t, model.PageLanding)
	m.Update(keyPress("g"))
	m.Update(keyPress("/"))

	if m.catalog.Controls().Genre != model.AllGenres || m.state.Mode != model.ModeNormal {
		t.Fatalf("landing page must ignore catalog keys, genre=%q mode=%s", m.catalog.Controls().Genre, m.state.Mode)
	}
}

func TestEnterOpensDetailAndCloseKeys(t *testing.T) {
	for _, closeKey := range []string{"esc", "q", "x"} {
		t.Run(closeKey, func(t *testing.T) {
			m := newTestModel(t, model.PageCatalog)
			m.Update(keyPress("right")) // Case

			m.Update(keyPress("enter"))
			if m.state.Mode != model.ModeDetail || !m.catalog.Modal.IsOpen() {
				t.Fatalf("expected open modal, mode %s", m.state.Mode)
			}
			if got := m.catalog.Modal.Detail().Title; got != "Case" {
				t.Fatalf("expected Case in modal, got %q", got)
			}
			if got := m.catalog.Modal.Detail().Description; got != storefront.Placeholder {
				t.Errorf("expected placeholder description, got %q", got)
			}

			_, cmd := m.Update(keyPress(closeKey))
			if cmd != nil {
				t.Errorf("closing the modal must not quit")
			}
			if m.catalog.Modal.IsOpen() || m.state.Mode != model.ModeNormal {
				t.Errorf("expected closed modal, mode %s", m.state.Mode)
			}
		})
	}
}

func TestLandingCursorCrossesSections(t *testing.T) {
	m := newTestModel(t, model.PageLanding)

	m.Update(keyPress("down"))
	if m.landingCursor != sectionFeatured {
		t.Fatalf("expected cursor in New Releases, got %d", m.landingCursor)
	}
	m.Update(keyPress("enter"))
	if got := m.landing.Modal.Detail().Title; got != "Canvas Totebag" {
		t.Fatalf("expected totebag, got %q", got)
	}
	if got := m.landing.Modal.Detail().Price; got != "199 kr" {
		t.Errorf("expected price, got %q", got)
	}
}

func TestPageSwitching(t *testing.T) {
	m := newTestModel(t, model.PageLanding)

	m.Update(keyPress("tab"))
	if m.state.Page != model.PageCatalog {
		t.Fatalf("expected catalog, got %s", m.state.Page)
	}
	m.Update(keyPress("1"))
	if m.state.Page != model.PageLanding {
		t.Fatalf("expected landing, got %s", m.state.Page)
	}
	m.Update(keyPress("2"))
	if m.state.Page != model.PageCatalog {
		t.Fatalf("expected catalog, got %s", m.state.Page)
	}

	m.Update(model.SetPageMsg{Page: model.PageLanding})
	if m.state.Page != model.PageLanding {
		t.Fatalf("expected landing via message, got %s", m.state.Page)
	}
}

func TestHelpModeToggles(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	m.Update(keyPress("?"))
	if m.state.Mode != model.ModeHelp {
		t.Fatalf("expected help mode, got %s", m.state.Mode)
	}
	m.Update(keyPress("?"))
	if m.state.Mode != model.ModeNormal {
		t.Fatalf("expected normal mode, got %s", m.state.Mode)
	}
}

func TestFilterMessages(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)

	m.Update(model.SetGenreMsg{Genre: "Accessory"})
	m.Update(model.SetAvailabilityMsg{Availability: model.AvailabilityOut})
	if got := gridTitles(m.catalog.Grid); len(got) != 1 || got[0] != "Case" {
		t.Fatalf("expected [Case], got %v", got)
	}

	m.Update(model.SetSearchQueryMsg{Query: "nothing"})
	if m.inputComponents.GetSearchValue() != "nothing" {
		t.Errorf("search field should mirror the query")
	}

	m.Update(model.ResetFiltersMsg{})
	if m.catalog.Grid.Len() != 5 || m.inputComponents.GetSearchValue() != "" {
		t.Errorf("reset message should restore everything")
	}
}

func TestSearchMessageBeforeLoadLeavesFieldEmpty(t *testing.T) {
	m := NewModel(model.PageCatalog, catalog.NewLoader(staticSource{}))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(model.SetSearchQueryMsg{Query: "zzz"})
	if got := m.inputComponents.GetSearchValue(); got != "" {
		t.Fatalf("field must mirror the unchanged filter, got %q", got)
	}

	m.Update(model.CatalogLoadedMsg{Products: testProducts()})
	if got := m.inputComponents.GetSearchValue(); got != m.catalog.State().SearchText {
		t.Errorf("field %q out of step with filter %q", got, m.catalog.State().SearchText)
	}
	if m.catalog.Grid.Len() != 5 {
		t.Errorf("expected unfiltered grid, got %d cards", m.catalog.Grid.Len())
	}
}

func TestDetailCannotOpenWhileLoading(t *testing.T) {
	for _, page := range []model.Page{model.PageLanding, model.PageCatalog} {
		m := NewModel(page, catalog.NewLoader(staticSource{}))
		m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

		m.Update(keyPress("enter"))
		click(m, 2, 4)
		if m.state.Mode != model.ModeLoading {
			t.Fatalf("%s: expected loading mode, got %s", page, m.state.Mode)
		}
		if m.activeModal().IsOpen() {
			t.Fatalf("%s: modal must stay closed before the catalog loads", page)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, model.PageLanding)
	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestCopyResultShowsInStatusLine(t *testing.T) {
	m := newTestModel(t, model.PageLanding)

	m.Update(clipboard.CopyMsg{Success: true, Text: "Aero", Method: "osc52"})
	if m.state.UI.StatusMessage != `Copied "Aero"` {
		t.Fatalf("unexpected status %q", m.state.UI.StatusMessage)
	}
	if !strings.Contains(plainView(m), `Copied "Aero"`) {
		t.Error("status line should show the copy result")
	}

	m.Update(clipboard.CopyMsg{Success: false})
	if m.state.UI.StatusMessage != "Nothing copied" {
		t.Fatalf("unexpected status %q", m.state.UI.StatusMessage)
	}
}
