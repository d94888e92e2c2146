package main

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/mattn/go-runewidth"
)

func plainView(m *Model) string {
	return stripANSI(m.View().Content)
}

func TestViewBeforeResize(t *testing.T) {
	m := NewModel(model.PageLanding, catalog.NewLoader(staticSource{}))
	if got := plainView(m); !strings.Contains(got, "Starting") {
		t.Fatalf("expected starting text, got %q", got)
	}
}

func TestViewLoading(t *testing.T) {
	m := NewModel(model.PageLanding, catalog.NewLoader(staticSource{}))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := plainView(m)
	if !strings.Contains(out, "Loading catalog from test.json") {
		t.Fatalf("expected loading line, got:\n%s", out)
	}
}

func TestViewLanding(t *testing.T) {
	m := newTestModel(t, model.PageLanding)
	out := plainView(m)

	for _, want := range []string{"Our speakers", "New Releases", "Aero", "Boom", "Canvas Totebag", "199 kr", "1 Home", "2 Catalog"} {
		if !strings.Contains(out, want) {
			t.Errorf("landing view missing %q", want)
		}
	}
	// Primary cards carry no price
	if strings.Contains(out, "999 kr") {
		t.Error("speaker cards must not show a price")
	}
	if strings.Contains(out, "Case") {
		t.Error("landing must not show non-curated accessories")
	}
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	lines := strings.Split(plainView(m), "\n")

	if len(lines) != 40 {
		t.Fatalf("expected 40 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != 120 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
}

func TestViewCatalogControlsAndPlaceholder(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	out := plainView(m)
	for _, want := range []string{"Search", "Genre ‹ all ›", "Availability ‹ All ›", "[ Reset ]", "Showing 5 of 5 products"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog view missing %q", want)
		}
	}

	m.Update(model.SetSearchQueryMsg{Query: "no such thing"})
	out = plainView(m)
	if !strings.Contains(out, storefront.NoResultsText) {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
	for _, z := range m.hits {
		if z.kind == hitCard {
			t.Fatal("placeholder view must not have card zones")
		}
	}
}

func TestViewDetailModal(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	m.Update(keyPress("right"))
	m.Update(keyPress("enter"))

	out := plainView(m)
	for _, want := range []string{"Case", "[x]", "img/case.png", "Out of stock", storefront.Placeholder} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

func TestViewHelpOverlay(t *testing.T) {
	m := newTestModel(t, model.PageCatalog)
	m.Update(keyPress("?"))
	if out := plainView(m); !strings.Contains(out, "Keyboard shortcuts") {
		t.Fatalf("expected help overlay, got:\n%s", out)
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		cols int
		want int
	}{
		{0, 1},
		{cardOuterWidth, 1},
		{2*cardOuterWidth + cardGap, 2},
		{120, 4},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.cols); got != tt.want {
			t.Errorf("gridColumns(%d) = %d, want %d", tt.cols, got, tt.want)
		}
	}
}

func TestRenderCardIsFixedSize(t *testing.T) {
	cards := []storefront.Card{
		{Kind: storefront.CardProduct, Title: "A very long product title that will not fit", Image: "img/x.png"},
		{Kind: storefront.CardFeatured, Title: "Tote", Price: "199 kr"},
		{Kind: storefront.CardCatalog, Title: "日本語のタイトル", Image: "img/jp.png"},
	}
	for _, c := range cards {
		for _, selected := range []bool{false, true} {
			out := stripANSI(renderCard(c, selected))
			lines := strings.Split(out, "\n")
			if len(lines) != cardHeight {
				t.Fatalf("card %q has %d lines", c.Title, len(lines))
			}
			for _, l := range lines {
				if w := runewidth.StringWidth(l); w != cardOuterWidth {
					t.Fatalf("card %q line %q has width %d", c.Title, l, w)
				}
			}
		}
	}
}

func TestOverlayKeepsLineWidths(t *testing.T) {
	base := strings.Repeat("x", 20) + "\n" + strings.Repeat("y", 20) + "\n" + strings.Repeat("z", 20)
	out := stripANSI(overlay(base, "ab\ncd", 5, 1))
	lines := strings.Split(out, "\n")
	if lines[1] != "yyyyyabyyyyyyyyyyyyy" || lines[2] != "zzzzzcdzzzzzzzzzzzzz" {
		t.Fatalf("unexpected overlay:\n%s", out)
	}
	if lines[0] != strings.Repeat("x", 20) {
		t.Fatalf("rows outside the box keep their text, got %q", lines[0])
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("Moonlight White Cover", 10); runewidth.StringWidth(got) > 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("unexpected truncation %q", got)
	}
	if got := truncateCell("Aero", 10); got != "Aero" {
		t.Errorf("short text must be untouched, got %q", got)
	}
	if got := truncateCell("Aero", 0); got != "" {
		t.Errorf("zero width gives empty string, got %q", got)
	}
}
