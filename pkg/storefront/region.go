// Package storefront holds the view controllers of the showcase: regions of
// product cards, the detail modal and the landing and catalog page
// controllers that keep them in sync with the loaded catalog.
//
// Nothing in here draws to the terminal. The TUI reads regions and the modal
// and renders them; this package owns what is shown and when.
package storefront

import (
	"github.com/darksworm/lumina/pkg/model"
)

// NoResultsText is the placeholder shown when the catalog grid is empty.
const NoResultsText = "No products match your search."

// CardKind selects what a card shows.
type CardKind int

const (
	// CardProduct shows image and title (landing primary section).
	CardProduct CardKind = iota
	// CardFeatured also shows the price (landing New Releases section).
	CardFeatured
	// CardCatalog is a catalog grid card; an empty grid shows a placeholder.
	CardCatalog
)

func (k CardKind) String() string {
	switch k {
	case CardFeatured:
		return "featured"
	case CardCatalog:
		return "catalog"
	default:
		return "product"
	}
}

// Card is one rendered product tile.
type Card struct {
	Kind    CardKind
	Image   string
	Title   string
	Price   string
	Product model.Product
}

// Region is a container of cards, the terminal counterpart of a page section.
type Region struct {
	Name        string
	cards       []Card
	placeholder string
	renders     int
}

// NewRegion creates an empty region
func NewRegion(name string) *Region {
	return &Region{Name: name}
}

// Cards returns the current children. The slice must not be modified.
func (r *Region) Cards() []Card {
	if r == nil {
		return nil
	}
	return r.cards
}

// Placeholder returns the "no results" text, or "" when cards are shown.
func (r *Region) Placeholder() string {
	if r == nil {
		return ""
	}
	return r.placeholder
}

// Len returns the number of cards
func (r *Region) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cards)
}

// Card returns the card at idx, or false when out of range.
func (r *Region) Card(idx int) (Card, bool) {
	if r == nil || idx < 0 || idx >= len(r.cards) {
		return Card{}, false
	}
	return r.cards[idx], true
}

// Renders counts how many times the region was drawn into.
func (r *Region) Renders() int {
	if r == nil {
		return 0
	}
	return r.renders
}

// Render replaces every child of region with one card per item. An empty
// catalog grid gets the single no-results placeholder instead. A nil region
// is absent from the page and is skipped.
func Render(region *Region, items []model.Product, kind CardKind) {
	if region == nil {
		return
	}
	region.renders++
	region.cards = make([]Card, 0, len(items))
	region.placeholder = ""

	if len(items) == 0 && kind == CardCatalog {
		region.placeholder = NoResultsText
		return
	}

	for _, p := range items {
		c := Card{Kind: kind, Image: p.Image, Title: p.Title, Product: p}
		if kind == CardFeatured {
			c.Price = p.Price
		}
		region.cards = append(region.cards, c)
	}
}
