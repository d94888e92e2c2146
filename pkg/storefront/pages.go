package storefront

import (
	"github.com/darksworm/lumina/pkg/filter"
	"github.com/darksworm/lumina/pkg/model"
)

// Controller owns the loaded catalog and hands it, once, to the pages it was
// built with. Pages never reach for the product list any other way.
type Controller struct {
	products []model.Product
	loaded   bool

	Landing *LandingPage
	Catalog *CatalogPage
}

// NewController creates a controller for the given pages; either may be nil
// when that page is not part of the app.
func NewController(landing *LandingPage, catalog *CatalogPage) *Controller {
	return &Controller{Landing: landing, Catalog: catalog}
}

// Deliver hands the loaded products to every page. Only the first delivery
// counts; it returns false for any later one.
func (c *Controller) Deliver(products []model.Product) bool {
	if c.loaded {
		return false
	}
	c.loaded = true
	c.products = products
	c.Landing.attach(products)
	c.Catalog.attach(products)
	return true
}

// Loaded reports whether the catalog was delivered
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Products returns the loaded catalog. The slice must not be modified.
func (c *Controller) Products() []model.Product {
	return c.products
}

// LandingPage shows the speakers section and the New Releases section.
type LandingPage struct {
	Primary  *Region
	Featured *Region
	Modal    *Modal
	attached bool
}

// NewLandingPage creates a landing page with both sections and a modal
func NewLandingPage() *LandingPage {
	return &LandingPage{
		Primary:  NewRegion("Our speakers"),
		Featured: NewRegion("New Releases"),
		Modal:    NewModal(),
	}
}

func (p *LandingPage) attach(products []model.Product) {
	if p == nil {
		return
	}
	p.attached = true
	Render(p.Primary, filter.Primary(products), CardProduct)
	Render(p.Featured, filter.Featured(products), CardFeatured)
}

// Ready reports whether the sections were populated
func (p *LandingPage) Ready() bool {
	return p != nil && p.attached
}

// Select opens the modal with the card at idx of region.
func (p *LandingPage) Select(region *Region, idx int) bool {
	if !p.Ready() {
		return false
	}
	return openCard(p.Modal, region, idx)
}

// Controls mirrors the values shown by the catalog filter widgets.
type Controls struct {
	Search       string
	Genre        string
	Availability model.Availability
}

// CatalogPage shows the full grid with search, genre, availability and reset
// controls.
type CatalogPage struct {
	Grid  *Region
	Modal *Modal

	all      []model.Product
	genres   []string
	state    model.FilterState
	controls Controls
	attached bool
}

// NewCatalogPage creates a catalog page with default filters
func NewCatalogPage() *CatalogPage {
	return &CatalogPage{
		Grid:     NewRegion("All products"),
		Modal:    NewModal(),
		state:    model.DefaultFilterState(),
		controls: defaultControls(),
	}
}

func defaultControls() Controls {
	return Controls{Genre: model.AllGenres, Availability: model.AvailabilityAll}
}

func (p *CatalogPage) attach(products []model.Product) {
	if p == nil {
		return
	}
	p.all = products
	p.genres = append([]string{model.AllGenres}, filter.Genres(products)...)
	p.attached = true
	Render(p.Grid, products, CardCatalog)
}

// Ready reports whether the controls are wired
func (p *CatalogPage) Ready() bool {
	return p != nil && p.attached
}

// State returns the current filter state
func (p *CatalogPage) State() model.FilterState {
	if p == nil {
		return model.DefaultFilterState()
	}
	return p.state
}

// Controls returns the values the filter widgets display
func (p *CatalogPage) Controls() Controls {
	if p == nil {
		return defaultControls()
	}
	return p.controls
}

// GenreOptions lists the genre selector choices, "all" first.
func (p *CatalogPage) GenreOptions() []string {
	if p == nil {
		return nil
	}
	return p.genres
}

// Total is the number of products in the unfiltered catalog
func (p *CatalogPage) Total() int {
	if p == nil {
		return 0
	}
	return len(p.all)
}

// SetSearch is the search field's input event.
func (p *CatalogPage) SetSearch(text string) {
	if !p.Ready() {
		return
	}
	p.controls.Search = text
	p.state.SearchText = text
	p.apply()
}

// SetGenre is the genre selector's change event.
func (p *CatalogPage) SetGenre(genre string) {
	if !p.Ready() {
		return
	}
	if genre == "" {
		genre = model.AllGenres
	}
	p.controls.Genre = genre
	p.state.Genre = genre
	p.apply()
}

// SetAvailability is the availability selector's change event.
func (p *CatalogPage) SetAvailability(a model.Availability) {
	if !p.Ready() {
		return
	}
	p.controls.Availability = a
	p.state.Availability = a
	p.apply()
}

// CycleGenre moves the genre selector by delta options, wrapping around.
func (p *CatalogPage) CycleGenre(delta int) {
	if !p.Ready() || len(p.genres) == 0 {
		return
	}
	cur := 0
	for i, g := range p.genres {
		if g == p.controls.Genre {
			cur = i
			break
		}
	}
	n := len(p.genres)
	p.SetGenre(p.genres[((cur+delta)%n+n)%n])
}

// CycleAvailability moves the availability selector forward or back.
func (p *CatalogPage) CycleAvailability(delta int) {
	if !p.Ready() {
		return
	}
	next := p.controls.Availability
	if delta >= 0 {
		next = next.Next()
	} else {
		next = next.Prev()
	}
	p.SetAvailability(next)
}

// Reset clears the filter state and the widgets and shows every product.
func (p *CatalogPage) Reset() {
	if !p.Ready() {
		return
	}
	p.state = model.DefaultFilterState()
	p.controls = defaultControls()
	Render(p.Grid, p.all, CardCatalog)
}

// Select opens the modal with the grid card at idx.
func (p *CatalogPage) Select(idx int) bool {
	if !p.Ready() {
		return false
	}
	return openCard(p.Modal, p.Grid, idx)
}

func (p *CatalogPage) apply() {
	Render(p.Grid, filter.ComputeVisible(p.all, p.state), CardCatalog)
}

func openCard(modal *Modal, region *Region, idx int) bool {
	card, ok := region.Card(idx)
	if !ok {
		return false
	}
	modal.Open(card.Product)
	return modal.IsOpen()
}
