package model

// Page identifies which storefront page is active
type Page string

const (
	PageLanding Page = "landing"
	PageCatalog Page = "catalog"
)

// ParsePage returns the page for a flag/config value and whether it was known.
func ParsePage(s string) (Page, bool) {
	switch Page(s) {
	case PageLanding, PageCatalog:
		return Page(s), true
	}
	return PageLanding, false
}

// Mode represents the current application mode
type Mode string

const (
	ModeLoading Mode = "loading"
	ModeNormal  Mode = "normal"
	ModeSearch  Mode = "search"
	ModeDetail  Mode = "detail"
	ModeHelp    Mode = "help"
)

// Stock strings compared by exact equality against Product.Available.
const (
	InStock    = "In stock"
	OutOfStock = "Out of stock"
)

// Product is one catalog record. Optional text fields are empty when the
// source omitted them.
type Product struct {
	Title       string `json:"title" yaml:"title"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Genre       string `json:"genre" yaml:"genre"`
	Price       string `json:"Price,omitempty" yaml:"Price,omitempty"`
	Weight      string `json:"Weight,omitempty" yaml:"Weight,omitempty"`
	Volume      string `json:"Volume,omitempty" yaml:"Volume,omitempty"`
	Playtime    string `json:"playtime,omitempty" yaml:"playtime,omitempty"`
	Available   string `json:"available,omitempty" yaml:"available,omitempty"`
}

// TerminalState represents terminal dimensions
type TerminalState struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}
