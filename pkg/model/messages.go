package model

// CatalogLoadedMsg delivers the product list once the single load succeeds.
type CatalogLoadedMsg struct {
	Products []Product
}

// CatalogLoadFailedMsg reports the single load attempt failed.
type CatalogLoadFailedMsg struct {
	Err error
}

// SetPageMsg switches the active page
type SetPageMsg struct {
	Page Page
}

// SetSearchQueryMsg sets the catalog search text
type SetSearchQueryMsg struct {
	Query string
}

// SetGenreMsg selects a genre in the catalog genre selector
type SetGenreMsg struct {
	Genre string
}

// SetAvailabilityMsg selects an availability option
type SetAvailabilityMsg struct {
	Availability Availability
}

// ResetFiltersMsg clears all catalog filters
type ResetFiltersMsg struct{}
