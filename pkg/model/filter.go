package model

// AllGenres is the genre sentinel meaning "no genre constraint".
const AllGenres = "all"

// Availability is the availability selector value
type Availability string

const (
	AvailabilityAll Availability = "all"
	AvailabilityIn  Availability = "in"
	AvailabilityOut Availability = "out"
)

// Availabilities lists the selector options in display order.
var Availabilities = []Availability{AvailabilityAll, AvailabilityIn, AvailabilityOut}

// Label returns the text shown in the availability selector.
func (a Availability) Label() string {
	switch a {
	case AvailabilityIn:
		return InStock
	case AvailabilityOut:
		return OutOfStock
	default:
		return "All"
	}
}

// Next returns the following selector option, wrapping around.
func (a Availability) Next() Availability {
	return a.step(1)
}

// Prev returns the previous selector option, wrapping around.
func (a Availability) Prev() Availability {
	return a.step(-1)
}

func (a Availability) step(d int) Availability {
	n := len(Availabilities)
	for i, v := range Availabilities {
		if v == a {
			return Availabilities[((i+d)%n+n)%n]
		}
	}
	return AvailabilityAll
}

// FilterState is the catalog page's current filter input.
type FilterState struct {
	SearchText   string       `json:"searchText"`
	Genre        string       `json:"genre"`
	Availability Availability `json:"availability"`
}

// DefaultFilterState returns the unconstrained filter.
func DefaultFilterState() FilterState {
	return FilterState{
		SearchText:   "",
		Genre:        AllGenres,
		Availability: AvailabilityAll,
	}
}

// IsDefault reports whether the state imposes no constraint.
func (s FilterState) IsDefault() bool {
	return s == DefaultFilterState()
}
