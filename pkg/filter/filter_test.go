package filter

import (
	"reflect"
	"testing"

	"github.com/darksworm/lumina/pkg/model"
)

func titles(ps []model.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func sampleCatalog() []model.Product {
	return []model.Product{
		{Title: "Lumina One", Genre: "Speaker", Available: model.InStock, Description: "Compact speaker with deep bass"},
		{Title: "Canvas Totebag", Genre: "Accessory", Available: model.InStock},
		{Title: "Cover Moonlight White", Genre: "Speaker Cover", Available: model.OutOfStock},
		{Title: "Lumina Max", Genre: "Speaker", Available: model.OutOfStock, Description: "Room-filling SOUND"},
		{Title: "Cover Midnight Black", Genre: "Speaker Cover", Available: model.InStock},
		{Title: "Totebag Mini", Genre: "Speaker Cover", Available: model.InStock},
	}
}

func TestComputeVisibleScenario(t *testing.T) {
	catalog := []model.Product{
		{Title: "Aero", Genre: "Speaker", Available: "In stock"},
		{Title: "Case", Genre: "Accessory", Available: "Out of stock"},
	}

	tests := []struct {
		name  string
		state model.FilterState
		want  []string
	}{
		{"genre speaker", model.FilterState{Genre: "Speaker", Availability: model.AvailabilityAll}, []string{"Aero"}},
		{"out of stock", model.FilterState{Genre: model.AllGenres, Availability: model.AvailabilityOut}, []string{"Case"}},
		{"case insensitive search", model.FilterState{Genre: model.AllGenres, Availability: model.AvailabilityAll, SearchText: "case"}, []string{"Case"}},
		{"search upper case", model.FilterState{Genre: model.AllGenres, Availability: model.AvailabilityAll, SearchText: "AERO"}, []string{"Aero"}},
		{"in stock", model.FilterState{Genre: model.AllGenres, Availability: model.AvailabilityIn}, []string{"Aero"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(ComputeVisible(catalog, tt.state))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeVisibleIdentity(t *testing.T) {
	all := sampleCatalog()
	got := ComputeVisible(all, model.DefaultFilterState())
	if !reflect.DeepEqual(got, all) {
		t.Fatalf("default state should return the full list in order\n got %v\nwant %v", titles(got), titles(all))
	}
	if len(got) > 0 && &got[0] == &all[0] {
		t.Error("result must be a new slice, not the source backing array")
	}
}

func TestComputeVisibleGenreExclusionDominates(t *testing.T) {
	all := sampleCatalog()
	searches := []string{"", "lumina", "cover", "totebag", "zzz"}
	avail := []model.Availability{model.AvailabilityAll, model.AvailabilityIn, model.AvailabilityOut}

	for _, q := range searches {
		for _, a := range avail {
			got := ComputeVisible(all, model.FilterState{SearchText: q, Genre: "Speaker", Availability: a})
			for _, p := range got {
				if p.Genre != "Speaker" {
					t.Errorf("search=%q avail=%q: %q leaked through genre filter", q, a, p.Title)
				}
			}
		}
	}
}

func TestComputeVisibleSearchesDescription(t *testing.T) {
	all := sampleCatalog()
	got := titles(ComputeVisible(all, model.FilterState{Genre: model.AllGenres, Availability: model.AvailabilityAll, SearchText: "  sound "}))
	if !reflect.DeepEqual(got, []string{"Lumina Max"}) {
		t.Errorf("got %v", got)
	}
}

func TestComputeVisibleDoesNotMutateSource(t *testing.T) {
	all := sampleCatalog()
	before := append([]model.Product(nil), all...)
	_ = ComputeVisible(all, model.FilterState{Genre: "Speaker Cover", Availability: model.AvailabilityIn, SearchText: "cover"})
	if !reflect.DeepEqual(all, before) {
		t.Error("source list was modified")
	}
}

func TestComputeVisibleEmptyResult(t *testing.T) {
	got := ComputeVisible(sampleCatalog(), model.FilterState{Genre: "Vinyl", Availability: model.AvailabilityAll})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestComputeVisibleEmptyGenreIsNotAll(t *testing.T) {
	all := append(sampleCatalog(), model.Product{Title: "Untagged", Available: model.InStock})
	got := titles(ComputeVisible(all, model.FilterState{Genre: "", Availability: model.AvailabilityAll}))
	if len(got) != 1 || got[0] != "Untagged" {
		t.Errorf("empty genre matches only products without a genre, got %v", got)
	}
}

func TestPrimary(t *testing.T) {
	got := titles(Primary(sampleCatalog()))
	want := []string{"Lumina One", "Lumina Max"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFeatured(t *testing.T) {
	got := titles(Featured(sampleCatalog()))
	// "Totebag Mini" is a Speaker Cover, so the Accessory rule does not pick it.
	want := []string{"Canvas Totebag", "Cover Moonlight White"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFeaturedIsCaseSensitive(t *testing.T) {
	got := Featured([]model.Product{{Title: "canvas totebag", Genre: "Accessory"}})
	if len(got) != 0 {
		t.Errorf("expected literal substring match, got %v", titles(got))
	}
}

func TestGenres(t *testing.T) {
	all := append(sampleCatalog(), model.Product{Title: "Unknown"})
	got := Genres(all)
	want := []string{"Speaker", "Accessory", "Speaker Cover"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
