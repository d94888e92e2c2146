// Package filter computes the visible subsets of the product catalog.
//
// Every function here is pure: the input slice is never modified and the
// result is always a new slice in source order.
package filter

import (
	"strings"

	"github.com/darksworm/lumina/pkg/model"
)

// ComputeVisible returns the products matching every active criterion of s.
func ComputeVisible(all []model.Product, s model.FilterState) []model.Product {
	query := strings.ToLower(strings.TrimSpace(s.SearchText))
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if !matchesGenre(p, s.Genre) {
			continue
		}
		if !matchesAvailability(p, s.Availability) {
			continue
		}
		if query != "" && !strings.Contains(haystack(p), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesGenre(p model.Product, genre string) bool {
	return genre == model.AllGenres || p.Genre == genre
}

func matchesAvailability(p model.Product, a model.Availability) bool {
	switch a {
	case model.AvailabilityIn:
		return p.Available == model.InStock
	case model.AvailabilityOut:
		return p.Available == model.OutOfStock
	default:
		return true
	}
}

func haystack(p model.Product) string {
	return strings.ToLower(p.Title + " " + p.Description)
}

// Primary is the landing page's main section: every speaker.
func Primary(all []model.Product) []model.Product {
	return selectWhere(all, func(p model.Product) bool {
		return p.Genre == "Speaker"
	})
}

// Featured is the hand-picked "New Releases" section: the tote bag and the
// Moonlight White cover. These rules are fixed curation, not a filter.
func Featured(all []model.Product) []model.Product {
	return selectWhere(all, func(p model.Product) bool {
		return (p.Genre == "Accessory" && strings.Contains(p.Title, "Totebag")) ||
			(p.Genre == "Speaker Cover" && strings.Contains(p.Title, "Moonlight White"))
	})
}

// Genres returns the distinct genres in first-seen order. Empty genres are
// skipped since the selector cannot offer them.
func Genres(all []model.Product) []string {
	seen := make(map[string]bool, len(all))
	var out []string
	for _, p := range all {
		if p.Genre == "" || seen[p.Genre] {
			continue
		}
		seen[p.Genre] = true
		out = append(out, p.Genre)
	}
	return out
}

func selectWhere(all []model.Product, keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
