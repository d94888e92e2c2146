package main

import (
	"strconv"

	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/darksworm/lumina/pkg/tui/listnav"
)

// renderLanding draws the speakers section followed by New Releases.
func (m *Model) renderLanding(s *screen) {
	sections := []struct {
		id     landingSection
		region *storefront.Region
		nav    *listnav.GridNavigator
	}{
		{sectionPrimary, m.landing.Primary, m.primaryNav},
		{sectionFeatured, m.landing.Featured, m.featuredNav},
	}

	for _, sec := range sections {
		heading := headerStyle.Render(sec.region.Name)
		if m.landing.Ready() {
			heading += statusStyle.Render(" (" + strconv.Itoa(sec.region.Len()) + ")")
			heading += scrollHint(sec.nav, sec.region.Len())
		}
		s.add(heading)
		renderGrid(s, sec.region, sec.nav, m.landingCursor == sec.id, gridTarget{page: model.PageLanding, section: sec.id})
		s.add("")
	}
}

// landingFocus returns the region and navigator that hold the landing cursor.
func (m *Model) landingFocus() (*storefront.Region, *listnav.GridNavigator) {
	if m.landingCursor == sectionFeatured {
		return m.landing.Featured, m.featuredNav
	}
	return m.landing.Primary, m.primaryNav
}
