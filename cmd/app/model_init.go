package main

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/storefront"
	"github.com/darksworm/lumina/pkg/tui/listnav"
)

// NewModel creates the model for the given start page. Both pages are built
// up front; the loader's products reach them through the controller.
func NewModel(page model.Page, loader *catalog.Loader) *Model {
	landing := storefront.NewLandingPage()
	catalogPage := storefront.NewCatalogPage()

	h := help.New()
	h.ShortSeparator = " • "

	return &Model{
		state:           model.NewAppState(page, loader.Source().Location()),
		loader:          loader,
		controller:      storefront.NewController(landing, catalogPage),
		landing:         landing,
		catalog:         catalogPage,
		inputComponents: NewInputComponents(),
		keys:            defaultKeyMap(),
		help:            h,
		spinner:         newSpinner(),
		primaryNav:      listnav.New(),
		featuredNav:     listnav.New(),
		catalogNav:      listnav.New(),
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(magentaBright)
	return s
}

// Init implements tea.Model.Init
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	// The loader hands out its command once; a second Init never reloads.
	if load := m.loader.Cmd(context.Background()); load != nil {
		cmds = append(cmds, load)
	}
	return tea.Batch(cmds...)
}

// updateLayout pushes the grid geometry for the current terminal size into
// the card navigators.
func (m *Model) updateLayout() {
	cols := gridColumns(m.state.Terminal.Cols)
	landingRows, catalogRows := m.viewportRows()

	for _, nav := range []*listnav.GridNavigator{m.primaryNav, m.featuredNav} {
		nav.SetColumns(cols)
		nav.SetViewportRows(landingRows)
	}
	m.catalogNav.SetColumns(cols)
	m.catalogNav.SetViewportRows(catalogRows)
}

// viewportRows returns how many card rows each landing section and the
// catalog grid can show.
func (m *Model) viewportRows() (int, int) {
	body := max(0, m.state.Terminal.Rows-headerLines-footerLines)
	landing := max(1, (body-2*sectionChromeLines)/2/cardHeight)
	catalog := max(1, (body-catalogChromeLines)/cardHeight)
	return landing, catalog
}
