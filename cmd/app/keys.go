package main

import "charm.land/bubbles/v2/key"

// keyMap holds every binding of the storefront. It implements help.KeyMap.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Open         key.Binding
	NextPage     key.Binding
	Landing      key.Binding
	Catalog      key.Binding
	Search       key.Binding
	Genre        key.Binding
	GenreBack    key.Binding
	Availability key.Binding
	AvailBack    key.Binding
	Reset        key.Binding
	Close        key.Binding
	Copy         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Top:          key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Bottom:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		NextPage:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch page")),
		Landing:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Catalog:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "catalog")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Genre:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "genre")),
		GenreBack:    key.NewBinding(key.WithKeys("G")),
		Availability: key.NewBinding(key.WithKeys("a"), key.WithHelp("a/A", "availability")),
		AvailBack:    key.NewBinding(key.WithKeys("A")),
		Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		Close:        key.NewBinding(key.WithKeys("esc", "q", "x"), key.WithHelp("esc", "close")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextPage, k.Search, k.Genre, k.Availability, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.Open, k.NextPage, k.Landing, k.Catalog},
		{k.Search, k.Genre, k.Availability, k.Reset},
		{k.Close, k.Copy, k.Help, k.Quit},
	}
}

// landingHelp is the footer on the landing page, where filters do nothing.
func (k keyMap) landingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextPage, k.Help, k.Quit}
}

// detailHelp is the footer while the modal is open.
func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Close, k.Copy}
}
