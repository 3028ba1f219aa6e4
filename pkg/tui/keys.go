package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	search    key.Binding
	clearSrch key.Binding
	accept    key.Binding
	toggle    key.Binding
	clear     key.Binding
	preview   key.Binding
	copy      key.Binding
	save      key.Binding
	back      key.Binding
	quit      key.Binding
	abort     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		clearSrch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		preview: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "g", "q"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "finish"),
		),
		abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// listHelp satisfies help.KeyMap for the item list.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.toggle, k.nextTab, k.search, k.preview, k.quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.nextTab, k.prevTab},
		{k.toggle, k.clear, k.search, k.clearSrch},
		{k.preview, k.quit, k.abort},
	}
}

// searchHelp is shown while the search box has focus.
type searchHelp keyMap

func (k searchHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.accept, k.clearSrch, k.abort}
}

func (k searchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// previewHelp is shown on the document preview.
type previewHelp keyMap

func (k previewHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.copy, k.save, k.back}
}

func (k previewHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.abort}}
}
