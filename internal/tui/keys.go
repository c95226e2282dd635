package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap defines key bindings for the page.
type browseKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Close  key.Binding
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Open, k.Down, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Open},
		{k.Up, k.Down},
		{k.Close, k.Escape, k.Help, k.Quit},
	}
}

// modalKeyMap is the help shown while a step popup is open.
type modalKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Close  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close, k.Escape, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev step"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next step"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "details"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k browseKeyMap) modal() modalKeyMap {
	return modalKeyMap{
		Prev:   k.Prev,
		Next:   k.Next,
		Close:  k.Close,
		Escape: k.Escape,
		Quit:   k.Quit,
	}
}
