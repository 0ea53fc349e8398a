package tui

import "github.com/charmbracelet/bubbles/key"

// BoardKeys are active while the task board is focused.
type BoardKeys struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Status   key.Binding
	Archived key.Binding
	Send     key.Binding
	Delete   key.Binding
	History  key.Binding
	SortNum  key.Binding
	SortTit  key.Binding
	SortCre  key.Binding
	SortPro  key.Binding
	Quit     key.Binding
}

var boardKeys = BoardKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Status: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle status filter"),
	),
	Archived: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle archived"),
	),
	Send: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "send to tablet"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	History: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "history"),
	),
	SortNum: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "sort by number"),
	),
	SortTit: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sort by title"),
	),
	SortCre: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort by created"),
	),
	SortPro: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "sort by progress"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
