package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares every binding the session understands. Help output is
// derived from it via the bubbles help component.
type keyMap struct {
	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding

	AddNode    key.Binding
	DeleteNode key.Binding
	DeleteEdge key.Binding
	EditLabel  key.Binding
	Pin        key.Binding
	Deselect   key.Binding

	Save key.Binding
	Menu key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		AddNode: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add node at cursor"),
		),
		DeleteNode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected node"),
		),
		DeleteEdge: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete edge to cursor"),
		),
		EditLabel: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit label"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle menu"),
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

// ShortHelp is the single-line hint shown in the status area.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddNode, k.EditLabel, k.Save, k.Help, k.Quit}
}

// FullHelp is the expanded listing toggled with '?'.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.ZoomIn, k.ZoomOut, k.Pin, k.Deselect},
		{k.AddNode, k.DeleteNode, k.DeleteEdge, k.EditLabel},
		{k.Save, k.Menu, k.Help, k.Quit},
	}
}
