package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphos-dev/graphos/pkg/render"
)

// menuAction identifies an entry in the on-canvas action menu.
type menuAction int

const (
	menuAddNode menuAction = iota
	menuDeleteNode
	menuEditLabel
	menuPin
	menuSave
	menuQuit
)

// menuEntries drive both rendering and click dispatch; order is display
// order.
var menuEntries = []struct {
	label  string
	action menuAction
}{
	{"add node", menuAddNode},
	{"delete node", menuDeleteNode},
	{"edit label", menuEditLabel},
	{"pin/unpin", menuPin},
	{"save", menuSave},
	{"quit", menuQuit},
}

// menuState is the mouse-facing action menu: always anchored to the top
// right of the canvas, hover follows the pointer, clicking an entry runs the
// same action as its key binding.
type menuState struct {
	visible bool
	hover   int // entry index under the pointer, -1 for none
}

func newMenuState() menuState {
	return menuState{visible: true, hover: -1}
}

// overlay lays the menu out against the viewport: top-right corner, clamped
// to the grid when the terminal is narrower than the box.
func (ms menuState) overlay(vp render.Viewport) render.MenuOverlay {
	items := make([]string, len(menuEntries))
	for i, e := range menuEntries {
		items[i] = e.label
	}
	ov := render.MenuOverlay{Items: items, Hover: ms.hover, Show: ms.visible}
	ov.Col = vp.Cols - ov.Width() - 1
	if ov.Col < 0 {
		ov.Col = 0
	}
	ov.Row = 0
	return ov
}

func (m Model) menuOverlay() render.MenuOverlay {
	return m.menu.overlay(m.frame.Viewport())
}

// invokeMenu dispatches a clicked entry to the same handlers the key
// bindings use.
func (m Model) invokeMenu(idx int) (tea.Model, tea.Cmd) {
	switch menuEntries[idx].action {
	case menuAddNode:
		return m.addNodeAtCursor(), nil
	case menuDeleteNode:
		return m.deleteSelected(), nil
	case menuEditLabel:
		return m.beginEditing()
	case menuPin:
		return m.togglePin(), nil
	case menuSave:
		return m.save(), nil
	case menuQuit:
		m.logger.Info("session ending", "nodes", m.store.NodeCount(), "edges", m.store.EdgeCount())
		return m, tea.Quit
	}
	return m, nil
}
