package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryCell returns a cell inside the given menu entry's row.
func entryCell(m Model, idx int) (int, int) {
	ov := m.menuOverlay()
	return ov.Col + 2, ov.Row + 1 + idx
}

func TestMenuClickAddsNode(t *testing.T) {
	m := newTestModel(t)
	before := m.store.NodeCount()

	col, row := entryCell(m, int(menuAddNode))
	m = press(m, col, row)

	assert.Equal(t, before+1, m.store.NodeCount())
	assert.Equal(t, ModeNodeSelected, m.Mode())
}

func TestMenuHoverFollowsPointer(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, -1, m.menu.hover)

	col, row := entryCell(m, int(menuSave))
	m = motion(m, col, row)
	assert.Equal(t, int(menuSave), m.menu.hover)

	m = motion(m, 0, m.frame.Viewport().Rows-1)
	assert.Equal(t, -1, m.menu.hover)
}

func TestMenuBorderClickDoesNothing(t *testing.T) {
	m := newTestModel(t)
	ov := m.menuOverlay()

	// The top border is inside the menu box but hits no entry; the click
	// must not fall through to the canvas and start a pan.
	m = press(m, ov.Col+2, ov.Row)
	assert.Equal(t, ModeIdle, m.Mode())
	assert.False(t, m.mouseDown)
}

func TestMenuToggleKey(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.menu.visible)

	m = keyRune(m, 'm')
	assert.False(t, m.menu.visible)
	assert.Equal(t, -1, m.menu.hover)
	assert.False(t, m.overlay().Menu.Show)

	// A click where the menu used to be now reaches the canvas.
	ov := m.menuOverlay()
	m = press(m, ov.Col+2, ov.Row+1)
	assert.Equal(t, ModePanning, m.Mode())

	m = release(m, ov.Col+2, ov.Row+1)
	m = keyRune(m, 'm')
	assert.True(t, m.menu.visible)
}
