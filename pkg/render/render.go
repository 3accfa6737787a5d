package render

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/graphos-dev/graphos/pkg/graph"
)

// Overlay carries transient interaction geometry drawn on top of the graph:
// the cursor glyph and the rubber band while an edge is being drawn.
type Overlay struct {
	// CursorCol/CursorRow position the cursor glyph; ShowCursor gates it.
	CursorCol, CursorRow int
	ShowCursor           bool
	// CursorGrab switches the cursor glyph while dragging.
	CursorGrab bool

	// RubberFrom is the anchor node of an in-progress edge; the band is
	// drawn from it to the cursor cell when RubberBand is set.
	RubberFrom graph.NodeID
	RubberBand bool

	// Menu is the on-canvas action menu, drawn last so it occludes the
	// graph underneath.
	Menu MenuOverlay
}

// MenuOverlay describes a bordered option list anchored at (Col, Row) in
// cell space. Hover is the index of the entry under the pointer, -1 for
// none. The zero value draws nothing.
type MenuOverlay struct {
	Col, Row int
	Items    []string
	Hover    int
	Show     bool
}

// Width returns the menu's total width in cells, borders included.
func (m MenuOverlay) Width() int {
	inner := 0
	for _, it := range m.Items {
		if w := runewidth.StringWidth(it); w > inner {
			inner = w
		}
	}
	return inner + 4 // border + one cell of padding each side
}

// Height returns the menu's total height in cells, borders included.
func (m MenuOverlay) Height() int { return len(m.Items) + 2 }

// HitTest maps a cell to the index of the menu entry it falls on. The
// second result is false outside the menu box; border cells are inside the
// box but hit no entry (index -1).
func (m MenuOverlay) HitTest(col, row int) (int, bool) {
	if !m.Show || col < m.Col || col >= m.Col+m.Width() || row < m.Row || row >= m.Row+m.Height() {
		return -1, false
	}
	idx := row - m.Row - 1
	if idx < 0 || idx >= len(m.Items) || col == m.Col || col == m.Col+m.Width()-1 {
		return -1, true
	}
	return idx, true
}

// Frame owns the double-buffered rasterization of one terminal canvas.
// Draw rasterizes into a fresh buffer and diffs it against the previous
// frame; two draws of an unchanged model and viewport yield an empty diff.
type Frame struct {
	vp  Viewport
	cur *Buffer // previous Draw result, nil after creation or resize
}

// NewFrame returns a frame for the viewport's grid size. The first Draw
// reports every cell (there is no previous frame to diff against).
func NewFrame(vp Viewport) *Frame {
	return &Frame{vp: vp}
}

// Viewport returns the current viewport.
func (f *Frame) Viewport() Viewport { return f.vp }

// SetViewport replaces the viewport, e.g. after pan or zoom. The previous
// buffer is kept: the next Draw diffs as usual, and only cells that actually
// change are reported.
func (f *Frame) SetViewport(vp Viewport) { f.vp = vp }

// Resize installs a viewport for the new grid size and drops the previous
// buffer, forcing the next Draw to report a full redraw.
func (f *Frame) Resize(rows, cols int) {
	f.vp = f.vp.Resize(rows, cols)
	f.cur = nil
}

// Buffer returns the most recently drawn buffer, or nil before the first
// Draw. Exposed for the view layer, which styles and joins the cells.
func (f *Frame) Buffer() *Buffer { return f.cur }

// Draw rasterizes the graph (plus overlay) and returns the cells that
// changed since the previous Draw.
func (f *Frame) Draw(s *graph.Store, ov Overlay) []CellUpdate {
	b := NewBuffer(f.vp.Rows, f.vp.Cols)

	f.drawEdges(b, s)
	f.drawRubberBand(b, s, ov)
	f.drawNodes(b, s)
	f.drawCursor(b, ov)
	f.drawMenu(b, ov.Menu)

	diff := b.Diff(f.cur)
	f.cur = b
	return diff
}

func (f *Frame) drawEdges(b *Buffer, s *graph.Store) {
	for _, e := range s.Edges() {
		from, okF := s.Node(e.From)
		to, okT := s.Node(e.To)
		if !okF || !okT {
			continue
		}
		x0, y0, v0 := f.vp.Project(from.X, from.Y)
		x1, y1, v1 := f.vp.Project(to.X, to.Y)
		if !v0 && !v1 && !segmentMayCross(f.vp, x0, y0, x1, y1) {
			continue
		}
		style := StyleEdge
		if e.Highlighted {
			style = StyleRubberBand
		}
		drawEdge(b, x0, y0, x1, y1, style)
	}
}

func (f *Frame) drawRubberBand(b *Buffer, s *graph.Store, ov Overlay) {
	if !ov.RubberBand {
		return
	}
	from, ok := s.Node(ov.RubberFrom)
	if !ok {
		return
	}
	x0, y0, _ := f.vp.Project(from.X, from.Y)
	drawEdge(b, x0, y0, ov.CursorCol, ov.CursorRow, StyleRubberBand)
}

// drawNodes writes labels in descending z-order so lower-priority labels
// elide against already-placed higher-priority ones rather than overwriting
// them.
func (f *Frame) drawNodes(b *Buffer, s *graph.Store) {
	nodes := s.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodeStyle(nodes[i]).zOrder() > nodeStyle(nodes[j]).zOrder()
	})
	for _, n := range nodes {
		col, row, visible := f.vp.Project(n.X, n.Y)
		if !visible {
			continue
		}
		drawLabel(b, col, row, n.Label, nodeStyle(n))
	}
}

func (f *Frame) drawCursor(b *Buffer, ov Overlay) {
	if !ov.ShowCursor {
		return
	}
	glyph := '┼'
	if ov.CursorGrab {
		glyph = '╬'
	}
	b.Set(ov.CursorCol, ov.CursorRow, glyph, StyleCursor)
}

// drawMenu rasterizes the action menu box over whatever is underneath.
// Entry rows are padded to the full inner width so the hovered entry reads
// as one solid bar.
func (f *Frame) drawMenu(b *Buffer, m MenuOverlay) {
	if !m.Show || len(m.Items) == 0 {
		return
	}
	width := m.Width()

	b.Set(m.Col, m.Row, glyphUL, StyleMenu)
	b.Set(m.Col+width-1, m.Row, glyphUR, StyleMenu)
	b.Set(m.Col, m.Row+m.Height()-1, glyphLL, StyleMenu)
	b.Set(m.Col+width-1, m.Row+m.Height()-1, glyphLR, StyleMenu)
	for x := m.Col + 1; x < m.Col+width-1; x++ {
		b.Set(x, m.Row, glyphH, StyleMenu)
		b.Set(x, m.Row+m.Height()-1, glyphH, StyleMenu)
	}

	for i, item := range m.Items {
		row := m.Row + 1 + i
		style := StyleMenu
		if i == m.Hover {
			style = StyleMenuHover
		}
		b.Set(m.Col, row, glyphV, StyleMenu)
		b.Set(m.Col+width-1, row, glyphV, StyleMenu)

		x := m.Col + 1
		b.Set(x, row, ' ', style)
		x++
		for _, r := range item {
			b.Set(x, row, r, style)
			for j := 1; j < runewidth.RuneWidth(r); j++ {
				b.Set(x+j, row, ' ', style)
			}
			x += runewidth.RuneWidth(r)
		}
		for ; x < m.Col+width-1; x++ {
			b.Set(x, row, ' ', style)
		}
	}
}

func nodeStyle(n *graph.Node) CellStyle {
	switch {
	case n.Selected:
		return StyleNodeSelected
	case n.Highlighted:
		return StyleNodeHighlighted
	default:
		return StyleNode
	}
}

// segmentMayCross is a cheap reject for edges with both endpoints off-grid:
// only segments whose bounding box intersects the grid are rasterized.
func segmentMayCross(vp Viewport, x0, y0, x1, y1 int) bool {
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)
	return maxX >= 0 && minX < vp.Cols && maxY >= 0 && minY < vp.Rows
}

// Render joins the buffer into plain lines (no styling). The TUI applies
// lipgloss styles per cell class; tests and logs use this raw form.
func Render(b *Buffer) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.Cols(); col++ {
			sb.WriteRune(b.Get(col, row).Rune)
		}
	}
	return sb.String()
}
