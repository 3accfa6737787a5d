package render

// CellStyle classifies what a cell is showing. Styling (colors) is applied
// by the TUI layer; the buffer only records the class so cells stay cheaply
// comparable for diffing.
type CellStyle uint8

const (
	StyleBlank CellStyle = iota
	StyleEdge
	StyleNode
	StyleNodeHighlighted
	StyleNodeSelected
	StyleCursor
	StyleRubberBand
	StyleMenu
	StyleMenuHover
)

// zOrder ranks node styles for overlap resolution: selected beats
// highlighted beats default. Non-node styles rank below all nodes.
func (s CellStyle) zOrder() int {
	switch s {
	case StyleNodeSelected:
		return 3
	case StyleNodeHighlighted:
		return 2
	case StyleNode:
		return 1
	default:
		return 0
	}
}

// isNode reports whether the style belongs to a node glyph region (label
// cells included), which label elision must not overwrite.
func (s CellStyle) isNode() bool { return s.zOrder() > 0 }

// Cell is one character cell of a frame.
type Cell struct {
	Rune  rune
	Style CellStyle
}

var blank = Cell{Rune: ' ', Style: StyleBlank}

// CellUpdate is one changed cell in a frame diff.
type CellUpdate struct {
	Col, Row int
	Cell     Cell
}

// Buffer is a rows×cols grid of cells. The zero value is not usable - use
// [NewBuffer].
type Buffer struct {
	rows, cols int
	cells      []Cell
}

// NewBuffer returns a buffer of the given size filled with blanks.
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range b.cells {
		b.cells[i] = blank
	}
	return b
}

// Rows returns the grid height.
func (b *Buffer) Rows() int { return b.rows }

// Cols returns the grid width.
func (b *Buffer) Cols() int { return b.cols }

// Set writes a cell, silently dropping out-of-grid coordinates so callers
// can rasterize partially visible geometry without pre-clipping.
func (b *Buffer) Set(col, row int, r rune, style CellStyle) {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return
	}
	b.cells[row*b.cols+col] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (col, row), or a blank for out-of-grid coordinates.
func (b *Buffer) Get(col, row int) Cell {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return blank
	}
	return b.cells[row*b.cols+col]
}

// Diff returns the cells in b that differ from prev, in row-major order.
// A nil prev (or a size mismatch, as after a resize) invalidates the
// comparison and every cell is reported, forcing a full redraw.
func (b *Buffer) Diff(prev *Buffer) []CellUpdate {
	if prev == nil || prev.rows != b.rows || prev.cols != b.cols {
		out := make([]CellUpdate, 0, len(b.cells))
		for i, c := range b.cells {
			out = append(out, CellUpdate{Col: i % b.cols, Row: i / b.cols, Cell: c})
		}
		return out
	}
	var out []CellUpdate
	for i, c := range b.cells {
		if c != prev.cells[i] {
			out = append(out, CellUpdate{Col: i % b.cols, Row: i / b.cols, Cell: c})
		}
	}
	return out
}
