package render

import (
	"github.com/mattn/go-runewidth"
)

// Box-drawing glyphs for edge routes.
const (
	glyphH  = '─'
	glyphV  = '│'
	glyphUL = '┌' // route turns from horizontal-left/up into the corner
	glyphUR = '┐'
	glyphLL = '└'
	glyphLR = '┘'
	glyphNE = '╱' // steep diagonals where an orthogonal route degenerates
	glyphNW = '╲'
)

// ellipsis marks an elided label tail.
const ellipsis = '…'

// drawEdge rasterizes an edge between two endpoint cells as orthogonal runs
// joined by corner glyphs, the segmented routing of the terminal renderer:
// a vertically biased route goes vertical, turns at the midpoint row, runs
// horizontal, and turns back; horizontally biased routes mirror that. Short
// diagonal hops fall back to slash glyphs.
func drawEdge(b *Buffer, x0, y0, x1, y1 int, style CellStyle) {
	if x0 == x1 && y0 == y1 {
		return
	}

	dx, dy := abs(x1-x0), abs(y1-y0)
	switch {
	case dx == 0:
		vline(b, x0, y0, y1, style)
	case dy == 0:
		hline(b, y0, x0, x1, style)
	case dx == 1 && dy == 1:
		// No room for a corner; a single diagonal glyph reads better.
		diag(b, x0, y0, x1, y1, style)
	case dy >= dx:
		routeVertical(b, x0, y0, x1, y1, style)
	default:
		routeHorizontal(b, x0, y0, x1, y1, style)
	}
}

// routeVertical draws start→mid vertical, a horizontal run at the midpoint
// row, then mid→end vertical.
func routeVertical(b *Buffer, x0, y0, x1, y1 int, style CellStyle) {
	midY := (y0 + y1) / 2

	vline(b, x0, y0, step(midY, y0), style)
	vline(b, x1, step(midY, y1), y1, style)
	hline(b, midY, step(x0, x1), step(x1, x0), style)

	// Corner at (x0, midY): arrives vertically from y0, leaves toward x1.
	b.Set(x0, midY, cornerGlyph(y0 < midY, x1 > x0), style)
	// Corner at (x1, midY): arrives horizontally from x0, leaves toward y1.
	b.Set(x1, midY, cornerGlyph(y1 < midY, x0 > x1), style)
}

// routeHorizontal mirrors routeVertical with the bend at the midpoint column.
func routeHorizontal(b *Buffer, x0, y0, x1, y1 int, style CellStyle) {
	midX := (x0 + x1) / 2

	hline(b, y0, x0, step(midX, x0), style)
	hline(b, y1, step(midX, x1), x1, style)
	vline(b, midX, step(y0, y1), step(y1, y0), style)

	b.Set(midX, y0, cornerGlyph(y1 < y0, x0 > midX), style)
	b.Set(midX, y1, cornerGlyph(y0 < y1, x1 > midX), style)
}

// cornerGlyph picks the box corner whose open ends face up/down and
// left/right as given: openUp means the vertical arm leaves upward,
// openRight means the horizontal arm leaves rightward.
func cornerGlyph(openUp, openRight bool) rune {
	switch {
	case openUp && openRight:
		return glyphLL
	case openUp:
		return glyphLR
	case openRight:
		return glyphUL
	default:
		return glyphUR
	}
}

// step moves v one cell toward toward, without crossing it.
func step(v, toward int) int {
	switch {
	case v < toward:
		return v + 1
	case v > toward:
		return v - 1
	default:
		return v
	}
}

func vline(b *Buffer, x, y0, y1 int, style CellStyle) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		b.Set(x, y, glyphV, style)
	}
}

func hline(b *Buffer, y, x0, x1 int, style CellStyle) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		b.Set(x, y, glyphH, style)
	}
}

// diag draws a Bresenham line with slash glyphs for the short steep cases
// where orthogonal routing has no room to bend.
func diag(b *Buffer, x0, y0, x1, y1 int, style CellStyle) {
	g := glyphNW
	if (x1-x0 > 0) != (y1-y0 > 0) {
		g = glyphNE
	}
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		b.Set(x, y, g, style)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawLabel writes a label centered on (col, row). Cells already holding a
// node glyph of equal or higher z-order are never overwritten; when the
// label runs into one it is elided with '…'. Nodes must therefore be drawn
// in descending z-order (selected first).
func drawLabel(b *Buffer, col, row int, label string, style CellStyle) {
	if label == "" {
		label = "•"
	}
	runes := []rune(label)
	width := 0
	for _, r := range runes {
		width += runewidth.RuneWidth(r)
	}
	x := col - width/2

	placed := false
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if blocked(b, x, row, w, style) {
			if placed {
				b.Set(x-1, row, ellipsis, style)
			}
			return
		}
		b.Set(x, row, r, style)
		// Wide runes own two columns; pad the second so diffing stays
		// cell-accurate.
		for i := 1; i < w; i++ {
			b.Set(x+i, row, ' ', style)
		}
		x += w
		placed = true
	}
}

// blocked reports whether any of the w cells starting at (x, row) belongs
// to a node region that outranks style.
func blocked(b *Buffer, x, row, w int, style CellStyle) bool {
	for i := 0; i < w; i++ {
		if c := b.Get(x+i, row); c.Style.isNode() && c.Style.zOrder() >= style.zOrder() {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
