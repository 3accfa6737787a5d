package render

import "math"

// Zoom scale bounds. One world unit maps to Scale cells, so 0.1 shows a
// 10x wider world window than 1.0.
const (
	MinScale = 0.1
	MaxScale = 8.0
)

// Viewport maps world space to the terminal cell grid. OriginX/OriginY is
// the world position of cell (0, 0); Scale is cells per world unit.
//
// The viewport is recreated on terminal resize and mutated by pan/zoom
// commands.
type Viewport struct {
	OriginX, OriginY float64
	Scale            float64
	Rows, Cols       int
}

// NewViewport returns a viewport of the given grid size at scale 1, with
// the world origin centered in the grid.
func NewViewport(rows, cols int) Viewport {
	v := Viewport{Scale: 1, Rows: rows, Cols: cols}
	v.CenterOn(0, 0)
	return v
}

// Project maps a world position to a cell. The second return reports
// whether the cell lies inside the grid; callers that rasterize lines keep
// out-of-grid coordinates for clipping, so no clamping happens here.
func (v Viewport) Project(wx, wy float64) (col, row int, visible bool) {
	col = int(math.Round((wx - v.OriginX) * v.Scale))
	row = int(math.Round((wy - v.OriginY) * v.Scale))
	visible = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, visible
}

// Unproject maps a cell back to the world position of its center. It is the
// inverse of [Viewport.Project] up to half a cell width.
func (v Viewport) Unproject(col, row int) (wx, wy float64) {
	return float64(col)/v.Scale + v.OriginX, float64(row)/v.Scale + v.OriginY
}

// Pan shifts the origin by a cell delta, so panning feels uniform at every
// zoom level.
func (v *Viewport) Pan(dcols, drows int) {
	v.OriginX += float64(dcols) / v.Scale
	v.OriginY += float64(drows) / v.Scale
}

// Zoom multiplies the scale by factor, clamped to [MinScale, MaxScale],
// keeping the world position at the grid center fixed.
func (v *Viewport) Zoom(factor float64) {
	cx, cy := v.Unproject(v.Cols/2, v.Rows/2)
	v.Scale = math.Min(MaxScale, math.Max(MinScale, v.Scale*factor))
	v.CenterOn(cx, cy)
}

// CenterOn moves the origin so the world position (wx, wy) lands at the
// grid center.
func (v *Viewport) CenterOn(wx, wy float64) {
	v.OriginX = wx - float64(v.Cols/2)/v.Scale
	v.OriginY = wy - float64(v.Rows/2)/v.Scale
}

// Resize returns a viewport for the new grid size keeping origin and scale.
// The renderer pairs this with a full redraw.
func (v Viewport) Resize(rows, cols int) Viewport {
	v.Rows, v.Cols = rows, cols
	return v
}
