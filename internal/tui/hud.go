package tui

import (
	"fmt"

	"github.com/graphos-dev/graphos/pkg/render"
)

// hudText summarizes the camera for the right edge of the status line: the
// world rectangle the canvas shows, the zoom level, and the cell under the
// pointer when it is on the canvas.
func hudText(vp render.Viewport, cursorCol, cursorRow int, showCursor bool, mode Mode) string {
	x0, y0 := vp.Unproject(0, 0)
	x1, y1 := vp.Unproject(vp.Cols-1, vp.Rows-1)
	s := fmt.Sprintf("[%s] view %.0f,%.0f..%.0f,%.0f  x%.2g", mode, x0, y0, x1, y1, vp.Scale)
	if showCursor {
		wx, wy := vp.Unproject(cursorCol, cursorRow)
		s += fmt.Sprintf("  cur %.0f,%.0f", wx, wy)
	}
	return s
}
