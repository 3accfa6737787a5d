// Package render projects world-space graph geometry onto a terminal cell
// grid and produces minimal frame-to-frame diffs.
//
// # Pipeline
//
// A [Viewport] maps world coordinates to cells (pan origin, zoom scale, grid
// size). A [Frame] rasterizes the graph into a [Buffer] of styled cells:
// edges as box-drawing segments with corner glyphs where the route bends,
// node labels centered on the node cell with z-order selected > highlighted
// > default. [Buffer.Diff] compares against the previous frame and yields
// only the changed cells, so an unchanged model and viewport produce an
// empty diff. Terminal resize invalidates the previous buffer entirely and
// forces a full redraw.
package render
