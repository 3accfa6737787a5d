// Package pkg provides the core libraries for the graphos terminal graph editor.
//
// # Overview
//
// Graphos renders an editable node/edge graph inside the terminal. The pkg
// directory is organized by concern:
//
//   - [graph] - Graph store: nodes, edges, adjacency index, mutation API
//   - [layout] - Incremental force-directed layout in world space
//   - [render] - Viewport projection, cell buffer, diff rendering
//   - [edgelist] - Plain-text edge-list load/save
//   - [export] - One-shot DOT/SVG snapshot rendering
//   - [config] - TOML configuration with XDG lookup
//   - [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow during an interactive session:
//
//	terminal input
//	     ↓
//	internal/tui (interaction state machine)
//	     ↓
//	[graph] package (mutations, adjacency maintenance)
//	     ↓
//	[layout] package (incremental force simulation)
//	     ↓
//	[render] package (projection + cell diff)
//	     ↓
//	terminal output
//
// # Quick Start
//
// Build a graph, lay it out, and rasterize a frame:
//
//	s := graph.New(false)
//	a := s.AddNode("a")
//	b := s.AddNode("b")
//	s.AddEdge(a, b, 1)
//
//	eng := layout.New(s, layout.DefaultTuning())
//	for !eng.Converged() {
//	    eng.Step()
//	}
//
//	vp := render.NewViewport(24, 80)
//	frame := render.NewFrame(vp)
//	frame.Draw(s, render.Overlay{})
//
// [graph]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/graph
// [layout]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/layout
// [render]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/render
// [edgelist]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/edgelist
// [export]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/export
// [config]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/graphos-dev/graphos/pkg/buildinfo
package pkg
