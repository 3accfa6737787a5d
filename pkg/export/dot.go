// Package export renders a graph snapshot to Graphviz DOT and SVG. It backs
// the non-interactive `graphos render` command; the interactive session
// never writes anything but edge lists.
package export

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphos-dev/graphos/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Weights includes edge weights as edge labels.
	Weights bool
}

// ToDOT converts a store to Graphviz DOT. Directed stores produce a digraph
// with arrowheads; undirected stores a plain graph. Nodes are emitted in
// label order for deterministic output.
func ToDOT(s *graph.Store, opts Options) string {
	keyword, arrow := "graph", "--"
	if s.Directed() {
		keyword, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	nodes := s.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return displayLabel(nodes[i]) < displayLabel(nodes[j]) })

	names := make(map[graph.NodeID]string, len(nodes))
	for i, n := range nodes {
		name := fmt.Sprintf("n%d", i)
		names[n.ID] = name
		attrs := []string{fmt.Sprintf("label=%q", displayLabel(n))}
		if n.Pinned {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges() {
		from, okF := names[e.From]
		to, okT := names[e.To]
		if !okF || !okT {
			continue
		}
		if opts.Weights && e.Weight != 1 {
			fmt.Fprintf(&buf, "  %s %s %s [label=%q];\n", from, arrow, to, trimFloat(e.Weight))
			continue
		}
		fmt.Fprintf(&buf, "  %s %s %s;\n", from, arrow, to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func displayLabel(n *graph.Node) string {
	if n.Label == "" {
		return n.ID.String()
	}
	return n.Label
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
