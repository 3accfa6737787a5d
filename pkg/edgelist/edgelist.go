// Package edgelist reads and writes the plain-text edge-list format:
//
//	nodeA nodeB [weight]
//
// One edge per line, whitespace-separated. Blank lines and lines starting
// with '#' are ignored. Node labels are the identity in this format:
// repeated labels refer to the same node. The format carries topology only;
// positions, pin state and isolated nodes do not round-trip.
//
// Malformed lines (wrong token count, unparsable weight) are skipped and
// reported as [Warning] values so a partially damaged file still loads.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/graphos-dev/graphos/pkg/graph"
)

// Warning describes a skipped input line.
type Warning struct {
	Line int
	Text string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v (%q)", w.Line, w.Err, w.Text)
}

// Read decodes an edge list from r into a fresh store in the given edge
// direction mode; the format itself does not record direction. Malformed
// lines are skipped and returned as warnings; only I/O failures produce an
// error. Read does not close r.
func Read(r io.Reader, directed bool) (*graph.Store, []Warning, error) {
	s := graph.New(directed)
	byLabel := make(map[string]graph.NodeID)
	var warnings []Warning

	intern := func(label string) graph.NodeID {
		if id, ok := byLabel[label]; ok {
			return id
		}
		id := s.AddNode(label)
		byLabel[label] = id
		return id
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			warnings = append(warnings, Warning{
				Line: lineNo, Text: line,
				Err: fmt.Errorf("want 'nodeA nodeB [weight]', got %d fields", len(fields)),
			})
			continue
		}

		weight := 1.0
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				warnings = append(warnings, Warning{
					Line: lineNo, Text: line,
					Err: fmt.Errorf("bad weight %q: %w", fields[2], err),
				})
				continue
			}
			weight = w
		}

		a := intern(fields[0])
		b := intern(fields[1])
		if _, err := s.AddEdge(a, b, weight); err != nil {
			// Handles come straight from intern, so this is unreachable
			// short of store corruption; surface it rather than hide it.
			return nil, warnings, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read: %w", err)
	}
	return s, warnings, nil
}

// ImportFile reads an edge-list file and returns the decoded store in the
// given edge direction mode.
func ImportFile(path string, directed bool) (*graph.Store, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, directed)
}

// Write encodes the store's topology to w, one edge per line, sorted by
// endpoint labels for deterministic output. Weights equal to 1 are omitted.
// Whitespace inside labels is folded to '_' so the line stays parseable.
func Write(w io.Writer, s *graph.Store) error {
	type line struct{ a, b, suffix string }
	var lines []line

	for _, e := range s.Edges() {
		from, okF := s.Node(e.From)
		to, okT := s.Node(e.To)
		if !okF || !okT {
			continue
		}
		suffix := ""
		if e.Weight != 1 {
			suffix = " " + strconv.FormatFloat(e.Weight, 'g', -1, 64)
		}
		lines = append(lines, line{safeLabel(from.Label), safeLabel(to.Label), suffix})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].a != lines[j].a {
			return lines[i].a < lines[j].a
		}
		return lines[i].b < lines[j].b
	})

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%s %s%s\n", l.a, l.b, l.suffix); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return bw.Flush()
}

// ExportFile writes the store's topology to path, creating or truncating
// the file with 0644 permissions.
func ExportFile(path string, s *graph.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, s)
}

func safeLabel(label string) string {
	if label == "" {
		return "_"
	}
	return strings.Join(strings.Fields(label), "_")
}
