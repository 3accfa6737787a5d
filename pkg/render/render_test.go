package render

import (
	"strings"
	"testing"

	"github.com/graphos-dev/graphos/pkg/graph"
)

func testStore(t *testing.T) (*graph.Store, graph.NodeID, graph.NodeID) {
	t.Helper()
	s := graph.New(false)
	a := s.AddNode("alpha")
	b := s.AddNode("beta")
	na, _ := s.Node(a)
	nb, _ := s.Node(b)
	na.X, na.Y = 5, 3
	nb.X, nb.Y = 30, 12
	if _, err := s.AddEdge(a, b, 1); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}
	return s, a, b
}

func TestUnchangedFrameEmptyDiff(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))

	first := f.Draw(s, Overlay{})
	if len(first) == 0 {
		t.Fatal("first draw produced no cells")
	}
	second := f.Draw(s, Overlay{})
	if len(second) != 0 {
		t.Errorf("unchanged model produced %d cell updates, want 0", len(second))
	}
}

func TestMutationProducesDiff(t *testing.T) {
	s, a, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})

	na, _ := s.Node(a)
	na.X += 3

	if diff := f.Draw(s, Overlay{}); len(diff) == 0 {
		t.Error("moved node produced empty diff")
	}
}

func TestViewportChangeProducesDiff(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})

	vp := f.Viewport()
	vp.Pan(2, 0)
	f.SetViewport(vp)

	if diff := f.Draw(s, Overlay{}); len(diff) == 0 {
		t.Error("panned viewport produced empty diff")
	}
}

func TestResizeForcesFullRedraw(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})

	f.Resize(30, 100)
	diff := f.Draw(s, Overlay{})
	if len(diff) != 30*100 {
		t.Errorf("post-resize diff has %d cells, want full grid %d", len(diff), 30*100)
	}
}

func TestLabelsAppearInFrame(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})

	out := Render(f.Buffer())
	for _, label := range []string{"alpha", "beta"} {
		if !strings.Contains(out, label) {
			t.Errorf("frame missing label %q:\n%s", label, out)
		}
	}
}

func TestEdgeRasterized(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})

	out := Render(f.Buffer())
	if !strings.ContainsRune(out, glyphH) && !strings.ContainsRune(out, glyphV) {
		t.Errorf("frame contains no edge glyphs:\n%s", out)
	}
}

func TestSelectedLabelWinsOverlap(t *testing.T) {
	s := graph.New(false)
	a := s.AddNode("AAAA")
	b := s.AddNode("BBBB")
	na, _ := s.Node(a)
	nb, _ := s.Node(b)
	// Same cell: the selected label must own it.
	na.X, na.Y = 10, 5
	nb.X, nb.Y = 10, 5
	nb.Selected = true

	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})
	out := Render(f.Buffer())

	if !strings.Contains(out, "BBBB") {
		t.Errorf("selected label lost overlap:\n%s", out)
	}
	if strings.Contains(out, "AAAA") {
		t.Errorf("default label drawn over selected region:\n%s", out)
	}
}

func TestRubberBandDrawn(t *testing.T) {
	s, a, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))

	f.Draw(s, Overlay{})
	diff := f.Draw(s, Overlay{
		RubberBand: true, RubberFrom: a,
		ShowCursor: true, CursorCol: 60, CursorRow: 20, CursorGrab: true,
	})
	if len(diff) == 0 {
		t.Error("rubber band overlay produced empty diff")
	}

	band := false
	for _, u := range diff {
		if u.Cell.Style == StyleRubberBand {
			band = true
		}
	}
	if !band {
		t.Error("no rubber-band cells in diff")
	}
}

func TestOffscreenEdgeSkipped(t *testing.T) {
	s := graph.New(false)
	a := s.AddNode("far")
	b := s.AddNode("away")
	na, _ := s.Node(a)
	nb, _ := s.Node(b)
	na.X, na.Y = -500, -500
	nb.X, nb.Y = -400, -500

	f := NewFrame(NewViewport(24, 80))
	f.Draw(s, Overlay{})
	out := Render(f.Buffer())
	if strings.ContainsRune(out, glyphH) {
		t.Errorf("fully offscreen edge leaked into the frame:\n%s", out)
	}
}

func TestMenuOccludesGraph(t *testing.T) {
	s, _, _ := testStore(t)
	f := NewFrame(NewViewport(24, 80))

	f.Draw(s, Overlay{})
	menu := MenuOverlay{Col: 2, Row: 2, Items: []string{"add node", "quit"}, Hover: -1, Show: true}
	diff := f.Draw(s, Overlay{Menu: menu})
	if len(diff) == 0 {
		t.Fatal("menu overlay produced empty diff")
	}

	b := f.Buffer()
	if got := b.Get(menu.Col, menu.Row); got.Rune != glyphUL || got.Style != StyleMenu {
		t.Errorf("top-left corner = %q/%v, want %q/StyleMenu", got.Rune, got.Style, glyphUL)
	}
	// First entry row: border, padding, then the label.
	if got := b.Get(menu.Col+2, menu.Row+1); got.Rune != 'a' || got.Style != StyleMenu {
		t.Errorf("entry cell = %q/%v, want 'a'/StyleMenu", got.Rune, got.Style)
	}

	// The hovered entry is restyled as a solid bar across the inner width.
	menu.Hover = 1
	f.Draw(s, Overlay{Menu: menu})
	b = f.Buffer()
	for x := menu.Col + 1; x < menu.Col+menu.Width()-1; x++ {
		if got := b.Get(x, menu.Row+2); got.Style != StyleMenuHover {
			t.Fatalf("hovered row cell %d style = %v, want StyleMenuHover", x, got.Style)
		}
	}
}

func TestMenuHitTest(t *testing.T) {
	menu := MenuOverlay{Col: 10, Row: 0, Items: []string{"add node", "quit"}, Show: true}
	w := menu.Width()

	tests := []struct {
		name     string
		col, row int
		idx      int
		inside   bool
	}{
		{"outside left", 9, 1, -1, false},
		{"outside below", 12, menu.Height(), -1, false},
		{"top border", 12, 0, -1, true},
		{"left border", 10, 1, -1, true},
		{"right border", 10 + w - 1, 2, -1, true},
		{"first entry", 12, 1, 0, true},
		{"second entry", 12, 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, inside := menu.HitTest(tt.col, tt.row)
			if idx != tt.idx || inside != tt.inside {
				t.Errorf("HitTest(%d, %d) = (%d, %v), want (%d, %v)",
					tt.col, tt.row, idx, inside, tt.idx, tt.inside)
			}
		})
	}

	menu.Show = false
	if idx, inside := menu.HitTest(12, 1); idx != -1 || inside {
		t.Errorf("hidden menu HitTest = (%d, %v), want (-1, false)", idx, inside)
	}
}
