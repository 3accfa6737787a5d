package render

import "testing"

func cellAt(t *testing.T, b *Buffer, col, row int) rune {
	t.Helper()
	return b.Get(col, row).Rune
}

func TestDrawEdgeStraightRuns(t *testing.T) {
	b := NewBuffer(10, 20)
	drawEdge(b, 1, 2, 6, 2, StyleEdge)
	for x := 1; x <= 6; x++ {
		if got := cellAt(t, b, x, 2); got != glyphH {
			t.Errorf("horizontal run at (%d,2) = %q, want %q", x, got, glyphH)
		}
	}

	drawEdge(b, 10, 1, 10, 5, StyleEdge)
	for y := 1; y <= 5; y++ {
		if got := cellAt(t, b, 10, y); got != glyphV {
			t.Errorf("vertical run at (10,%d) = %q, want %q", y, got, glyphV)
		}
	}
}

func TestDrawEdgeDiagonalFallback(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           rune
	}{
		{"down-right", 2, 2, 3, 3, glyphNW},
		{"up-right", 2, 3, 3, 2, glyphNE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(10, 20)
			drawEdge(b, tt.x0, tt.y0, tt.x1, tt.y1, StyleEdge)
			if got := cellAt(t, b, tt.x0, tt.y0); got != tt.want {
				t.Errorf("start glyph = %q, want %q", got, tt.want)
			}
			if got := cellAt(t, b, tt.x1, tt.y1); got != tt.want {
				t.Errorf("end glyph = %q, want %q", got, tt.want)
			}
		})
	}
}

// A vertically biased edge routes start→mid vertical, bends, runs horizontal,
// bends again, and finishes vertical. The corner glyphs must face the runs
// they join.
func TestRouteVerticalCorners(t *testing.T) {
	b := NewBuffer(12, 20)
	drawEdge(b, 2, 1, 8, 7, StyleEdge)

	// midY = 4: bend leaves (2,·) upward toward y0 and rightward toward x1.
	if got := cellAt(t, b, 2, 4); got != glyphLL {
		t.Errorf("first corner = %q, want %q", got, glyphLL)
	}
	if got := cellAt(t, b, 8, 4); got != glyphUR {
		t.Errorf("second corner = %q, want %q", got, glyphUR)
	}
	for y := 1; y <= 3; y++ {
		if got := cellAt(t, b, 2, y); got != glyphV {
			t.Errorf("descent at (2,%d) = %q, want %q", y, got, glyphV)
		}
	}
	for x := 3; x <= 7; x++ {
		if got := cellAt(t, b, x, 4); got != glyphH {
			t.Errorf("crossbar at (%d,4) = %q, want %q", x, got, glyphH)
		}
	}
	for y := 5; y <= 7; y++ {
		if got := cellAt(t, b, 8, y); got != glyphV {
			t.Errorf("descent at (8,%d) = %q, want %q", y, got, glyphV)
		}
	}
}

func TestRouteHorizontalCorners(t *testing.T) {
	b := NewBuffer(12, 20)
	drawEdge(b, 1, 1, 9, 3, StyleEdge)

	// midX = 5: bend at the top row turns downward, the bottom one back up.
	if got := cellAt(t, b, 5, 1); got != glyphUR {
		t.Errorf("first corner = %q, want %q", got, glyphUR)
	}
	if got := cellAt(t, b, 5, 3); got != glyphLL {
		t.Errorf("second corner = %q, want %q", got, glyphLL)
	}
	if got := cellAt(t, b, 5, 2); got != glyphV {
		t.Errorf("drop at (5,2) = %q, want %q", got, glyphV)
	}
}

func TestDrawLabelElidesAgainstHigherZ(t *testing.T) {
	b := NewBuffer(5, 40)
	drawLabel(b, 20, 2, "WINNER", StyleNodeSelected)
	drawLabel(b, 14, 2, "loserlabel", StyleNode)

	found := false
	for x := 0; x < 40; x++ {
		if cellAt(t, b, x, 2) == ellipsis {
			found = true
		}
	}
	if !found {
		t.Error("truncated label should end with an ellipsis")
	}
}

func TestDrawLabelEmptyUsesDot(t *testing.T) {
	b := NewBuffer(5, 10)
	drawLabel(b, 4, 1, "", StyleNode)
	if got := cellAt(t, b, 4, 1); got != '•' {
		t.Errorf("empty label glyph = %q, want %q", got, '•')
	}
}
