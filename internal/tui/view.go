package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/graphos-dev/graphos/pkg/render"
)

// overlay assembles the transient geometry for the current interaction mode.
func (m Model) overlay() render.Overlay {
	ov := render.Overlay{
		CursorCol:  m.cursorCol,
		CursorRow:  m.cursorRow,
		ShowCursor: m.showCursor && m.mode != ModeEditing,
		CursorGrab: m.mode == ModePanning || m.mode == ModeEdgeDrawing,
	}
	if m.mode == ModeEdgeDrawing {
		ov.RubberFrom = m.selected
		ov.RubberBand = true
	}
	if m.mode != ModeEditing {
		ov.Menu = m.menuOverlay()
	}
	return ov
}

// refresh rasterizes the current state into the frame and recomposes the
// styled canvas only when cells actually changed. A stable model produces an
// empty diff and keeps the cached string.
func (m *Model) refresh() {
	if !m.ready || !m.dirty {
		return
	}
	diff := m.frame.Draw(m.store, m.overlay())
	if len(diff) > 0 || m.canvas == "" {
		m.canvas = styledCanvas(m.frame.Buffer())
	}
	m.dirty = false
}

// styledCanvas joins the buffer into terminal lines, styling runs of cells
// that share a style class in one lipgloss call.
func styledCanvas(b *render.Buffer) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < b.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		runStyle := render.StyleBlank
		run.Reset()
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == render.StyleBlank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(cellStyle(runStyle).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < b.Cols(); col++ {
			c := b.Get(col, row)
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return sb.String()
}

// View composes the canvas, status line with HUD, and help hint. While a
// label is being edited the modal replaces the canvas area.
func (m Model) View() string {
	if !m.ready {
		return "starting graphos..."
	}

	vp := m.frame.Viewport()

	body := m.canvas
	if m.mode == ModeEditing {
		body = lipgloss.Place(vp.Cols, vp.Rows, lipgloss.Center, lipgloss.Center, m.editModal())
	}

	return body + "\n" + m.statusLine(vp) + "\n" + m.helpLine()
}

func (m Model) editModal() string {
	title := styleModalTitle.Render("edit label")
	return styleModalBorder.Render(title + "\n" + m.input.View())
}

func (m Model) statusLine(vp render.Viewport) string {
	left := ""
	if m.status != "" {
		if m.statusError {
			left = styleStatusError.Render(m.status)
		} else {
			left = styleStatusInfo.Render(m.status)
		}
	}
	right := styleHUD.Render(hudText(vp, m.cursorCol, m.cursorRow, m.showCursor, m.mode))

	pad := vp.Cols - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) helpLine() string {
	return styleHelpHint.Render(m.help.View(m.keys))
}
