package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/graphos-dev/graphos/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - selection, accents
	colorGreen  = lipgloss.Color("35")  // Green - success status
	colorYellow = lipgloss.Color("220") // Amber - highlights, warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - node labels
	colorGray   = lipgloss.Color("245") // Gray - HUD text
	colorDim    = lipgloss.Color("240") // Dim gray - edges, chrome
)

// =============================================================================
// Canvas Styles
// =============================================================================

var (
	styleEdge         = lipgloss.NewStyle().Foreground(colorDim)
	styleNode         = lipgloss.NewStyle().Foreground(colorWhite)
	styleNodeHi       = lipgloss.NewStyle().Foreground(colorYellow)
	styleNodeSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleCursor       = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleRubber       = lipgloss.NewStyle().Foreground(colorCyan)
	styleMenu         = lipgloss.NewStyle().Foreground(colorGray)
	styleMenuHover    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Reverse(true)
)

// cellStyle maps a buffer cell class to its lipgloss style. Blank cells get
// the zero style so run-length grouping can skip styling entirely.
func cellStyle(s render.CellStyle) lipgloss.Style {
	switch s {
	case render.StyleEdge:
		return styleEdge
	case render.StyleNode:
		return styleNode
	case render.StyleNodeHighlighted:
		return styleNodeHi
	case render.StyleNodeSelected:
		return styleNodeSelected
	case render.StyleCursor:
		return styleCursor
	case render.StyleRubberBand:
		return styleRubber
	case render.StyleMenu:
		return styleMenu
	case render.StyleMenuHover:
		return styleMenuHover
	default:
		return lipgloss.NewStyle()
	}
}

// =============================================================================
// Chrome Styles
// =============================================================================

var (
	styleStatusInfo  = lipgloss.NewStyle().Foreground(colorGreen)
	styleStatusError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleHUD         = lipgloss.NewStyle().Foreground(colorGray)
	styleHelpHint    = lipgloss.NewStyle().Foreground(colorDim)

	styleModalBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(0, 1)
	styleModalTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)
