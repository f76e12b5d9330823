package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tvstatic/internal/core"
)

// upperHalf draws the top dot in the foreground color and the bottom dot in
// the background color.
const upperHalf = '▀'

// cellStyle is the visual identity of a cell, used to group runs.
type cellStyle struct {
	fg, bg color.NRGBA
}

func styleOf(c core.Cell) (cellStyle, rune) {
	if c.Rune != 0 {
		return cellStyle{fg: c.Fg, bg: core.Lerp(c.Top, c.Bottom, 0.5)}, c.Rune
	}
	return cellStyle{fg: c.Top, bg: c.Bottom}, upperHalf
}

func (s cellStyle) lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Hex(s.fg))).
		Background(lipgloss.Color(core.Hex(s.bg)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start, _ := styleOf(s.GetCell(x, y))

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				st, r := styleOf(s.GetCell(x, y))
				if st != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(start.lipgloss().Render(run.String()))
		}
	}
	return sb.String()
}
