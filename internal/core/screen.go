package core

import (
	"image/color"
	"strings"
)

// Terminal cells are mapped onto a virtual pixel surface so effects and the
// pause menu use the same pixel units as the window frontend. Each cell holds
// two vertically stacked dots.
const (
	CellWidth  = 8  // Pixels per cell horizontally
	CellHeight = 16 // Pixels per cell vertically
	dotHeight  = CellHeight / 2
)

// Cell is one terminal character: an upper and lower dot plus optional text.
type Cell struct {
	Top    color.NRGBA
	Bottom color.NRGBA
	Rune   rune        // 0 when the cell shows dots only
	Fg     color.NRGBA // Text color when Rune is set
}

// Screen is a cell buffer implementing Canvas for terminal rendering.
// It decouples effect drawing from the terminal, letting the platform layer
// turn cells into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given size in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(Black)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the virtual pixel size of the screen.
func (s *Screen) Size() (int, int) {
	return s.width * CellWidth, s.height * CellHeight
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear(Black)

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills every dot with c and removes all text.
func (s *Screen) Clear(c color.NRGBA) {
	c.A = 0xff
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Top: c, Bottom: c}
		}
	}
}

// FillRect blends c into every dot whose center lies inside r.
// Text in touched cells is removed.
func (s *Screen) FillRect(r Rect, c color.NRGBA) {
	if r.Empty() || c.A == 0 {
		return
	}

	x0 := Clamp(ceilDiv(r.X-CellWidth/2, CellWidth), 0, s.width)
	x1 := Clamp(ceilDiv(r.Right()-CellWidth/2, CellWidth), 0, s.width)
	y0 := Clamp(ceilDiv(r.Y-dotHeight/2, dotHeight), 0, s.height*2)
	y1 := Clamp(ceilDiv(r.Bottom()-dotHeight/2, dotHeight), 0, s.height*2)

	for dy := y0; dy < y1; dy++ {
		row := s.cells[dy/2]
		for x := x0; x < x1; x++ {
			cell := &row[x]
			if dy%2 == 0 {
				cell.Top = Over(cell.Top, c)
			} else {
				cell.Bottom = Over(cell.Bottom, c)
			}
			cell.Rune = 0
		}
	}
}

// DrawText writes text into the cells containing (x, y) and to its right.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c color.NRGBA) {
	if y < 0 {
		return
	}
	col := ceilDiv(x, CellWidth)
	row := y / CellHeight
	if row >= s.height {
		return
	}

	i := 0
	for _, r := range text {
		cx := col + i
		i++
		if cx < 0 || cx >= s.width {
			continue
		}
		cell := &s.cells[row][cx]
		cell.Rune = r
		cell.Fg = c
	}
}

// GetCell returns the cell at the given position.
// Returns an empty black cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Top: Black, Bottom: Black}
	}
	return s.cells[y][x]
}

// Dot returns the color of the dot at column x and dot row y.
func (s *Screen) Dot(x, y int) color.NRGBA {
	cell := s.GetCell(x, y/2)
	if y%2 == 0 {
		return cell.Top
	}
	return cell.Bottom
}

// Row returns the text layer of row y, with spaces where no text is drawn.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		if cell.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// ceilDiv divides rounding toward positive infinity; b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
