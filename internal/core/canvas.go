package core

import "image/color"

// Canvas is the drawing surface a frontend hands to the controller each frame.
// Coordinates are in pixels with the origin at the top-left corner.
type Canvas interface {
	// Size returns the current drawable width and height in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with c.
	Clear(c color.NRGBA)

	// FillRect paints r with c, blending by c's alpha.
	FillRect(r Rect, c color.NRGBA)

	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c color.NRGBA)
}

// Common colors.
var (
	Black = color.NRGBA{A: 0xff}
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
