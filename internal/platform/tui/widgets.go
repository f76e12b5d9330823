package tui

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tvstatic/internal/core"
)

var (
	buttonFill  = color.NRGBA{R: 100, G: 120, B: 160, A: 255}
	focusFill   = color.NRGBA{R: 200, G: 160, B: 60, A: 255}
	editFill    = color.NRGBA{R: 60, G: 80, B: 120, A: 255}
	widgetLabel = core.White
)

// click is a left mouse press in screen pixels.
type click struct {
	x, y int
}

// widgets implements app.Widgets on a core.Screen. Controls are numbered in
// call order; the one whose number equals focus reacts to Confirm.
type widgets struct {
	screen  *core.Screen
	focus   int
	confirm bool
	click   *click
	left    int // Aspect key presses, consumed by the spinner in edit mode
	right   int

	n int // Controls drawn so far this frame
}

func (w *widgets) next() (focused bool) {
	focused = w.n == w.focus
	w.n++
	return focused
}

func (w *widgets) hit(r core.Rect) bool {
	return w.click != nil && r.Contains(w.click.x, w.click.y)
}

func (w *widgets) box(r core.Rect, fill color.NRGBA, label string) {
	w.screen.FillRect(r, fill)
	tx := r.X + (r.W-len(label)*core.CellWidth)/2
	ty := r.Y + r.H/2
	w.screen.DrawText(tx, ty, label, widgetLabel)
}

// Button draws a labelled button. It fires on a click inside it or on
// Confirm while focused.
func (w *widgets) Button(r core.Rect, label string) bool {
	focused := w.next()
	fill := buttonFill
	if focused {
		fill = focusFill
	}
	w.box(r, fill, label)
	return w.hit(r) || (focused && w.confirm)
}

// Spinner draws the tile-size box. Its outer thirds step the value on click;
// the middle third, or Confirm while focused, toggles edit mode.
func (w *widgets) Spinner(r core.Rect, value *int, min, max int, edit bool) bool {
	focused := w.next()

	third := r.W / 3
	dec := core.NewRect(r.X, r.Y, third, r.H)
	inc := core.NewRect(r.Right()-third, r.Y, third, r.H)
	mid := core.NewRect(dec.Right(), r.Y, inc.X-dec.Right(), r.H)

	if w.hit(dec) {
		*value--
	}
	if w.hit(inc) {
		*value++
	}
	if edit {
		*value += w.right - w.left
	}
	*value = core.Clamp(*value, min, max)

	fill := buttonFill
	switch {
	case edit:
		fill = editFill
	case focused:
		fill = focusFill
	}
	w.box(r, fill, fmt.Sprintf("< %d >", *value))

	return w.hit(mid) || (focused && w.confirm)
}
