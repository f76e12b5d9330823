package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tvstatic/internal/core"
)

var (
	buttonColor = color.NRGBA{R: 100, G: 120, B: 160, A: 255}
	hoverColor  = color.NRGBA{R: 80, G: 100, B: 140, A: 255}
	editColor   = color.NRGBA{R: 60, G: 80, B: 120, A: 255}
	borderColor = color.NRGBA{R: 150, G: 170, B: 200, A: 255}
)

// Width of the -/+ boxes at each end of the spinner.
const spinnerArrow = 24

// pointer is the mouse state sampled once per tick.
type pointer struct {
	x, y    int
	clicked bool // Left button went down this tick
}

// widgets draws immediate-mode controls and reports clicks from the
// pointer state of the current tick.
type widgets struct {
	c    canvas
	ptr  pointer
	keys keySource
}

func (w widgets) hit(r core.Rect) bool {
	return w.ptr.clicked && r.Contains(w.ptr.x, w.ptr.y)
}

func (w widgets) box(r core.Rect, fill color.NRGBA, label string) {
	vector.DrawFilledRect(w.c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(w.c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, borderColor, false)

	tx := r.X + (r.W-textWidth(label))/2
	ty := r.Y + (r.H-int(face.Metrics().HAscent+face.Metrics().HDescent))/2
	w.c.DrawText(tx, ty, label, core.White)
}

// Button draws a labelled button and reports whether it was clicked.
func (w widgets) Button(r core.Rect, label string) bool {
	fill := buttonColor
	if r.Contains(w.ptr.x, w.ptr.y) {
		fill = hoverColor
	}
	w.box(r, fill, label)
	return w.hit(r)
}

// Spinner draws a value box with -/+ buttons. The buttons always work; the
// arrow keys only while edit is set. Clicking the value box reports true.
func (w widgets) Spinner(r core.Rect, value *int, min, max int, edit bool) bool {
	dec := core.NewRect(r.X, r.Y, spinnerArrow, r.H)
	inc := core.NewRect(r.Right()-spinnerArrow, r.Y, spinnerArrow, r.H)
	mid := core.NewRect(dec.Right(), r.Y, r.W-2*spinnerArrow, r.H)

	if w.hit(dec) {
		*value--
	}
	if w.hit(inc) {
		*value++
	}
	if edit {
		if w.keys.justPressed(ebiten.KeyArrowLeft) {
			*value--
		}
		if w.keys.justPressed(ebiten.KeyArrowRight) {
			*value++
		}
	}
	*value = core.Clamp(*value, min, max)

	fill := buttonColor
	if edit {
		fill = editColor
	}
	w.box(dec, buttonColor, "<")
	w.box(inc, buttonColor, ">")
	w.box(mid, fill, strconv.Itoa(*value))

	return w.hit(mid)
}
