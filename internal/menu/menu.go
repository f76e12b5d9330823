// Package menu describes the pause menu: its buttons, their design-time
// layout and the tile-size spinner. It holds no state; the controller decides
// what a press does.
package menu

import (
	"errors"

	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/effects"
)

// Tile size bounds enforced by the spinner and the arrow keys.
const (
	AspectMin = 1
	AspectMax = 50
)

// ErrUnknownButton is returned when a press names no known button.
var ErrUnknownButton = errors.New("menu: unknown button")

// Button identifies one pause menu entry.
type Button int

const (
	Resume Button = iota
	BarsButton
	FadeButton
	LerpButton
	SpiralButton
	StaticButton
	WashButton
	ScrollButton
)

// Buttons returns every button in draw order.
func Buttons() []Button {
	return []Button{Resume, BarsButton, FadeButton, LerpButton, SpiralButton, StaticButton, WashButton, ScrollButton}
}

// Valid reports whether b is a known button.
func (b Button) Valid() bool {
	return b >= Resume && b <= ScrollButton
}

// Label returns the text drawn on the button.
func (b Button) Label() string {
	switch b {
	case Resume:
		return "Resume"
	case BarsButton:
		return "CRT-BARS"
	case FadeButton:
		return "FADE"
	case LerpButton:
		return "LERP"
	case SpiralButton:
		return "SPIRAL"
	case StaticButton:
		return "STATIC"
	case WashButton:
		return "WHOLE-SCREEN"
	case ScrollButton:
		return "SCROLL"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (b Button) String() string {
	return b.Label()
}

// Effect returns the effect a button selects. ok is false for Resume and
// for unknown buttons.
func (b Button) Effect() (e effects.Effect, ok bool) {
	switch b {
	case BarsButton:
		return effects.Bars, true
	case FadeButton:
		return effects.Fade, true
	case LerpButton:
		return effects.Lerp, true
	case SpiralButton:
		return effects.Spiral, true
	case StaticButton:
		return effects.Static, true
	case WashButton:
		return effects.Wash, true
	case ScrollButton:
		return effects.Scroll, true
	default:
		return effects.Static, false
	}
}

// Design rectangles, before recentering.
var (
	designRects = map[Button]core.Rect{
		Resume:       core.NewRect(1, 1, 120, 24),
		BarsButton:   core.NewRect(1, 165, 120, 24),
		FadeButton:   core.NewRect(1, 265, 120, 24),
		LerpButton:   core.NewRect(256, 265, 120, 24),
		SpiralButton: core.NewRect(256, 165, 120, 24),
		StaticButton: core.NewRect(-256, 165, 120, 24),
		WashButton:   core.NewRect(-256, 265, 120, 24),
		ScrollButton: core.NewRect(528, 312, 120, 24),
	}
	spinnerRect = core.NewRect(1, -200, 240, 48)
)

// Recenter moves a design rectangle so it keeps its place relative to the
// center of a width x height canvas. Size is unchanged.
func Recenter(r core.Rect, width, height int) core.Rect {
	cx, cy := width/2, height/2
	return core.NewRect(cx-(r.X+r.W)/2, cy-(r.Y+r.H)/2, r.W, r.H)
}

// Item is a button placed on a canvas.
type Item struct {
	Button Button
	Rect   core.Rect
}

// Layout is the pause menu placed on a canvas of a given size.
type Layout struct {
	Items   []Item
	Spinner core.Rect

	// Where the "PAUSED" title and the "Aspect: N" label start.
	TitleX, TitleY int
	LabelX, LabelY int
}

// Place lays the menu out for a width x height canvas.
func Place(width, height int) Layout {
	l := Layout{
		Spinner: Recenter(spinnerRect, width, height),
		TitleX:  width/2 - 40,
		TitleY:  10,
		LabelX:  width/2 - 130/2,
		LabelY:  height/2 - 60/2 + 70,
	}
	for _, b := range Buttons() {
		l.Items = append(l.Items, Item{Button: b, Rect: Recenter(designRects[b], width, height)})
	}
	return l
}

// ClampAspect restricts a tile size to [AspectMin, AspectMax].
func ClampAspect(v int) int {
	return core.Clamp(v, AspectMin, AspectMax)
}
