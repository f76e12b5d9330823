// Package app holds the screensaver controller. A frontend feeds it one
// core.InputFrame per tick and asks it to draw onto a core.Canvas; the
// controller owns every piece of mutable state in between.
package app

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/effects"
	"github.com/vovakirdan/tvstatic/internal/menu"
	"github.com/vovakirdan/tvstatic/internal/prng"
)

// Widgets are the immediate-mode controls a frontend provides for the pause
// menu. Both are called once per paused frame.
type Widgets interface {
	// Button draws a labelled button and reports whether it was clicked
	// this frame.
	Button(r core.Rect, label string) bool

	// Spinner draws a numeric box bound to value. While edit is true it
	// handles Left/Right itself, keeping value in [min, max]. It reports
	// whether the box was clicked, which toggles edit mode.
	Spinner(r core.Rect, value *int, min, max int, edit bool) bool
}

// Overlay and text colors for the pause screen.
var (
	overlayColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	textColor    = core.White
)

// Options configure a new Controller.
type Options struct {
	Effect effects.Effect
	Aspect int
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Controller is the screensaver state machine. It is not safe for concurrent
// use; frontends drive it from their single update goroutine.
type Controller struct {
	rng      *prng.Random
	renderer *effects.Renderer
	logger   *log.Logger

	active      effects.Effect
	paused      bool
	aspect      int
	clear       bool
	spinnerEdit bool
}

// New creates a controller. A zero Config.Seed seeds from the clock and
// reseeds on every frame; any other value gives reproducible output.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		renderer: effects.NewRenderer(logger),
		logger:   logger,
		aspect:   menu.ClampAspect(opts.Aspect),
	}
	if opts.Config.Fixed() {
		c.rng = prng.NewSeeded(opts.Config.Seed)
		c.renderer.Reseed = false
	} else {
		c.rng = prng.New()
	}

	e := opts.Effect
	if !e.Valid() {
		e = effects.Static
	}
	c.selectEffect(e)
	return c
}

// Active returns the selected effect.
func (c *Controller) Active() effects.Effect {
	return c.active
}

// Paused reports whether the pause menu is showing.
func (c *Controller) Paused() bool {
	return c.paused
}

// Aspect returns the tile size in pixels.
func (c *Controller) Aspect() int {
	return c.aspect
}

// ClearBackground reports whether running frames are cleared before drawing.
func (c *Controller) ClearBackground() bool {
	return c.clear
}

// SpinnerEdit reports whether the tile-size spinner owns the arrow keys.
func (c *Controller) SpinnerEdit() bool {
	return c.spinnerEdit
}

// Renderer exposes the effect renderer, mainly for inspecting its state.
func (c *Controller) Renderer() *effects.Renderer {
	return c.renderer
}

// TogglePause switches between running and paused.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	c.logger.Info("pause toggled", "paused", c.paused)
}

// SetAspect sets the tile size, clamped to the menu bounds.
func (c *Controller) SetAspect(v int) {
	v = menu.ClampAspect(v)
	if v == c.aspect {
		return
	}
	c.aspect = v
	c.logger.Debug("aspect changed", "aspect", v)
}

// HandleInput applies one frame of input. Every pause press toggles; the
// arrow keys step the tile size once per press, only while paused and only
// when the spinner is not in edit mode.
func (c *Controller) HandleInput(in core.InputFrame) {
	if in.Empty() {
		return
	}
	for i := 0; i < in.Count(core.ActionPause); i++ {
		c.TogglePause()
	}
	if !c.paused || c.spinnerEdit {
		return
	}

	if step := in.Count(core.ActionAspectUp) - in.Count(core.ActionAspectDown); step != 0 {
		c.SetAspect(c.aspect + step)
	}
}

// Press performs the transition bound to b. Effect buttons select their
// effect and set the clear-background flag; Resume unpauses.
func (c *Controller) Press(b menu.Button) error {
	if b == menu.Resume {
		c.paused = false
		c.logger.Info("resumed", "effect", c.active)
		return nil
	}

	e, ok := b.Effect()
	if !ok {
		return fmt.Errorf("%w: slot %d", menu.ErrUnknownButton, int(b))
	}
	c.selectEffect(e)
	c.logger.Info("effect selected", "effect", e)
	return nil
}

func (c *Controller) selectEffect(e effects.Effect) {
	c.active = e
	c.clear = e.ClearsBackground()
}

// Frame draws one frame. When paused it draws the menu through w, which may
// trigger button transitions; otherwise it renders the active effect.
func (c *Controller) Frame(canvas core.Canvas, w Widgets) error {
	if c.clear || c.paused {
		canvas.Clear(core.Black)
	}
	if !c.paused {
		c.renderer.Render(c.active, canvas, c.rng, c.aspect)
		return nil
	}
	return c.drawMenu(canvas, w)
}

func (c *Controller) drawMenu(canvas core.Canvas, w Widgets) error {
	width, height := canvas.Size()
	layout := menu.Place(width, height)

	canvas.FillRect(core.NewRect(0, 0, width, height), overlayColor)

	// At most one button fires per frame.
	var pressed *menu.Button
	for _, it := range layout.Items {
		if w.Button(it.Rect, it.Button.Label()) && pressed == nil {
			b := it.Button
			pressed = &b
		}
	}

	aspect := c.aspect
	if w.Spinner(layout.Spinner, &aspect, menu.AspectMin, menu.AspectMax, c.spinnerEdit) {
		c.spinnerEdit = !c.spinnerEdit
	}
	c.SetAspect(aspect)

	canvas.DrawText(layout.TitleX, layout.TitleY, "PAUSED", textColor)
	canvas.DrawText(layout.LabelX, layout.LabelY, fmt.Sprintf("Aspect: %d", c.aspect), textColor)

	if pressed != nil {
		return c.Press(*pressed)
	}
	return nil
}
