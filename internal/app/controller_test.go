package app

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/effects"
	"github.com/vovakirdan/tvstatic/internal/menu"
)

// canvas records draw calls.
type canvas struct {
	w, h   int
	clears int
	fills  int
	texts  []string
}

func (c *canvas) Size() (int, int)                           { return c.w, c.h }
func (c *canvas) Clear(color.NRGBA)                          { c.clears++ }
func (c *canvas) FillRect(core.Rect, color.NRGBA)            { c.fills++ }
func (c *canvas) DrawText(_, _ int, s string, _ color.NRGBA) { c.texts = append(c.texts, s) }

// widgets clicks the buttons whose labels are listed and optionally the spinner.
type widgets struct {
	click       map[string]bool
	clickSpin   bool
	spinDelta   int
	seenButtons []string
	seenEdit    bool
}

func (w *widgets) Button(_ core.Rect, label string) bool {
	w.seenButtons = append(w.seenButtons, label)
	return w.click[label]
}

func (w *widgets) Spinner(_ core.Rect, value *int, min, max int, edit bool) bool {
	w.seenEdit = edit
	if edit {
		*value = core.Clamp(*value+w.spinDelta, min, max)
	}
	return w.clickSpin
}

func newTestController() *Controller {
	return New(Options{
		Effect: effects.Static,
		Aspect: 30,
		Config: core.RuntimeConfig{Seed: 42},
	})
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{Effect: effects.Effect(-1), Aspect: 0})

	if c.Active() != effects.Static {
		t.Errorf("Active() = %s, expected static", c.Active())
	}
	if c.Aspect() != menu.AspectMin {
		t.Errorf("Aspect() = %d, expected %d", c.Aspect(), menu.AspectMin)
	}
	if c.Paused() {
		t.Error("new controller should not be paused")
	}
	if !c.ClearBackground() {
		t.Error("static should clear the background")
	}
	if !c.Renderer().Reseed {
		t.Error("clock-seeded controller should reseed every frame")
	}
	if newTestController().Renderer().Reseed {
		t.Error("fixed-seed controller should not reseed")
	}
}

func TestPauseToggle(t *testing.T) {
	c := newTestController()

	c.HandleInput(press(core.ActionPause))
	if !c.Paused() {
		t.Fatal("pause key should pause")
	}
	c.HandleInput(press(core.ActionPause))
	if c.Paused() {
		t.Fatal("pause key should resume")
	}
}

func TestEffectButtons(t *testing.T) {
	tests := []struct {
		button   menu.Button
		expected effects.Effect
		clear    bool
	}{
		{menu.FadeButton, effects.Fade, false},
		{menu.BarsButton, effects.Bars, true},
		{menu.LerpButton, effects.Lerp, true},
		{menu.SpiralButton, effects.Spiral, true},
		{menu.StaticButton, effects.Static, true},
		{menu.WashButton, effects.Wash, true},
		{menu.ScrollButton, effects.Scroll, true},
	}

	for _, tc := range tests {
		t.Run(tc.button.Label(), func(t *testing.T) {
			c := newTestController()
			c.TogglePause()

			if err := c.Press(tc.button); err != nil {
				t.Fatalf("Press(%s) error: %v", tc.button, err)
			}
			if c.Active() != tc.expected {
				t.Errorf("Active() = %s, expected %s", c.Active(), tc.expected)
			}
			if c.ClearBackground() != tc.clear {
				t.Errorf("ClearBackground() = %v, expected %v", c.ClearBackground(), tc.clear)
			}
			if !c.Paused() {
				t.Error("effect buttons should not unpause")
			}
		})
	}
}

func TestResumeKeepsEffect(t *testing.T) {
	c := newTestController()
	c.TogglePause()
	if err := c.Press(menu.FadeButton); err != nil {
		t.Fatal(err)
	}

	if err := c.Press(menu.Resume); err != nil {
		t.Fatal(err)
	}
	if c.Paused() {
		t.Error("Resume should unpause")
	}
	if c.Active() != effects.Fade || c.ClearBackground() {
		t.Errorf("Resume changed state: active=%s clear=%v", c.Active(), c.ClearBackground())
	}
}

func TestPressUnknownButton(t *testing.T) {
	c := newTestController()
	err := c.Press(menu.Button(12))
	if !errors.Is(err, menu.ErrUnknownButton) {
		t.Fatalf("Press(12) error = %v, expected ErrUnknownButton", err)
	}
	if !strings.Contains(err.Error(), "12") {
		t.Errorf("error %q should name the slot", err)
	}
}

func TestAspectKeysClamp(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		action   core.Action
		expected int
	}{
		{"decrement at min", 1, core.ActionAspectDown, 1},
		{"increment at max", 50, core.ActionAspectUp, 50},
		{"decrement", 30, core.ActionAspectDown, 29},
		{"increment", 30, core.ActionAspectUp, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			c.SetAspect(tc.start)
			c.TogglePause()

			c.HandleInput(press(tc.action))
			if c.Aspect() != tc.expected {
				t.Errorf("Aspect() = %d, expected %d", c.Aspect(), tc.expected)
			}
		})
	}
}

func TestRepeatedPressesInOneFrame(t *testing.T) {
	c := newTestController()

	c.HandleInput(press(core.ActionPause, core.ActionPause))
	if c.Paused() {
		t.Fatal("two pause presses should leave the controller running")
	}

	c.TogglePause()
	c.HandleInput(press(core.ActionAspectDown, core.ActionAspectDown))
	if c.Aspect() != 28 {
		t.Errorf("Aspect() = %d, expected 28 after two presses", c.Aspect())
	}

	c.HandleInput(press(core.ActionAspectUp, core.ActionAspectUp, core.ActionAspectUp, core.ActionAspectDown))
	if c.Aspect() != 30 {
		t.Errorf("Aspect() = %d, expected 30 after a net step of two", c.Aspect())
	}
}

func TestAspectKeysIgnoredWhileRunning(t *testing.T) {
	c := newTestController()
	c.HandleInput(press(core.ActionAspectUp))
	if c.Aspect() != 30 {
		t.Errorf("Aspect() = %d, expected unchanged 30", c.Aspect())
	}
}

func TestSpinnerEditModeOwnsArrows(t *testing.T) {
	c := newTestController()
	c.TogglePause()
	cv := &canvas{w: 600, h: 600}

	// Clicking the spinner enters edit mode
	w := &widgets{clickSpin: true}
	if err := c.Frame(cv, w); err != nil {
		t.Fatal(err)
	}
	if !c.SpinnerEdit() {
		t.Fatal("spinner click should enter edit mode")
	}

	// Keys no longer go through the input path
	c.HandleInput(press(core.ActionAspectUp))
	if c.Aspect() != 30 {
		t.Errorf("Aspect() = %d, expected 30 while spinner edits", c.Aspect())
	}

	// The spinner adjusts and clamps on its own
	c.SetAspect(49)
	w = &widgets{spinDelta: 5}
	if err := c.Frame(cv, w); err != nil {
		t.Fatal(err)
	}
	if !w.seenEdit {
		t.Error("spinner should be drawn in edit mode")
	}
	if c.Aspect() != 50 {
		t.Errorf("Aspect() = %d, expected 50", c.Aspect())
	}

	// A second click leaves edit mode
	if err := c.Frame(cv, &widgets{clickSpin: true}); err != nil {
		t.Fatal(err)
	}
	if c.SpinnerEdit() {
		t.Error("second spinner click should leave edit mode")
	}
}

func TestPausedFrameDrawsMenu(t *testing.T) {
	c := newTestController()
	c.TogglePause()
	cv := &canvas{w: 600, h: 600}
	w := &widgets{click: map[string]bool{"LERP": true}}

	if err := c.Frame(cv, w); err != nil {
		t.Fatal(err)
	}
	if cv.clears != 1 {
		t.Errorf("paused frame cleared %d times, expected 1", cv.clears)
	}
	if len(w.seenButtons) != len(menu.Buttons()) {
		t.Errorf("drew %d buttons, expected %d", len(w.seenButtons), len(menu.Buttons()))
	}
	if c.Active() != effects.Lerp {
		t.Errorf("clicking LERP selected %s", c.Active())
	}

	joined := strings.Join(cv.texts, "|")
	if !strings.Contains(joined, "PAUSED") || !strings.Contains(joined, "Aspect: 30") {
		t.Errorf("paused texts = %q, expected title and aspect label", joined)
	}
}

func TestRunningFrameRespectsClearFlag(t *testing.T) {
	c := newTestController()
	cv := &canvas{w: 60, h: 60}

	if err := c.Frame(cv, &widgets{}); err != nil {
		t.Fatal(err)
	}
	if cv.clears != 1 || cv.fills != 4 {
		t.Errorf("static frame: clears=%d fills=%d, expected 1 and 4", cv.clears, cv.fills)
	}

	c.TogglePause()
	if err := c.Press(menu.FadeButton); err != nil {
		t.Fatal(err)
	}
	c.TogglePause()

	cv = &canvas{w: 60, h: 60}
	if err := c.Frame(cv, &widgets{}); err != nil {
		t.Fatal(err)
	}
	if cv.clears != 0 {
		t.Errorf("fade frame cleared %d times, expected 0", cv.clears)
	}
}
