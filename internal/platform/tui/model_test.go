package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tvstatic/internal/app"
	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/effects"
	"github.com/vovakirdan/tvstatic/internal/menu"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctrl := app.New(app.Options{
		Effect: effects.Static,
		Aspect: 30,
		Config: core.RuntimeConfig{Seed: 1},
	})
	return NewModel(ctrl, Options{Width: 80, Height: 40, FPS: 30}, log.New(io.Discard))
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"pause", keyRune('p'), core.ActionPause, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAspectDown, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionAspectUp, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionMenuNext, false},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionMenuPrev, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"q", keyRune('q'), core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := keys.MapKeyToFrame(tc.msg, &frame)
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if !frame.Has(tc.expected) {
				t.Errorf("expected %s, got %v", tc.expected, frame.Actions)
			}
		})
	}

	frame := core.NewInputFrame()
	keys.MapKeyToFrame(keyRune('x'), &frame)
	if !frame.Empty() {
		t.Errorf("unbound key set actions %v", frame.Actions)
	}
}

func TestPauseAndKeyboardMenu(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keyRune('p'), TickMsg{})
	if !m.ctrl.Paused() {
		t.Fatal("p should pause on the next tick")
	}

	// Focus starts on Resume; one Tab moves to the bars button.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.ctrl.Active() != effects.Bars {
		t.Errorf("Active() = %s, expected bars", m.ctrl.Active())
	}

	// Back to Resume and press it
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.ctrl.Paused() {
		t.Error("Resume should unpause")
	}
	if m.ctrl.Active() != effects.Bars {
		t.Errorf("Resume changed effect to %s", m.ctrl.Active())
	}
}

func TestMouseClickPressesButton(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyRune('p'), TickMsg{})

	w, h := m.screen.Size()
	var target core.Rect
	for _, it := range menu.Place(w, h).Items {
		if it.Button == menu.LerpButton {
			target = it.Rect
		}
	}
	cx, cy := target.Center()

	m = send(t, m, tea.MouseMsg{
		X:      cx / core.CellWidth,
		Y:      cy / core.CellHeight,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, TickMsg{})

	if m.ctrl.Active() != effects.Lerp {
		t.Errorf("Active() = %s, expected lerp after clicking its button", m.ctrl.Active())
	}
}

func TestSpinnerEditWithKeyboard(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyRune('p'), TickMsg{})

	// Outside edit mode the arrows go through the controller
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{})
	if m.ctrl.Aspect() != 31 {
		t.Fatalf("Aspect() = %d, expected 31", m.ctrl.Aspect())
	}

	// Focus the spinner (last control) and enter edit mode
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if !m.ctrl.SpinnerEdit() {
		t.Fatal("Enter on the spinner should enter edit mode")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, TickMsg{})
	if m.ctrl.Aspect() != 30 {
		t.Errorf("Aspect() = %d, expected 30 after one step in edit mode", m.ctrl.Aspect())
	}
}

func TestKeyRepeatBetweenTicks(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyRune('p'), TickMsg{})

	left := tea.KeyMsg{Type: tea.KeyLeft}
	m = send(t, m, left, left, TickMsg{})
	if m.ctrl.Aspect() != 28 {
		t.Errorf("Aspect() = %d, expected 28 after two presses in one tick", m.ctrl.Aspect())
	}

	m = send(t, m, keyRune('p'), keyRune('p'), TickMsg{})
	if !m.ctrl.Paused() {
		t.Error("two pause presses in one tick should leave the menu open")
	}

	// The spinner counts presses in edit mode too
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	m = send(t, m, left, left, left, TickMsg{})
	if m.ctrl.Aspect() != 25 {
		t.Errorf("Aspect() = %d, expected 25 after three presses in edit mode", m.ctrl.Aspect())
	}

	// Focus wraps by the number of presses
	tab := tea.KeyMsg{Type: tea.KeyTab}
	m = send(t, m, tab, tab, TickMsg{})
	if m.focus != 1 {
		t.Errorf("focus = %d, expected 1 after wrapping past the spinner", m.focus)
	}
}

func TestResizeAndHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.screen.Width() != 50 || m.screen.Height() != 20-shortHelpRows {
		t.Errorf("screen = %dx%d, expected 50x%d", m.screen.Width(), m.screen.Height(), 20-shortHelpRows)
	}

	m = send(t, m, keyRune('?'))
	if m.screen.Height() != 20-fullHelpRows {
		t.Errorf("screen height with full help = %d, expected %d", m.screen.Height(), 20-fullHelpRows)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(core.CellWidth, core.CellHeight, "hi", core.White)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(out, string(upperHalf)) {
		t.Error("dot cells should render as half blocks")
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("line 1 = %q, expected the text", lines[1])
	}
}
