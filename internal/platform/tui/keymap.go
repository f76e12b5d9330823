package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tvstatic/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Pause      key.Binding
	AspectDown key.Binding
	AspectUp   key.Binding
	Next       key.Binding
	Prev       key.Binding
	Confirm    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.AspectDown, k.AspectUp, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.AspectDown, k.AspectUp},
		{k.Next, k.Prev, k.Confirm},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause menu"),
		),
		AspectDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller tiles"),
		),
		AspectUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger tiles"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("S-tab/↑", "prev button"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.AspectDown):
		frame.Set(core.ActionAspectDown)
	case key.Matches(msg, k.AspectUp):
		frame.Set(core.ActionAspectUp)
	case key.Matches(msg, k.Next):
		frame.Set(core.ActionMenuNext)
	case key.Matches(msg, k.Prev):
		frame.Set(core.ActionMenuPrev)
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	}
	return false
}
