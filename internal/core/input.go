package core

// Action represents a semantic input intent, abstracted from physical key presses.
// Both frontends translate their own key events into actions so the controller
// never sees toolkit types.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // P - toggle the pause menu
	ActionFullscreen        // F11 - toggle fullscreen (window only)
	ActionAspectDown        // Left arrow - shrink tiles
	ActionAspectUp          // Right arrow - grow tiles
	ActionMenuNext          // Tab, Down - focus next menu entry (terminal only)
	ActionMenuPrev          // Shift+Tab, Up - focus previous menu entry (terminal only)
	ActionConfirm           // Enter, Space - press the focused menu entry
	ActionQuit              // Esc, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionAspectDown:
		return "AspectDown"
	case ActionAspectUp:
		return "AspectUp"
	case ActionMenuNext:
		return "MenuNext"
	case ActionMenuPrev:
		return "MenuPrev"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one frame.
// It counts how often each action was triggered, so repeated key presses
// between two frames are not merged.
type InputFrame struct {
	// Actions maps action types to the number of times they were triggered.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one press of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	return f.Actions[a]
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a] > 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, n := range f.Actions {
		if n > 0 {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
