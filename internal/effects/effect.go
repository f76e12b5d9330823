// Package effects renders the screensaver patterns. Every effect paints a
// grid of square tiles onto a core.Canvas using colors drawn from a shared
// prng.Random, so a fixed seed always produces the same frame.
package effects

// Effect identifies one of the built-in patterns.
type Effect int

const (
	Static Effect = iota // Independent random color per tile
	Bars                 // Full-height vertical bars, one color each
	Fade                 // Grayscale flicker drawn without clearing
	Lerp                 // Each tile interpolates from the previous one
	Spiral               // Square spiral from the center, one color per leg
	Wash                 // Whole-screen color drifting between frames
	Scroll               // Pre-generated colors sliding across the grid
)

// String returns the identifier used on the command line and in config files.
func (e Effect) String() string {
	switch e {
	case Static:
		return "static"
	case Bars:
		return "bars"
	case Fade:
		return "fade"
	case Lerp:
		return "lerp"
	case Spiral:
		return "spiral"
	case Wash:
		return "wash"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name for display.
func (e Effect) Title() string {
	switch e {
	case Static:
		return "Static"
	case Bars:
		return "CRT Bars"
	case Fade:
		return "Fade"
	case Lerp:
		return "Lerp"
	case Spiral:
		return "Spiral"
	case Wash:
		return "Whole Screen"
	case Scroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is one of the built-in effects.
func (e Effect) Valid() bool {
	return e >= Static && e <= Scroll
}

// ClearsBackground reports whether the frame should be cleared before e is
// drawn. Fade paints over the previous frame so its tiles accumulate.
func (e Effect) ClearsBackground() bool {
	return e != Fade
}
