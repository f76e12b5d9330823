// Package config provides YAML-based configuration loading for the
// screensaver: window options, the initial effect and tile size, terminal
// settings and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/effects"
	"github.com/vovakirdan/tvstatic/internal/menu"
)

// Config contains all configuration for tvstatic.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Display  DisplayConfig  `yaml:"display"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	FPS       int    `yaml:"fps"`
}

// DisplayConfig defines what is drawn at startup.
type DisplayConfig struct {
	Effect string `yaml:"effect"` // Effect ID, see effects.List
	Aspect int    `yaml:"aspect"` // Tile edge in pixels, 1 to 50
	Seed   int64  `yaml:"seed"`   // 0 = seed from the clock and reseed every frame
}

// TerminalConfig defines the terminal frontend.
type TerminalConfig struct {
	FPS   int  `yaml:"fps"`
	Mouse bool `yaml:"mouse"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Terminal mode only; empty discards output
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges and the effect name.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: window fps %d must be positive", ErrInvalid, c.Window.FPS))
	}
	if c.Terminal.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: terminal fps %d must be positive", ErrInvalid, c.Terminal.FPS))
	}
	if c.Display.Aspect < menu.AspectMin || c.Display.Aspect > menu.AspectMax {
		errs = append(errs, fmt.Errorf("%w: aspect %d outside [%d, %d]", ErrInvalid, c.Display.Aspect, menu.AspectMin, menu.AspectMax))
	}
	if _, err := effects.Parse(c.Display.Effect); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Effect returns the configured startup effect, Static if unknown.
func (c Config) Effect() effects.Effect {
	e, err := effects.Parse(c.Display.Effect)
	if err != nil {
		return effects.Static
	}
	return e
}

// Runtime converts the window settings into a core.RuntimeConfig.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Window.Width,
		ScreenH:  c.Window.Height,
		TickRate: c.Window.FPS,
		Seed:     c.Display.Seed,
	}
}
