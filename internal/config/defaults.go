package config

import (
	_ "embed"

	"github.com/vovakirdan/tvstatic/internal/core"
)

//go:embed defaults/tvstatic.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	rt := core.DefaultConfig()
	return Config{
		Window: WindowConfig{
			Title:     "Tv-Static",
			Width:     rt.ScreenW,
			Height:    rt.ScreenH,
			Resizable: true,
			VSync:     true,
			FPS:       rt.TickRate,
		},
		Display: DisplayConfig{
			Effect: "static",
			Aspect: 30,
			Seed:   rt.Seed,
		},
		Terminal: TerminalConfig{
			FPS:   rt.TickRate,
			Mouse: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
