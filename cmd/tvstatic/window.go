package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tvstatic/internal/config"
	"github.com/vovakirdan/tvstatic/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the screensaver window",
	Long: `Open a resizable window and start rendering.

Controls:
  P          - Pause menu
  Left/Right - Tile size (while paused)
  F11        - Toggle fullscreen
  Esc        - Quit

Examples:
  tvstatic window
  tvstatic window --effect wash --fps 60`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg)
	ctrl := newController(cfg, logger)

	return window.Run(ctrl, windowOptions(cfg), logger)
}

// windowOptions takes the surface size and frame rate from the runtime
// settings the controller was built with.
func windowOptions(cfg config.Config) window.Options {
	rt := cfg.Runtime()
	return window.Options{
		Title:     cfg.Window.Title,
		Width:     rt.ScreenW,
		Height:    rt.ScreenH,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
		FPS:       rt.TickRate,
	}
}
