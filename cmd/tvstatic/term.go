package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tvstatic/internal/platform/tui"
)

var (
	flagLogFile string
	flagNoMouse bool
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the screensaver in the terminal",
	Long: `Render the screensaver in the terminal using half-block characters.
Each character cell shows two tiles-worth of dots, so a cell counts as
8x16 pixels when sizing tiles.

Controls:
  P              - Pause menu
  Left/Right     - Tile size (while paused)
  Tab/Shift+Tab  - Move between menu buttons
  Enter/Space    - Press the focused button
  Mouse click    - Press a button
  ?              - Toggle help
  Q/Esc/Ctrl+C   - Quit

Examples:
  tvstatic term
  tvstatic term --effect spiral --aspect 8
  tvstatic term --log-file /tmp/tvstatic.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	termCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse support")
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagNoMouse {
		cfg.Terminal.Mouse = false
	}

	w, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger := newLogger(w, cfg)
	ctrl := newController(cfg, logger)

	// Get terminal size early; the first resize message replaces it
	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	return tui.Run(ctrl, tui.Options{
		Width:  width,
		Height: height,
		FPS:    cfg.Terminal.FPS,
		Mouse:  cfg.Terminal.Mouse,
	}, logger)
}
