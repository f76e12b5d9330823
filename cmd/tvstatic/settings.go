package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tvstatic/internal/app"
	"github.com/vovakirdan/tvstatic/internal/config"
)

// loadConfig reads the config file, applies the flags the user set and
// validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Window.FPS = flagFPS
		cfg.Terminal.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Display.Seed = flagSeed
	}
	if flags.Changed("aspect") {
		cfg.Display.Aspect = flagAspect
	}
	if flags.Changed("effect") {
		cfg.Display.Effect = flagEffect
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tvstatic",
	})
	if lvl, err := config.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLog returns the writer for terminal mode logs. An empty path discards
// them; the terminal itself belongs to the alternate screen.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// newController builds the controller from the loaded config.
func newController(cfg config.Config, logger *log.Logger) *app.Controller {
	return app.New(app.Options{
		Effect: cfg.Effect(),
		Aspect: cfg.Display.Aspect,
		Config: cfg.Runtime(),
		Logger: logger,
	})
}
