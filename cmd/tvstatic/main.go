// tvstatic is a TV-static screensaver that fills a window, or the terminal,
// with pseudo-random tile patterns.
//
// Usage:
//
//	tvstatic                 - Open the screensaver window
//	tvstatic window          - Same as above
//	tvstatic term            - Run inside the terminal
//	tvstatic effects         - List available effects
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tvstatic/config.yaml)
//	--fps <rate>        - Frame rate (default: 30)
//	--seed <value>      - Fixed RNG seed; disables per-frame reseeding
//	--aspect <px>       - Tile size, 1 to 50 (default: 30)
//	--effect <id>       - Starting effect (default: static)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagAspect   int
	flagEffect   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tvstatic",
	Short: "Tv-Static - a screensaver of random tiles",
	Long: `Tv-Static fills a window with pseudo-random tile patterns: static noise,
CRT bars, fades, color lerps, spirals, whole-screen washes and a scrolling
buffer. Press P to open the pause menu and pick an effect.

Available commands:
  window   - Open the screensaver window (default)
  term     - Run the screensaver inside the terminal
  effects  - List available effects

Examples:
  tvstatic
  tvstatic --effect spiral --aspect 10
  tvstatic term --seed 42
  tvstatic effects`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	registerGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(effectsCmd)
}

// registerGlobalFlags adds the persistent flags shared by every subcommand.
func registerGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	cmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	cmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, reseeded every frame)")
	cmd.PersistentFlags().IntVar(&flagAspect, "aspect", 30, "Tile size in pixels (1-50)")
	cmd.PersistentFlags().StringVar(&flagEffect, "effect", "static", "Starting effect (see 'tvstatic effects')")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}
