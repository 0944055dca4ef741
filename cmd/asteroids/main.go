// asteroids is a vector-style Asteroids game for the terminal and the desktop.
//
// Usage:
//
//	asteroids list               - List available variants
//	asteroids play [variant]     - Play in the terminal
//	asteroids menu               - Pick a variant interactively
//	asteroids window [variant]   - Play in an 800x600 window
//	asteroids config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom game config YAML
//	--log-file <path>    - Write logs to a file ("-" for stderr)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - Blast rocks in your terminal",
	Long: `Asteroids is a vector-style arcade game. Steer the ship, thrust
through wrapped space and shoot the rocks before they hit you.

Available commands:
  list     - Show all available variants
  play     - Play a variant in the terminal
  menu     - Interactive variant picker
  window   - Play in a desktop window
  config   - Print the effective game configuration

Examples:
  asteroids play
  asteroids play asteroids_fixed --fps 30
  asteroids menu
  asteroids window --seed 42
  asteroids config --config ./my-asteroids.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(flagLogFile, flagLogLevel)
		if err != nil {
			return err
		}
		sessionLogger = logger
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetLogger(logger)
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLog()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" = stderr, empty = no logs)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
