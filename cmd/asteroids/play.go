package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant in the terminal (default: asteroids).

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  Enter            - Start
  R                - Restart (after game over)
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Variants:
  asteroids        - fire cooldown counted in milliseconds
  asteroids_fixed  - fire cooldown counted in ticks

Examples:
  asteroids play
  asteroids play asteroids_fixed
  asteroids play --config ./my-asteroids.yaml --log-file game.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := asteroids.IDWallClock
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'asteroids list' to see variants)", err)
	}

	cfg := terminalConfig()
	if _, err := tui.Run(game, cfg, sessionOptions()); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// sessionOptions reads the key hold window from the game config.
func sessionOptions() tui.Options {
	opts := tui.Options{Logger: sessionLogger}
	cfg, _, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		sessionLogger.Warn("using default key hold", "error", err)
		return opts
	}
	opts.KeyHold = time.Duration(cfg.Input.KeyHoldMs) * time.Millisecond
	return opts
}
