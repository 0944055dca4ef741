package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/window"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play the given variant (default: asteroids).

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  Enter            - Start
  R                - Restart (after game over)
  Q/Esc            - Quit

Examples:
  asteroids window
  asteroids window asteroids_fixed --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := asteroids.IDWallClock
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'asteroids list' to see variants)", err)
	}
	session, ok := game.(window.Session)
	if !ok {
		return fmt.Errorf("window: %q cannot be drawn in a window", gameID)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  window.DefaultWidth,
		ScreenH:  window.DefaultHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return window.Run(session, cfg, window.Options{
		Title:  game.Title(),
		Logger: sessionLogger,
	})
}
