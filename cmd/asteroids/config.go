package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would use, as YAML.

Search order:
  1. --config path
  2. ~/.arcade/configs/asteroids.yaml
  3. ./configs/asteroids.yaml
  4. embedded defaults

The output can be saved and edited as a custom config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printConfig(cmd.OutOrStdout(), flagConfig)
	},
}

func printConfig(w io.Writer, path string) error {
	cfg, source, err := config.LoadAsteroids(path)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(data)
	return err
}
