package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-of-structure/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Print the default config, or check a custom one",
	Long: `Without arguments, print the built-in island config as YAML. Save it
to ~/.island/configs/island.yaml or pass it with --config to tune
difficulty ramps, board sizes, the feedback delay and the arena.

With a file argument, parse and validate it.

Examples:
  island config > my-island.yaml
  island config my-island.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (feedback delay %s, arena %ds, checkpoint every %d)\n",
		args[0], cfg.Progression.FeedbackDelay(), cfg.Arena.DurationSecs, cfg.Progression.CheckpointAt)
	return nil
}
