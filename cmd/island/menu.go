package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-of-structure/internal/games/island"
	"github.com/vovakirdan/island-of-structure/internal/platform/tui"
	"github.com/vovakirdan/island-of-structure/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode. After a mode ends you return to the
menu. Tab opens the arena scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scores
  Q            - Quit

Examples:
  island menu
  island menu --fps 60`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, island.ArenaBoard, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.ModeID)
		if err != nil {
			logger.Error("creating mode", "mode", res.ModeID, "error", err)
			continue
		}

		// A fixed --seed only applies to the first run.
		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("running mode", "mode", res.ModeID, "error", err)
		}
		cfg.Seed = time.Now().UnixNano()
	}
}
