package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/platform/tui"
	"github.com/vovakirdan/island-of-structure/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode: "island" for the full journey (default)
or "arena" for the 60-second multiplication drill.

Controls:
  Arrows/WASD  - Move the cursor
  1-9          - Pick an option or world, type an answer
  Space        - Select, add a brick, toggle a cell
  Enter        - Submit, check, continue
  Backspace    - Clear the answer or the piles
  Esc          - Back to the map
  R            - Restart the drill after time runs out
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  island play
  island play arena
  island play --seed 7 --config ./my-island.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "island"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'island list' to see available modes)", modeID)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("creating mode: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", modeID, err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the flags and the current
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
