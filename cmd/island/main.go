// island is a terminal math adventure: six worlds of structure-spotting
// puzzles that end in a timed multiplication arena.
//
// Usage:
//
//	island play [mode]       - Play a mode (default: island)
//	island menu              - Pick a mode interactively
//	island list              - List available modes
//	island worlds            - Show the worlds and their unlock chain
//	island scores            - Show arena high scores
//	island serve             - Start SSH server for remote play
//	island config            - Print or check the island config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible problems
//	--db <path>      - Set database path (default: ~/.island/scores.db)
//	--config <path>  - Use a custom island config YAML
//
// ISLAND_FPS, ISLAND_SEED, ISLAND_DB and ISLAND_CONFIG set the same values;
// flags win over the environment.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/games/island"
	"github.com/vovakirdan/island-of-structure/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "island"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "island",
	Short: "Island of Structure - a math adventure in your terminal",
	Long: `Island of Structure is a terminal math game. Travel from the Gate to
the Arena, solving ten puzzles in each world to unlock the next.

Available commands:
  play     - Play the journey or the arena drill
  menu     - Interactive mode picker
  list     - Show all modes
  worlds   - Show the worlds in unlock order
  scores   - View arena high scores
  serve    - Start SSH server for remote play
  config   - Print the default config or check a custom one

Examples:
  island play
  island play arena --seed 42
  island menu
  island serve --ssh :2222
  island scores`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom island config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills every global flag the user did not pass from ISLAND_*
// variables, then points the island at its config file.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") && e.FPS > 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !flags.Changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}

	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			logger.Warn("falling back to the default island config", "error", err)
		}
	}
	island.SetConfigPath(flagConfig)
	return nil
}

// openStore opens the scores database, or returns nil with a warning so
// play can go on without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
