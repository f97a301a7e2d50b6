// omegavoid is a top-down space trading and combat game played in the
// terminal: an infinite procedural world of stations, asteroid fields and
// nav beacons, explored one viewport at a time.
//
// Usage:
//
//	omegavoid play           - Start or resume a game
//	omegavoid world          - Inspect procedural generation
//	omegavoid saves          - Manage save slots
//	omegavoid serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set world seed (0 = random based on time)
//	--db <path>      - Set database path (default: ~/.omegavoid/saves.db)
//	--config <path>  - Path to a config YAML overriding the defaults
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "omegavoid",
	Short: "Omega Void - space trading and combat in your terminal",
	Long: `Omega Void is a terminal space game: fly an infinite procedural
sector, trade between stations, fight off pirates and chase nav beacons.

Available commands:
  play     - Start or resume a game
  world    - Inspect what the generator puts in a cell
  saves    - List or delete save slots
  serve    - Start SSH server for remote play

Examples:
  omegavoid play
  omegavoid play --seed 1337
  omegavoid play --resume --slot 2
  omegavoid world 3 -4
  omegavoid serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.omegavoid/saves.db", "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}
