package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/market"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

var worldCmd = &cobra.Command{
	Use:   "world <cellX> <cellY>",
	Short: "Inspect procedural generation",
	Long: `Print what the generator puts in a world cell for the given seed.

Useful for checking that a seed produces the same layout across runs,
and for scouting station economies without flying there.

Examples:
  omegavoid world 0 0
  omegavoid world 3 -4 --seed 1337`,
	Args: cobra.ExactArgs(2),
	Run:  runWorld,
}

func runWorld(cmd *cobra.Command, args []string) {
	cx, errX := strconv.ParseInt(args[0], 10, 64)
	cy, errY := strconv.ParseInt(args[1], 10, 64)
	if errX != nil || errY != nil {
		fmt.Fprintln(os.Stderr, "Error: cell coordinates must be integers")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	w := world.New(flagSeed, cfg.World)
	objs := w.CellObjects(cx, cy)

	fmt.Printf("Seed %d, cell (%d, %d): %d objects\n\n", flagSeed, cx, cy, len(objs))
	for _, o := range objs {
		switch o.Kind {
		case world.KindStation:
			fmt.Printf("  station  %-22s %-14q pos=(%.0f, %.0f) size=%.0f economy=%s tech=%d\n",
				o.ID, o.Name, o.Pos.X, o.Pos.Y, o.Size, o.Economy, o.TechLevel)
			printMarket(o)
		case world.KindAsteroid:
			fmt.Printf("  asteroid %-22s orbit center=(%.0f, %.0f) radius=%.0f size=%.0f\n",
				o.ID, o.OrbitCenter.X, o.OrbitCenter.Y, o.OrbitRadius, o.Size)
		case world.KindStar:
			fmt.Printf("  star     %-22s pos=(%.0f, %.0f)\n", o.ID, o.Pos.X, o.Pos.Y)
		}
	}
}

func printMarket(o world.Object) {
	table := market.Generate(o.ID, o.Economy, o.TechLevel)
	for _, c := range market.Commodities {
		price, ok := table.Prices[c.Key]
		if !ok {
			continue
		}
		fmt.Printf("           %-12s price=%-4d stock=%d\n", c.Key, price, table.Quantities[c.Key])
	}
}
