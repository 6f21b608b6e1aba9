package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/render"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
)

var (
	width          int
	height         int
	roomGenTries   int
	extraConnector int
	extraRoomSize  int
	winding        int
	seed           uint64

	format      string
	showRegions bool
	showRoute   bool
	showGraph   bool
)

var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tile-grid dungeon",
	Long: `Generate a dungeon of rooms and winding corridors and print it to stdout.

Examples:
  generate --seed 42
  generate -W 81 -H 41 --tries 300 --regions
  generate --seed 7 --format json --graph
  generate batch -n 10 --seed 100`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	defaults := generation.DefaultConfig()

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&width, "width", "W", defaults.Width, "Stage width (odd, at least 3)")
	flags.IntVarP(&height, "height", "H", defaults.Height, "Stage height (odd, at least 3)")
	flags.IntVarP(&roomGenTries, "tries", "t", defaults.RoomGenTries, "Room placement attempts")
	flags.IntVar(&extraConnector, "extra-connector", defaults.ExtraConnectorChance, "Percent chance a redundant connector becomes a door")
	flags.IntVar(&extraRoomSize, "extra-room-size", defaults.ExtraRoomSize, "Widens the range of room sizes")
	flags.IntVar(&winding, "winding", defaults.WindingPercent, "Percent chance a corridor turns")
	flags.Uint64VarP(&seed, "seed", "s", 0, "Random seed (default: drawn from the clock)")

	rootCmd.Flags().StringVarP(&format, "format", "f", "ascii", "Output format: ascii or json")
	rootCmd.Flags().BoolVarP(&showRegions, "regions", "r", false, "Draw floor cells with their region glyph")
	rootCmd.Flags().BoolVar(&showRoute, "route", false, "Overlay the walk from the first room to the last (ascii)")
	rootCmd.Flags().BoolVar(&showGraph, "graph", false, "Include the region graph (json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// flagConfig builds a generator config from the command line
func flagConfig(cmd *cobra.Command) generation.Config {
	cfg := generation.Config{
		Width:                width,
		Height:               height,
		RoomGenTries:         roomGenTries,
		ExtraConnectorChance: extraConnector,
		ExtraRoomSize:        extraRoomSize,
		WindingPercent:       winding,
	}
	if cmd.Flags().Changed("seed") {
		cfg = cfg.WithSeed(seed)
	}
	return cfg
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := generation.Generate(flagConfig(cmd))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	palette := render.DefaultPalette()
	out := cmd.OutOrStdout()

	switch format {
	case "ascii":
		opts := render.Options{Regions: showRegions}
		if rooms := d.Rooms(); showRoute && len(rooms) > 1 {
			opts.Route = d.FindPath(rooms[0].Center(), rooms[len(rooms)-1].Center())
		}
		fmt.Fprint(out, render.ASCII(d, palette, opts))
		fmt.Fprintf(cmd.ErrOrStderr(), "seed %d: %d rooms, %d regions, %d doors (%d extra), %d cells pruned\n",
			d.Seed, d.Stats.Rooms, d.Stats.Regions, d.Stats.Doors, d.Stats.ExtraDoors, d.Stats.Pruned)

	case "json":
		resp := services.BuildResponse(d, palette, services.ResponseOptions{Regions: showRegions, Graph: showGraph})
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))

	default:
		return fmt.Errorf("unknown format %q (use ascii or json)", format)
	}

	return nil
}
