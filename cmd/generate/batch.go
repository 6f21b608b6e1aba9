package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThePyromage/dungeonGenerator/internal/config"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
)

var (
	batchCount   int
	batchWorkers int
)

func init() {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many dungeons in parallel",
		Long: `Generate several dungeons at once, seeded consecutively, and print one
JSON summary per line in seed order.

Examples:
  generate batch -n 20
  generate batch -n 8 --seed 100 --workers 2`,
		RunE: runBatch,
	}

	batchCmd.Flags().IntVarP(&batchCount, "number", "n", 4, "Number of dungeons to generate")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "j", 4, "Dungeons generated at once")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchCount < 1 {
		return fmt.Errorf("count %d: %w", batchCount, services.ErrBatchSize)
	}
	cfg := flagConfig(cmd)

	appCfg := config.Default()
	appCfg.MaxBatch = batchCount
	appCfg.Workers = batchWorkers
	appCfg.CacheSize = 0
	appCfg.MaxWidth = max(cfg.Width, 3)
	appCfg.MaxHeight = max(cfg.Height, 3)
	if err := appCfg.Validate(); err != nil {
		return err
	}

	svc := services.NewDungeonService(appCfg)
	dungeons, err := svc.GenerateBatch(cmd.Context(), cfg, batchCount)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, d := range dungeons {
		if err := enc.Encode(services.Summary(d)); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}
