// Command dolltower-sim runs one batch from a YAML config and writes the
// summaries and event log as CSV for offline economy tuning.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/xtding233/dolltower-backend/internal/dolltower"
	"github.com/xtding233/dolltower-backend/internal/game"
	"github.com/xtding233/dolltower-backend/internal/report"
)

func main() {
	configPath := flag.String("config", "config.yaml", "batch configuration file")
	outDir := flag.String("out", ".", "directory for summaries.csv and events.csv")
	seed := flag.Uint64("seed", 0, "master seed override (0 keeps the config value)")
	games := flag.Int("games", 0, "total games override (0 keeps the config value)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := game.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *games != 0 {
		cfg.TotalGames = *games
	}

	batchCfg, warnings, err := game.Resolve(cfg)
	if err != nil {
		logger.Fatal("resolve config", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Warn("config warning", zap.String("detail", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := dolltower.RunBatch(ctx, batchCfg)
	if err != nil {
		logger.Fatal("run batch", zap.Error(err))
	}
	stats := dolltower.Summarize(result)
	logger.Info("batch complete",
		zap.Int("games", batchCfg.TotalGames),
		zap.Int("failed", result.Failed),
		zap.Float64("mean_rounds", stats.Rounds.Mean),
		zap.Float64("mean_gifts", stats.Gifts.Mean),
		zap.Float64("mean_leftover", stats.Leftover.Mean),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := writeCSV(filepath.Join(*outDir, "summaries.csv"), func(f *os.File) error {
		return report.WriteSummaries(f, result.Summaries)
	}); err != nil {
		logger.Fatal("write summaries", zap.Error(err))
	}
	if err := writeCSV(filepath.Join(*outDir, "events.csv"), func(f *os.File) error {
		return report.WriteEvents(f, result.Events)
	}); err != nil {
		logger.Fatal("write events", zap.Error(err))
	}
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
