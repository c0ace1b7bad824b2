package dolltower

import (
	"context"
	"errors"
	"testing"
)

func baseBatchConfig(t *testing.T) BatchConfig {
	t.Helper()
	return BatchConfig{
		Palette:      nineEqualPalette(t),
		InitialDraw:  9,
		ExchangeRate: 18,
		TotalGames:   40,
		MaxRounds:    100,
		MilkSchedule: []int{0, 0, 0},
		Seed:         1234,
	}
}

func TestRunBatchDeterministicAcrossWorkerCounts(t *testing.T) {
	cfg := baseBatchConfig(t)

	cfg.Workers = 1
	seq, err := RunBatch(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 8
	par, err := RunBatch(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(seq.Summaries) != len(par.Summaries) {
		t.Fatalf("summary counts differ: %d vs %d", len(seq.Summaries), len(par.Summaries))
	}
	for i := range seq.Summaries {
		if seq.Summaries[i] != par.Summaries[i] {
			t.Fatalf("game %d differs between worker counts: %+v vs %+v", i+1, seq.Summaries[i], par.Summaries[i])
		}
	}
}

func TestRunBatchSummariesOrderedByGame(t *testing.T) {
	cfg := baseBatchConfig(t)
	cfg.Workers = 4
	res, err := RunBatch(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range res.Summaries {
		if s.GameID != i+1 {
			t.Fatalf("summary %d has game id %d", i, s.GameID)
		}
	}
	if res.Failed != 0 {
		t.Fatalf("unexpected failed games: %d", res.Failed)
	}
}

func TestRunBatchConfigurationErrors(t *testing.T) {
	cases := []func(*BatchConfig){
		func(c *BatchConfig) { c.WishColors = []Color{"nope"} },
		func(c *BatchConfig) { c.InitialDraw = 0 },
		func(c *BatchConfig) { c.ExchangeRate = 0 },
		func(c *BatchConfig) { c.TotalGames = 0 },
		func(c *BatchConfig) { c.MaxRounds = 0 },
		func(c *BatchConfig) { c.MilkSchedule = []int{1, -1} },
		func(c *BatchConfig) { c.Palette = nil },
	}
	for i, mutate := range cases {
		cfg := baseBatchConfig(t)
		mutate(&cfg)
		res, err := RunBatch(context.Background(), cfg)
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("case %d: want ErrConfiguration, got %v", i, err)
		}
		if res != nil {
			t.Fatalf("case %d: no partial results on config error", i)
		}
	}
}

func TestRunBatchCancelled(t *testing.T) {
	cfg := baseBatchConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRunOneIsolatesPanics(t *testing.T) {
	// nil palette makes the game panic; the batch must see an error
	// summary, not a crash
	summary, events := runOne(7, GameConfig{InitialDraw: 9, ExchangeRate: 18, MaxRounds: 10}, NewSeededRNG(1))
	if summary.Error == "" {
		t.Fatal("panicking game must report an error")
	}
	if summary.GameID != 7 {
		t.Fatalf("failed summary keeps its game id, got %d", summary.GameID)
	}
	if events != nil {
		t.Fatal("failed game must not leak partial events")
	}
}

func TestSummarizeSkipsFailedGames(t *testing.T) {
	res := &BatchResult{Summaries: []Summary{
		{GameID: 1, RoundsPlayed: 4, TotalGifts: 2, LeftoverDolls: 3},
		{GameID: 2, Error: "boom"},
		{GameID: 3, RoundsPlayed: 6, TotalGifts: 4, LeftoverDolls: 5},
	}}
	stats := Summarize(res)
	if stats.Rounds.Mean != 5 {
		t.Fatalf("mean rounds over successful games: want 5, got %f", stats.Rounds.Mean)
	}
	if stats.Gifts.Mean != 3 {
		t.Fatalf("mean gifts: want 3, got %f", stats.Gifts.Mean)
	}
}
