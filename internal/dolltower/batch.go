package dolltower

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrConfiguration marks parameters rejected before any game runs.
var ErrConfiguration = errors.New("invalid configuration")

// BatchConfig describes one Monte Carlo batch.
type BatchConfig struct {
	Palette      *Palette
	WishColors   []Color
	InitialDraw  int
	ExchangeRate int
	TotalGames   int
	MaxRounds    int
	MilkSchedule []int

	Seed    uint64 // master seed; 0 falls back to a non-reproducible default source
	Workers int    // pool width; <=0 means GOMAXPROCS
}

// BatchResult holds the ordered per-game summaries and the concatenated
// event logs of every game.
type BatchResult struct {
	Summaries []Summary `json:"summaries"`
	Events    []Event   `json:"events"`
	Failed    int       `json:"failed"`
}

// Validate checks the engine preconditions: wish colors inside the palette
// and strictly positive counts. It never runs a partial simulation.
func (c BatchConfig) Validate() error {
	if c.Palette == nil {
		return fmt.Errorf("%w: palette is required", ErrConfiguration)
	}
	for _, wc := range c.WishColors {
		if !c.Palette.Contains(wc) {
			return fmt.Errorf("%w: wish color %q is not in the palette", ErrConfiguration, wc)
		}
	}
	if c.InitialDraw <= 0 {
		return fmt.Errorf("%w: initial draw must be >= 1", ErrConfiguration)
	}
	if c.ExchangeRate <= 0 {
		return fmt.Errorf("%w: exchange rate must be >= 1", ErrConfiguration)
	}
	if c.TotalGames <= 0 {
		return fmt.Errorf("%w: total games must be >= 1", ErrConfiguration)
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("%w: max rounds must be >= 1", ErrConfiguration)
	}
	for i, m := range c.MilkSchedule {
		if m < 0 {
			return fmt.Errorf("%w: milk schedule entry %d must be >= 0", ErrConfiguration, i)
		}
	}
	return nil
}

// RunBatch executes TotalGames independent games on a worker pool. Each
// game gets its own seeded random source derived from the master seed, so
// results match the sequential run for any worker count. Cancellation is
// cooperative between games; a game already in flight finishes (a game is
// bounded by MaxRounds, not wall clock). A panic inside one game is
// recorded on that game's summary and does not abort the batch.
func RunBatch(ctx context.Context, cfg BatchConfig) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	gameCfg := GameConfig{
		Palette:      cfg.Palette,
		WishColors:   cfg.WishColors,
		InitialDraw:  cfg.InitialDraw,
		ExchangeRate: cfg.ExchangeRate,
		MaxRounds:    cfg.MaxRounds,
		MilkSchedule: cfg.MilkSchedule,
	}

	summaries := make([]Summary, cfg.TotalGames)
	eventsByGame := make([][]Event, cfg.TotalGames)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < cfg.TotalGames; i++ {
		if ctx.Err() != nil {
			break
		}
		idx := i
		gameID := i + 1
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			summaries[idx], eventsByGame[idx] = runOne(gameID, gameCfg, gameRNG(cfg.Seed, gameID))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; panics are recovered per game
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{Summaries: summaries}
	for _, summary := range summaries {
		if summary.Error != "" {
			result.Failed++
		}
	}
	for _, evs := range eventsByGame {
		result.Events = append(result.Events, evs...)
	}
	return result, nil
}

// runOne isolates a single game: a panic becomes that game's error instead
// of tearing down the batch.
func runOne(gameID int, cfg GameConfig, rng RandomSource) (summary Summary, events []Event) {
	defer func() {
		if r := recover(); r != nil {
			summary = Summary{GameID: gameID, Error: fmt.Sprintf("game panicked: %v", r)}
			events = nil
		}
	}()
	return PlayGame(gameID, cfg, rng)
}

func gameRNG(masterSeed uint64, gameID int) RandomSource {
	if masterSeed == 0 {
		return DefaultRNG()
	}
	return NewGameRNG(masterSeed, gameID)
}
