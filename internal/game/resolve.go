package game

import (
	"github.com/xtding233/dolltower-backend/internal/dolltower"
)

// Resolve turns a validated Config into engine parameters: the normalized
// weighted palette plus the batch settings. Returned warnings come from
// malformed ratio entries; they never abort the run.
func Resolve(cfg Config) (dolltower.BatchConfig, []string, error) {
	cfg.ApplyDefaults()
	if err := Validate(cfg); err != nil {
		return dolltower.BatchConfig{}, nil, err
	}

	var (
		names    []string
		ratios   []float64
		warnings []string
	)
	if len(cfg.Colors) > 0 {
		for _, cr := range cfg.Colors {
			names = append(names, cr.Color)
			ratios = append(ratios, cr.Ratio)
		}
	} else {
		names, ratios, warnings = ParseRatioString(cfg.Palette)
	}

	colors := make([]dolltower.Color, len(names))
	for i, n := range names {
		colors[i] = dolltower.Color(n)
	}
	pal, err := dolltower.NewPalette(colors, ratios)
	if err != nil {
		return dolltower.BatchConfig{}, warnings, err
	}

	wish := make([]dolltower.Color, len(cfg.WishColors))
	for i, w := range cfg.WishColors {
		wish[i] = dolltower.Color(w)
	}

	return dolltower.BatchConfig{
		Palette:      pal,
		WishColors:   wish,
		InitialDraw:  cfg.InitialDraw,
		ExchangeRate: cfg.ExchangeRate,
		TotalGames:   cfg.TotalGames,
		MaxRounds:    cfg.MaxRounds,
		MilkSchedule: cfg.MilkSchedule,
		Seed:         cfg.Seed,
		Workers:      cfg.Workers,
	}, warnings, nil
}
