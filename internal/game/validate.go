package game

import (
	"fmt"
	"strings"
)

// Validate checks semantic constraints of a Config before any simulation
// runs. All violations are collected into a single error.
func Validate(cfg Config) error {
	var errs []string

	colors := cfg.paletteColors()
	known := make(map[string]bool, len(colors))
	for _, c := range colors {
		known[c] = true
	}
	for _, wc := range cfg.WishColors {
		if !known[wc] {
			errs = append(errs, fmt.Sprintf("wish color %q is not in the palette", wc))
		}
	}

	if cfg.InitialDraw < 1 {
		errs = append(errs, "initial_draw must be >= 1")
	}
	if cfg.ExchangeRate < 1 {
		errs = append(errs, "exchange_rate must be >= 1")
	}
	if cfg.TotalGames < 1 {
		errs = append(errs, "total_games must be >= 1")
	}
	if cfg.MaxRounds < 1 {
		errs = append(errs, "max_rounds must be >= 1")
	}
	for i, m := range cfg.MilkSchedule {
		if m < 0 {
			errs = append(errs, fmt.Sprintf("milk_schedule[%d] must be >= 0", i))
		}
	}
	if cfg.Workers < 0 {
		errs = append(errs, "workers must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// paletteColors resolves the configured color list without building weights.
func (c Config) paletteColors() []string {
	if len(c.Colors) > 0 {
		out := make([]string, len(c.Colors))
		for i, cr := range c.Colors {
			out[i] = cr.Color
		}
		return out
	}
	colors, _, _ := ParseRatioString(c.Palette)
	return colors
}
