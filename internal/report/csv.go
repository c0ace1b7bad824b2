// Package report renders engine output as plain CSV. It deliberately knows
// nothing about styling or downloads; it is a thin sink over the engine's
// summaries and event log.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xtding233/dolltower-backend/internal/dolltower"
)

// WriteSummaries writes one row per game.
func WriteSummaries(w io.Writer, summaries []dolltower.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"game_id", "leftover_dolls", "total_gifts", "rounds_played", "error"}); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.GameID),
			strconv.Itoa(s.LeftoverDolls),
			strconv.Itoa(s.TotalGifts),
			strconv.Itoa(s.RoundsPlayed),
			s.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEvents writes the full audit trail, one row per event.
func WriteEvents(w io.Writer, events []dolltower.Event) error {
	cw := csv.NewWriter(w)
	header := []string{"game_id", "round", "phase", "tower", "basket_size", "harvested_dolls", "harvested_gifts", "occupancy", "description"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			strconv.Itoa(e.GameID),
			strconv.Itoa(e.Round),
			string(e.Phase),
			e.Tower,
			strconv.Itoa(e.BasketSize),
			strconv.Itoa(e.HarvestedDolls),
			strconv.Itoa(e.HarvestedGifts),
			strconv.Itoa(e.Occupancy),
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
