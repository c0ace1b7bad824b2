package dolltower

import "fmt"

// Summary is one game's final result after exchange.
type Summary struct {
	GameID        int    `json:"game_id"`
	LeftoverDolls int    `json:"leftover_dolls"`
	TotalGifts    int    `json:"total_gifts"`
	RoundsPlayed  int    `json:"rounds_played"`
	Error         string `json:"error,omitempty"` // set when the game failed; other fields are zero
}

// GameConfig carries the per-game rule parameters.
type GameConfig struct {
	Palette      *Palette
	WishColors   []Color
	InitialDraw  int
	ExchangeRate int
	MaxRounds    int
	MilkSchedule []int
}

// PlayGame runs one game to termination or the round cap and returns its
// summary plus event log.
func PlayGame(gameID int, cfg GameConfig, rng RandomSource) (Summary, []Event) {
	s := NewGameState(gameID, cfg.Palette, cfg.WishColors, cfg.InitialDraw, cfg.MilkSchedule, rng)

	for s.Round < cfg.MaxRounds {
		s.Round++
		s.resolveWish()
		s.matchGroups()
		s.resolveDuplicates()
		s.awardBonus()
		s.refill()
		if s.shouldTerminate() {
			if s.injectMilk() {
				continue
			}
			s.finish("natural termination")
			return s.summarize(cfg.ExchangeRate), s.Events
		}
	}
	// round cap reached; same cleanup as the natural end
	s.finish("round cap reached")
	return s.summarize(cfg.ExchangeRate), s.Events
}

// finish moves any remaining tower dolls into the harvested counter and
// clears the tower.
func (s *GameState) finish(reason string) {
	remaining := s.Tower.Occupancy()
	if remaining > 0 {
		s.HarvestedDolls += remaining
		s.Tower.Clear()
	}
	s.logEvent(PhaseEnd, fmt.Sprintf("%s: harvested %d remaining dolls", reason, remaining))
}

// summarize applies the exchange: every exchangeRate harvested dolls become
// one gift; the remainder is the leftover.
func (s *GameState) summarize(exchangeRate int) Summary {
	gifts := s.HarvestedGifts + s.HarvestedDolls/exchangeRate
	return Summary{
		GameID:        s.GameID,
		LeftoverDolls: s.HarvestedDolls % exchangeRate,
		TotalGifts:    gifts,
		RoundsPlayed:  s.Round,
	}
}
