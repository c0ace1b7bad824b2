package dolltower

import "fmt"

// GameState holds one playthrough's mutable state. It is created once per
// simulated game, mutated round by round, and discarded after producing a
// summary plus its event log. Nothing survives across games.
type GameState struct {
	GameID       int
	Palette      *Palette
	WishColors   map[Color]bool
	MilkSchedule []int
	MilkUsed     int // consumption index into MilkSchedule, monotone

	Tower          Tower
	Basket         []Color // pending colors awaiting placement, order immaterial until shuffled
	HarvestedDolls int
	HarvestedGifts int
	Round          int

	RNG    RandomSource
	Events []Event
}

// NewGameState seeds a game: the first 9 of initialDraw weighted samples go
// onto the tower in slot order, the remainder into the basket.
func NewGameState(gameID int, pal *Palette, wishColors []Color, initialDraw int, milkSchedule []int, rng RandomSource) *GameState {
	if rng == nil {
		rng = DefaultRNG()
	}
	wish := make(map[Color]bool, len(wishColors))
	for _, c := range wishColors {
		wish[c] = true
	}
	s := &GameState{
		GameID:       gameID,
		Palette:      pal,
		WishColors:   wish,
		MilkSchedule: append([]int(nil), milkSchedule...),
		RNG:          rng,
	}

	initial := pal.Draw(initialDraw, rng)
	n := len(initial)
	if n > TowerSize {
		n = TowerSize
	}
	for i := 0; i < n; i++ {
		s.Tower.Place(i, initial[i])
	}
	if len(initial) > TowerSize {
		s.Basket = append(s.Basket, initial[TowerSize:]...)
	}
	s.logEvent(PhaseInit, fmt.Sprintf("initial draw placed %d dolls", len(initial)))
	return s
}

// logEvent appends one audit record with the current counters and a tower
// snapshot.
func (s *GameState) logEvent(phase Phase, description string) {
	s.Events = append(s.Events, Event{
		GameID:         s.GameID,
		Round:          s.Round,
		Phase:          phase,
		Tower:          s.Tower.Snapshot(),
		BasketSize:     len(s.Basket),
		HarvestedDolls: s.HarvestedDolls,
		HarvestedGifts: s.HarvestedGifts,
		Occupancy:      s.Tower.Occupancy(),
		Description:    description,
	})
}

// totalDolls is the conservation quantity: every doll is on the tower, in
// the basket, or harvested.
func (s *GameState) totalDolls() int {
	return s.Tower.Occupancy() + len(s.Basket) + s.HarvestedDolls
}
