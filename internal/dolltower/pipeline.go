package dolltower

import "fmt"

// The round pipeline. Phases run in this fixed order once per round:
//
//  1. resolveWish      - mark wish dolls, replenish one draw per new trigger
//  2. matchGroups      - harvest fully uniform groups, replenish equal count
//  3. resolveDuplicates- clear ALL occurrences of repeated colors, replenish count-1 each
//  4. awardBonus       - 9 occupied, 9 distinct: +1 gift, harvest the tower
//  5. refill           - shuffle basket, fill empty slots in slot order
//  6. shouldTerminate / injectMilk - decided by the scheduler
//
// Duplicate resolution deliberately runs after group match even though group
// clears can change cross-group duplicate counts; that ordering is part of
// the game's economy, not an accident to fix.

// resolveWish marks every occupied wish-colored doll whose flag is still
// clear and replenishes the basket with one fresh draw per newly marked
// doll. A doll counts once even if several wish colors could match it.
// No trigger, no event.
func (s *GameState) resolveWish() {
	triggered := 0
	for i := range s.Tower {
		if !s.Tower[i].Occupied {
			continue
		}
		d := &s.Tower[i].Doll
		if s.WishColors[d.Color] && !d.WishTriggered {
			d.WishTriggered = true
			triggered++
		}
	}
	if triggered == 0 {
		return
	}
	s.Basket = append(s.Basket, s.Palette.Draw(triggered, s.RNG)...)
	s.logEvent(PhaseWish, fmt.Sprintf("wish replenished %d dolls", triggered))
}

// matchGroups harvests each fully occupied single-color group and
// replenishes the basket with an equal number of fresh draws. Groups are
// disjoint; a slot cleared here cannot re-match until a later round's
// refill.
func (s *GameState) matchGroups() {
	for g := range groupBounds {
		if _, ok := s.Tower.groupUniform(g); !ok {
			continue
		}
		start, end := groupBounds[g][0], groupBounds[g][1]
		size := end - start
		s.HarvestedDolls += size
		for i := start; i < end; i++ {
			s.Tower.ClearSlot(i)
		}
		s.Basket = append(s.Basket, s.Palette.Draw(size, s.RNG)...)
		s.logEvent(PhaseGroup, fmt.Sprintf("group %d cleared %d dolls", g+1, size))
	}
}

// resolveDuplicates clears every occurrence of each color appearing at
// least twice across the whole tower, harvesting the full cleared count but
// replenishing only count-1 per color. The shortfall is the game's
// attrition mechanic.
func (s *GameState) resolveDuplicates() {
	counts := s.Tower.ColorCounts()
	removedColors := make(map[Color]bool)
	replenish := 0
	for c, n := range counts {
		if n >= 2 {
			removedColors[c] = true
			replenish += n - 1
		}
	}
	if len(removedColors) == 0 {
		return
	}

	removed := 0
	for i := range s.Tower {
		if s.Tower[i].Occupied && removedColors[s.Tower[i].Doll.Color] {
			s.Tower.ClearSlot(i)
			removed++
		}
	}
	s.HarvestedDolls += removed
	s.Basket = append(s.Basket, s.Palette.Draw(replenish, s.RNG)...)
	s.logEvent(PhaseDuplicate, fmt.Sprintf("cleared %d duplicates, replenished %d", removed, replenish))
}

// awardBonus fires when all 9 slots hold pairwise distinct colors: one gift,
// all 9 dolls harvested, tower emptied.
func (s *GameState) awardBonus() {
	if s.Tower.Occupancy() != TowerSize || !s.Tower.AllDistinct() {
		return
	}
	s.HarvestedGifts++
	s.HarvestedDolls += TowerSize
	s.Tower.Clear()
	s.logEvent(PhaseBonus, "all-distinct bonus: tower harvested, +1 gift")
}

// refill shuffles the basket and fills empty slots in ascending index order
// until the slots or the basket run out. Unplaced dolls stay in the basket.
func (s *GameState) refill() {
	if len(s.Basket) == 0 {
		return
	}
	Shuffle(s.Basket, s.RNG)
	filled := 0
	for i := 0; i < TowerSize && filled < len(s.Basket); i++ {
		if s.Tower[i].Occupied {
			continue
		}
		s.Tower.Place(i, s.Basket[filled])
		filled++
	}
	s.Basket = s.Basket[filled:]
	if filled > 0 {
		s.logEvent(PhaseRefill, fmt.Sprintf("placed %d dolls onto the tower", filled))
	}
}

// shouldTerminate reports whether the natural end state holds: empty
// basket, every wish-colored tower doll already triggered, and no
// duplicate colors on the tower. All three at once.
func (s *GameState) shouldTerminate() bool {
	if len(s.Basket) > 0 {
		return false
	}
	for i := range s.Tower {
		if !s.Tower[i].Occupied {
			continue
		}
		d := s.Tower[i].Doll
		if s.WishColors[d.Color] && !d.WishTriggered {
			return false
		}
	}
	return s.Tower.AllDistinct()
}

// injectMilk attempts one scheduled top-up from an otherwise-terminating
// state. When an unconsumed entry remains and it is positive, that many
// fresh dolls are drawn, empty slots are filled in ascending order, the
// overflow goes to the basket, and the game continues. Returns false when
// the schedule is exhausted or the next entry is non-positive.
func (s *GameState) injectMilk() bool {
	if s.MilkUsed >= len(s.MilkSchedule) {
		return false
	}
	count := s.MilkSchedule[s.MilkUsed]
	if count <= 0 {
		return false
	}
	s.MilkUsed++

	dolls := s.Palette.Draw(count, s.RNG)
	placed := 0
	for i := 0; i < TowerSize && placed < len(dolls); i++ {
		if s.Tower[i].Occupied {
			continue
		}
		s.Tower.Place(i, dolls[placed])
		placed++
	}
	s.Basket = append(s.Basket, dolls[placed:]...)
	s.logEvent(PhaseMilk, fmt.Sprintf("milk %d injected %d dolls (%d to tower)", s.MilkUsed, count, placed))
	return true
}
