package dolltower

import "testing"

var fixtureColors = []Color{"a", "b", "c", "d", "e", "f", "g", "h", "i"}

// newFixtureState builds an empty state with a seeded source so tests can
// arrange the tower and basket by hand.
func newFixtureState(t *testing.T, wishColors ...Color) *GameState {
	t.Helper()
	ratios := make([]float64, len(fixtureColors))
	for i := range ratios {
		ratios[i] = 1
	}
	wish := make(map[Color]bool, len(wishColors))
	for _, c := range wishColors {
		wish[c] = true
	}
	return &GameState{
		GameID:     1,
		Palette:    mustPalette(t, fixtureColors, ratios),
		WishColors: wish,
		RNG:        NewSeededRNG(99),
	}
}

func TestWishReplenishesOncePerDoll(t *testing.T) {
	s := newFixtureState(t, "a", "b")
	s.Tower.Place(0, "a")
	s.Tower.Place(1, "a")
	s.Tower.Place(2, "b")
	s.Tower.Place(3, "c")
	s.Tower[1].Doll.WishTriggered = true // already counted in an earlier round

	s.resolveWish()

	if got := len(s.Basket); got != 2 {
		t.Fatalf("expected 2 replenishment draws, got %d", got)
	}
	for _, i := range []int{0, 1, 2} {
		if !s.Tower[i].Doll.WishTriggered {
			t.Fatalf("slot %d wish flag not set", i)
		}
	}
	if s.Tower[3].Doll.WishTriggered {
		t.Fatal("non-wish doll must not be flagged")
	}

	// second pass: flags are monotone, nothing new to replenish
	events := len(s.Events)
	s.resolveWish()
	if len(s.Basket) != 2 {
		t.Fatal("already-triggered dolls replenished again")
	}
	if len(s.Events) != events {
		t.Fatal("no-op wish phase must not log an event")
	}
}

func TestWishFlagNeverReverts(t *testing.T) {
	s := newFixtureState(t, "a")
	// a unique wish doll outside any complete group survives every phase
	s.Tower.Place(0, "a")
	s.Tower.Place(3, "b")
	s.Basket = []Color{"c", "d"}

	s.resolveWish()
	if !s.Tower[0].Doll.WishTriggered {
		t.Fatal("wish doll should be triggered")
	}
	s.matchGroups()
	s.resolveDuplicates()
	s.awardBonus()
	s.refill()
	s.resolveWish()
	if !s.Tower[0].Occupied || s.Tower[0].Doll.Color != "a" {
		t.Fatal("fixture doll should have survived the round")
	}
	if !s.Tower[0].Doll.WishTriggered {
		t.Fatal("wish flag reverted within the doll's lifetime")
	}
}

func TestGroupMatchRequiresFullUniformGroup(t *testing.T) {
	s := newFixtureState(t)
	// group 0 has an empty slot, group 1 is uniform and full
	s.Tower.Place(0, "a")
	s.Tower.Place(1, "a")
	s.Tower.Place(3, "b")
	s.Tower.Place(4, "b")

	s.matchGroups()

	if s.Tower[0].Occupied == false {
		t.Fatal("partial group 0 must not fire")
	}
	if s.HarvestedDolls != 2 {
		t.Fatalf("expected 2 harvested from group 1, got %d", s.HarvestedDolls)
	}
	if s.Tower[3].Occupied || s.Tower[4].Occupied {
		t.Fatal("matched group slots must be cleared")
	}
	if len(s.Basket) != 2 {
		t.Fatalf("group match must replenish an equal count, got %d", len(s.Basket))
	}
}

func TestGroupMatchGroupsAreIndependent(t *testing.T) {
	s := newFixtureState(t)
	for i := 0; i < 3; i++ {
		s.Tower.Place(i, "a")
	}
	s.Tower.Place(7, "b")
	s.Tower.Place(8, "b")

	s.matchGroups()

	if s.HarvestedDolls != 5 {
		t.Fatalf("both groups should fire: harvested=%d", s.HarvestedDolls)
	}
	if len(s.Basket) != 5 {
		t.Fatalf("replenishment should match harvested count, got %d", len(s.Basket))
	}
}

func TestDuplicateResolutionClearsAllAndUnderReplenishes(t *testing.T) {
	s := newFixtureState(t)
	// a x2, b x3, c x1
	s.Tower.Place(0, "a")
	s.Tower.Place(1, "a")
	s.Tower.Place(2, "b")
	s.Tower.Place(3, "b")
	s.Tower.Place(4, "b")
	s.Tower.Place(5, "c")

	s.resolveDuplicates()

	if s.HarvestedDolls != 5 {
		t.Fatalf("expected all 5 duplicate dolls harvested, got %d", s.HarvestedDolls)
	}
	// (2-1) + (3-1) = 3 replenishment draws: attrition of one per color
	if len(s.Basket) != 3 {
		t.Fatalf("expected 3 replenishment draws, got %d", len(s.Basket))
	}
	if !s.Tower[5].Occupied || s.Tower[5].Doll.Color != "c" {
		t.Fatal("unique color must survive duplicate resolution")
	}
	if s.Tower.Occupancy() != 1 {
		t.Fatalf("only the unique doll should remain, occupancy=%d", s.Tower.Occupancy())
	}
}

func TestBonusRequiresNineOccupiedDistinct(t *testing.T) {
	s := newFixtureState(t)
	for i, c := range fixtureColors[:8] {
		s.Tower.Place(i, c)
	}
	s.awardBonus()
	if s.HarvestedGifts != 0 {
		t.Fatal("bonus fired with an empty slot")
	}

	s.Tower.Place(8, "a") // duplicate of slot 0
	s.awardBonus()
	if s.HarvestedGifts != 0 {
		t.Fatal("bonus fired with a duplicate color")
	}

	s.Tower.ClearSlot(8)
	s.Tower.Place(8, "i")
	s.awardBonus()
	if s.HarvestedGifts != 1 {
		t.Fatal("bonus must fire on 9 occupied distinct slots")
	}
	if s.HarvestedDolls != 9 {
		t.Fatalf("bonus must harvest all 9 dolls, got %d", s.HarvestedDolls)
	}
	if s.Tower.Occupancy() != 0 {
		t.Fatal("bonus must leave the tower empty")
	}
}

func TestRefillBoundedBySlotsAndBasket(t *testing.T) {
	s := newFixtureState(t)
	s.Tower.Place(0, "a")
	s.Basket = []Color{"b", "c", "d"}

	s.refill()

	if s.Tower.Occupancy() != 4 {
		t.Fatalf("expected 4 occupied after refill, got %d", s.Tower.Occupancy())
	}
	if len(s.Basket) != 0 {
		t.Fatalf("basket should be drained, got %d", len(s.Basket))
	}
	// empty slots are filled ascending: 1, 2, 3
	for _, i := range []int{1, 2, 3} {
		if !s.Tower[i].Occupied {
			t.Fatalf("slot %d should have been filled", i)
		}
	}

	// more dolls than slots: the overflow stays in the basket
	s2 := newFixtureState(t)
	for i := 0; i < 7; i++ {
		s2.Tower.Place(i, fixtureColors[i])
	}
	s2.Basket = []Color{"a", "b", "c", "d", "e"}
	s2.refill()
	if s2.Tower.Occupancy() != 9 {
		t.Fatalf("tower should be full, occupancy=%d", s2.Tower.Occupancy())
	}
	if len(s2.Basket) != 3 {
		t.Fatalf("3 dolls should remain in the basket, got %d", len(s2.Basket))
	}
}

func TestTerminationNeedsAllThreeConditions(t *testing.T) {
	// baseline: empty basket, triggered wish doll, distinct colors
	base := func() *GameState {
		s := newFixtureState(t, "a")
		s.Tower.Place(0, "a")
		s.Tower[0].Doll.WishTriggered = true
		s.Tower.Place(1, "b")
		return s
	}

	if !base().shouldTerminate() {
		t.Fatal("baseline state should terminate")
	}

	s := base()
	s.Basket = []Color{"c"}
	if s.shouldTerminate() {
		t.Fatal("non-empty basket must prevent termination")
	}

	s = base()
	s.Tower[0].Doll.WishTriggered = false
	if s.shouldTerminate() {
		t.Fatal("untriggered wish doll must prevent termination")
	}

	s = base()
	s.Tower.Place(2, "b") // duplicate
	if s.shouldTerminate() {
		t.Fatal("duplicate tower colors must prevent termination")
	}
}

func TestMilkScheduleConsumedInOrderAtMostOnce(t *testing.T) {
	s := newFixtureState(t)
	s.MilkSchedule = []int{2, 3}

	if !s.injectMilk() {
		t.Fatal("first positive entry must inject")
	}
	if s.MilkUsed != 1 {
		t.Fatalf("milkUsed=%d after first injection", s.MilkUsed)
	}
	if s.totalDolls() != 2 {
		t.Fatalf("first injection should add 2 dolls, total=%d", s.totalDolls())
	}

	if !s.injectMilk() {
		t.Fatal("second entry must inject")
	}
	if s.MilkUsed != 2 {
		t.Fatalf("milkUsed=%d after second injection", s.MilkUsed)
	}
	if s.totalDolls() != 5 {
		t.Fatalf("second injection should add 3 dolls, total=%d", s.totalDolls())
	}

	if s.injectMilk() {
		t.Fatal("exhausted schedule must not inject")
	}
	if s.MilkUsed != 2 {
		t.Fatal("milkUsed must never exceed schedule length")
	}
}

func TestMilkZeroEntryEndsInjection(t *testing.T) {
	s := newFixtureState(t)
	s.MilkSchedule = []int{0, 5}
	if s.injectMilk() {
		t.Fatal("a non-positive next entry must fail the injection")
	}
	if s.MilkUsed != 0 {
		t.Fatal("failed injection must not consume an entry")
	}
}

func TestMilkOverflowGoesToBasket(t *testing.T) {
	s := newFixtureState(t)
	for i := 0; i < 7; i++ {
		s.Tower.Place(i, fixtureColors[i])
	}
	s.MilkSchedule = []int{5}
	if !s.injectMilk() {
		t.Fatal("injection should succeed")
	}
	if s.Tower.Occupancy() != 9 {
		t.Fatalf("injection fills empty slots first, occupancy=%d", s.Tower.Occupancy())
	}
	if len(s.Basket) != 3 {
		t.Fatalf("overflow should land in the basket, got %d", len(s.Basket))
	}
}

// Conservation: every phase changes the total doll count by exactly the
// number of fresh replenishment draws it makes.
func TestPhaseConservation(t *testing.T) {
	s := newFixtureState(t, "a")
	s.Tower.Place(0, "a") // wish doll: +1 draw
	s.Tower.Place(3, "b")
	s.Tower.Place(4, "b") // group 1 uniform: harvest 2, +2 draws
	s.Tower.Place(5, "c")
	s.Tower.Place(7, "c") // duplicate spanning two groups: harvest 2, +1 draw

	before := s.totalDolls()
	s.resolveWish()
	if got := s.totalDolls(); got != before+1 {
		t.Fatalf("wish conservation broken: %d -> %d", before, got)
	}

	before = s.totalDolls()
	s.matchGroups()
	if got := s.totalDolls(); got != before+2 {
		t.Fatalf("group conservation broken: %d -> %d", before, got)
	}

	before = s.totalDolls()
	s.resolveDuplicates()
	if got := s.totalDolls(); got != before+1 {
		t.Fatalf("duplicate conservation broken: %d -> %d", before, got)
	}

	// refill and bonus move dolls without creating or destroying any
	before = s.totalDolls()
	s.refill()
	s.awardBonus()
	if got := s.totalDolls(); got != before {
		t.Fatalf("refill/bonus must conserve: %d -> %d", before, got)
	}
}
