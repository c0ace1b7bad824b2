package dolltower

import "strings"

// TowerSize is the fixed slot count of the display tower.
const TowerSize = 9

// Doll occupies one tower slot. WishTriggered is set once and never reset
// for the doll's lifetime.
type Doll struct {
	Color         Color
	WishTriggered bool
}

// Slot is a tagged Empty/Occupied cell. Occupied==false means Doll is
// meaningless; query occupancy explicitly instead of dispatching on a nil.
type Slot struct {
	Occupied bool
	Doll     Doll
}

// Tower is the fixed ordered sequence of 9 slots. Indexes [0,3), [3,5),
// [5,7) and [7,9) form the four disjoint match groups.
type Tower [TowerSize]Slot

// groupBounds are the half-open index ranges of the four match groups,
// sizes {3,2,2,2}.
var groupBounds = [4][2]int{{0, 3}, {3, 5}, {5, 7}, {7, 9}}

// Place puts a fresh doll (wish flag clear) into slot i.
func (t *Tower) Place(i int, c Color) {
	t[i] = Slot{Occupied: true, Doll: Doll{Color: c}}
}

// ClearSlot empties slot i.
func (t *Tower) ClearSlot(i int) {
	t[i] = Slot{}
}

// Clear empties every slot.
func (t *Tower) Clear() {
	*t = Tower{}
}

// Occupancy counts occupied slots.
func (t *Tower) Occupancy() int {
	n := 0
	for i := range t {
		if t[i].Occupied {
			n++
		}
	}
	return n
}

// ColorCounts tallies occupied slots per color.
func (t *Tower) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for i := range t {
		if t[i].Occupied {
			counts[t[i].Doll.Color]++
		}
	}
	return counts
}

// AllDistinct reports whether the occupied colors are pairwise distinct.
// An empty tower is trivially distinct.
func (t *Tower) AllDistinct() bool {
	for _, n := range t.ColorCounts() {
		if n > 1 {
			return false
		}
	}
	return true
}

// groupUniform reports whether group g is fully occupied by a single color.
func (t *Tower) groupUniform(g int) (Color, bool) {
	start, end := groupBounds[g][0], groupBounds[g][1]
	var c Color
	for i := start; i < end; i++ {
		if !t[i].Occupied {
			return "", false
		}
		if i == start {
			c = t[i].Doll.Color
		} else if t[i].Doll.Color != c {
			return "", false
		}
	}
	return c, true
}

// Snapshot renders the tower for the event log, e.g. "red* | blue | -".
// The star marks a triggered wish doll; "-" marks an empty slot.
func (t *Tower) Snapshot() string {
	parts := make([]string, TowerSize)
	for i := range t {
		if !t[i].Occupied {
			parts[i] = "-"
			continue
		}
		s := string(t[i].Doll.Color)
		if t[i].Doll.WishTriggered {
			s += "*"
		}
		parts[i] = s
	}
	return strings.Join(parts, " | ")
}
