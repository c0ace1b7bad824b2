package dolltower

import (
	"math"
	"sort"
)

// Stats summarizes one metric across a batch.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// BatchStats aggregates the three per-game metrics external tuning cares
// about.
type BatchStats struct {
	Rounds   Stats `json:"rounds"`
	Gifts    Stats `json:"gifts"`
	Leftover Stats `json:"leftover"`
}

// Summarize computes batch statistics from the successful games.
func Summarize(r *BatchResult) BatchStats {
	var rounds, gifts, leftover []int
	for _, s := range r.Summaries {
		if s.Error != "" {
			continue
		}
		rounds = append(rounds, s.RoundsPlayed)
		gifts = append(gifts, s.TotalGifts)
		leftover = append(leftover, s.LeftoverDolls)
	}
	return BatchStats{
		Rounds:   calcStats(rounds),
		Gifts:    calcStats(gifts),
		Leftover: calcStats(leftover),
	}
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
