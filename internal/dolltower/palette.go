package dolltower

import "errors"

// Color is one categorical value from the configured palette.
type Color string

var (
	ErrEmptyPalette  = errors.New("palette needs at least one color")
	ErrRatioMismatch = errors.New("palette colors and ratios length mismatch")
)

// Palette is the resolved draw distribution: colors plus normalized
// non-negative weights. Weights <= 0 never win a sample; if every weight
// is zero the palette degrades to uniform over all its colors.
type Palette struct {
	colors  []Color
	weights []float64 // normalized over the positive entries; zeros kept in place
}

// NewPalette normalizes the given ratios into draw weights.
// Negative ratios are clamped to zero.
func NewPalette(colors []Color, ratios []float64) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if len(colors) != len(ratios) {
		return nil, ErrRatioMismatch
	}

	weights := make([]float64, len(ratios))
	var sum float64
	for i, r := range ratios {
		if r > 0 {
			weights[i] = r
			sum += r
		}
	}
	if sum > 0 {
		for i := range weights {
			weights[i] /= sum
		}
	}
	return &Palette{
		colors:  append([]Color(nil), colors...),
		weights: weights,
	}, nil
}

// Colors returns the palette's colors in configured order.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Weight returns the normalized weight at index i.
func (p *Palette) Weight(i int) float64 { return p.weights[i] }

// Contains reports whether c is one of the configured colors.
func (p *Palette) Contains(c Color) bool {
	for _, pc := range p.colors {
		if pc == c {
			return true
		}
	}
	return false
}

// uniform reports whether sampling must fall back to uniform (all zero weights).
func (p *Palette) uniform() bool {
	for _, w := range p.weights {
		if w > 0 {
			return false
		}
	}
	return true
}

// Draw samples k colors independently with replacement, probability
// proportional to weight. k <= 0 returns an empty slice.
func (p *Palette) Draw(k int, rng RandomSource) []Color {
	if k <= 0 {
		return nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	out := make([]Color, k)
	if p.uniform() {
		for i := range out {
			out[i] = p.colors[rng.IntN(len(p.colors))]
		}
		return out
	}
	for i := range out {
		out[i] = p.drawOne(rng)
	}
	return out
}

func (p *Palette) drawOne(rng RandomSource) Color {
	u := rng.Float64()
	var acc float64
	for i, w := range p.weights {
		if w <= 0 {
			continue
		}
		acc += w
		if u < acc {
			return p.colors[i]
		}
	}
	// float accumulation can land u a hair past the last bucket
	for i := len(p.colors) - 1; i >= 0; i-- {
		if p.weights[i] > 0 {
			return p.colors[i]
		}
	}
	return p.colors[len(p.colors)-1]
}

// Shuffle permutes dolls in place (Fisher-Yates). The basket must be truly
// shuffled before refill: which doll lands in which slot drives future
// matching.
func Shuffle(dolls []Color, rng RandomSource) {
	if rng == nil {
		rng = DefaultRNG()
	}
	for i := len(dolls) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		dolls[i], dolls[j] = dolls[j], dolls[i]
	}
}
