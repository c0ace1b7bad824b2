package dolltower

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the randomness every draw and shuffle consumes.
// Inject a seeded source for reproducible runs; parallel games must each
// hold their own instance.

type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// crypto random: default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	// Read 53bit random => [0, 1)
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Float64()
	}

	// max 53
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (c cryptoRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(c.Float64() * float64(n))
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (Monte Carlo runs)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }

// NewGameRNG derives an isolated source for one game inside a batch.
// The game id selects the PCG stream, so a batch is reproducible for a
// given master seed no matter how games are scheduled across workers.
func NewGameRNG(masterSeed uint64, gameID int) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(masterSeed, uint64(gameID)))}
}
