package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// FillChance sets each cell of buf to Alive with probability p and Dead otherwise.
func (r *RNG) FillChance(buf []uint8, p float64) {
	for i := range buf {
		if r.Chance(p) {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}
