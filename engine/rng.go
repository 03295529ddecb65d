package engine

import "math/rand"

// RNG wraps math/rand.Rand behind the two selection shapes the session
// needs. Seeded explicitly so scripted sessions stay reproducible.
type RNG struct {
	src *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.src.Intn(sides) + 1
}

// Pick returns a random index in [0, n). n must be positive.
func (r *RNG) Pick(n int) int {
	return r.src.Intn(n)
}
