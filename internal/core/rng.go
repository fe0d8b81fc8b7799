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

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Cell returns a uniformly chosen (row, col) inside a grid of the given size.
func (r *RNG) Cell(s Size) (int, int) {
	return r.IntN(s.H), r.IntN(s.W)
}

// Int64 returns a random non-negative int64, handy for deriving child seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }
