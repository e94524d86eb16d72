package game

import "math/rand"

// Rand is the random source used for procedural generation.
// *rand.Rand satisfies it; tests may inject scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source for deterministic runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
