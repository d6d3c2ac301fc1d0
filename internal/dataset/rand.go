package dataset

import "math/rand/v2"

// Rand is the source of randomness for sampling and shuffling. *rand.Rand
// from math/rand/v2 satisfies it; tests may supply their own sequence.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. The same seed always yields the same
// sequence, across platforms and Go releases.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
