package preprocess

import "math/rand/v2"

// Random is the source of randomness used by Predict, Resize, RandomRotate
// and RandomFlip. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom returns a Random backed by the math/rand/v2 top-level
// generator, which is safe for concurrent use.
func DefaultRandom() Random {
	return globalRandom{}
}

// NewSeededRandom returns a reproducible Random. It is not safe for
// concurrent use.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
