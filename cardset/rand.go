package cardset

import "math/rand/v2"

// Rand is the source of randomness used by Shuffle and Cut.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// globalRand draws from the process-wide math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type options struct {
	rng Rand
}

// Option configures a CardSet.
type Option func(*options)

// WithRand makes the CardSet draw from r. A nil r restores the default
// generator.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes the CardSet draw from a PCG generator seeded with seed, so
// shuffles and cuts are reproducible. The generator is owned by the set and is
// not safe for concurrent use.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}
