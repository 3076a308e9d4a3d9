package cloud

import "math/rand/v2"

// Shuffler reorders n elements through swap. *rand.Rand from math/rand/v2
// satisfies it directly.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ShufflerFunc adapts a plain function to the Shuffler interface.
type ShufflerFunc func(n int, swap func(i, j int))

func (f ShufflerFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// DefaultShuffler uses the global math/rand/v2 source.
func DefaultShuffler() Shuffler {
	return ShufflerFunc(rand.Shuffle)
}

// SeededShuffler returns a reproducible shuffler for the given seed.
func SeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
