package core

import (
	"math/rand"
	"time"
)

// RNG is the pseudo-random source engines draw from. *rand.Rand satisfies it,
// and tests can inject a scripted sequence.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG returns a seeded source. A zero seed means "seed from the clock".
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle performs a Fisher–Yates shuffle over n elements: for i from n-1
// down to 1 it swaps i with a uniform j in [0, i].
func Shuffle(rng RNG, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		swap(i, j)
	}
}
