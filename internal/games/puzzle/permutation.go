// Package puzzle implements the sliding picture puzzle: an n×n board of tiles
// shuffled into a random permutation that the player restores by swapping.
package puzzle

import (
	"math"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// Permutation holds, at each board index, the identity of the tile shown
// there. The board is solved when every tile sits at its own index.
type Permutation []int

// Shuffle returns a uniformly random permutation of 0..n²-1. Any
// permutation, including the solved one, may come back.
func Shuffle(n int, rng core.RNG) Permutation {
	p := Identity(n)
	core.Shuffle(rng, len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Identity returns the solved permutation for an n×n board.
func Identity(n int) Permutation {
	p := make(Permutation, n*n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Valid reports whether p is a permutation of 0..len(p)-1.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Correct counts tiles at their home index.
func (p Permutation) Correct() int {
	n := 0
	for i, v := range p {
		if v == i {
			n++
		}
	}
	return n
}

// Progress returns the rounded percentage of tiles in place.
func (p Permutation) Progress() int {
	if len(p) == 0 {
		return 0
	}
	return int(math.Round(float64(p.Correct()) * 100 / float64(len(p))))
}

// Solved reports whether every tile is home.
func (p Permutation) Solved() bool {
	return p.Correct() == len(p)
}

// FirstMisplaced returns the lowest index whose tile is out of place, or -1.
func (p Permutation) FirstMisplaced() int {
	for i, v := range p {
		if v != i {
			return i
		}
	}
	return -1
}

// Clone returns a copy.
func (p Permutation) Clone() Permutation {
	return append(Permutation(nil), p...)
}

// IdleHint returns the index to highlight once idle seconds reach the
// threshold, or -1 when no hint applies yet.
func IdleHint(p Permutation, idle, threshold int) int {
	if threshold <= 0 || idle < threshold {
		return -1
	}
	return p.FirstMisplaced()
}
