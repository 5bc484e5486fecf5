package core

import "testing"

// fixedRNG replays a scripted sequence of Intn results.
type fixedRNG struct {
	ints []int
	i    int
}

func (f *fixedRNG) Intn(n int) int {
	v := f.ints[f.i%len(f.ints)] % n
	f.i++
	return v
}

func (f *fixedRNG) Float64() float64 { return 0.5 }

func TestShuffleIsPermutation(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := NewRNG(seed)
		items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
		Shuffle(rng, len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

		seen := make(map[int]bool)
		for _, v := range items {
			if v < 0 || v >= 9 || seen[v] {
				t.Fatalf("seed %d: shuffle produced invalid permutation %v", seed, items)
			}
			seen[v] = true
		}
	}
}

func TestShuffleUsesFisherYatesOrder(t *testing.T) {
	// j = 0 at every step rotates the slice left by one.
	rng := &fixedRNG{ints: []int{0}}
	items := []int{0, 1, 2, 3}
	Shuffle(rng, len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	want := []int{1, 2, 3, 0}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("Shuffle = %v, expected %v", items, want)
		}
	}
	if rng.i != 3 {
		t.Errorf("Shuffle drew %d numbers, expected 3", rng.i)
	}
}

func TestNewRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for range 10 {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should give same sequence")
		}
	}
}
