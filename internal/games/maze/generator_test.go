package maze

import (
	"testing"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

func levelParams(d config.Difficulty) Params {
	return ConfigFor(config.DefaultLevels().ForMaze(d)).Params
}

func TestGenerateInvariants(t *testing.T) {
	cases := map[string]Params{
		"easy":    levelParams(config.Easy),
		"medium":  levelParams(config.Medium),
		"hard":    levelParams(config.Hard),
		"7x9":     {Rows: 7, Cols: 9, Keys: 4, Distractions: 3, WallDensity: 0.5},
		"6x10":    {Rows: 6, Cols: 10, Keys: 6, Distractions: 4, WallDensity: 0.3},
		"solid":   {Rows: 9, Cols: 9, Keys: 5, Distractions: 5, WallDensity: 1},
		"no keys": {Rows: 6, Cols: 6, Keys: 0, Distractions: 2, WallDensity: 0.2},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 200; seed++ {
				g := Generate(p, core.NewRNG(seed))
				checkGrid(t, seed, g, p)
			}
		})
	}
}

func checkGrid(t *testing.T, seed int64, g *Grid, p Params) {
	t.Helper()
	exit := ExitFor(p.Rows, p.Cols)

	if g.Rows() != p.Rows || g.Cols() != p.Cols {
		t.Fatalf("seed %d: grid is %dx%d", seed, g.Rows(), g.Cols())
	}
	if exits := g.Positions(Exit); len(exits) != 1 || exits[0] != exit {
		t.Fatalf("seed %d: exits = %v, expected exactly %v", seed, exits, exit)
	}
	if g.At(Start) != Open {
		t.Fatalf("seed %d: start cell is %s", seed, g.At(Start))
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := Position{Row: r, Col: c}
			if !g.Interior(pos) && g.At(pos) != Wall {
				t.Fatalf("seed %d: border cell %v is %s", seed, pos, g.At(pos))
			}
		}
	}
	if n := g.Count(Key); n != p.Keys {
		t.Errorf("seed %d: %d keys, expected %d", seed, n, p.Keys)
	}
	if n := g.Count(Distraction); n != p.Distractions {
		t.Errorf("seed %d: %d distractions, expected %d", seed, n, p.Distractions)
	}

	reach := Reachable(g, Start)
	if !reach.Has(exit) {
		t.Fatalf("seed %d: exit unreachable from start", seed)
	}
	for _, k := range g.Positions(Key) {
		if !reach.Has(k) {
			t.Errorf("seed %d: key at %v unreachable", seed, k)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := levelParams(config.Hard)
	a := Generate(p, core.NewRNG(99))
	b := Generate(p, core.NewRNG(99))

	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			t.Fatal("same seed should produce the same maze")
		}
	}
}

func TestGenerateNormalizesParams(t *testing.T) {
	g := Generate(Params{Rows: 2, Cols: 3, Keys: -1, WallDensity: 7}, core.NewRNG(1))
	if g.Rows() != MinSize || g.Cols() != MinSize {
		t.Errorf("grid is %dx%d, expected minimum %d", g.Rows(), g.Cols(), MinSize)
	}
	if g.Count(Key) != 0 {
		t.Error("negative key count should place none")
	}
}

func TestGeneratePlacesWhatFits(t *testing.T) {
	// 7 free interior cells cannot hold 10 items.
	p := Params{Rows: 5, Cols: 5, Keys: 6, Distractions: 4, WallDensity: 0}
	for seed := int64(1); seed <= 50; seed++ {
		g := Generate(p, core.NewRNG(seed))
		reach := Reachable(g, Start)
		if !reach.Has(ExitFor(5, 5)) {
			t.Fatalf("seed %d: exit unreachable", seed)
		}
		if g.Count(Key)+g.Count(Distraction) > 7 {
			t.Fatalf("seed %d: more items than free cells", seed)
		}
	}
}

func TestLinkExitEvenDimensions(t *testing.T) {
	g := NewGrid(6, 6)
	carve(g, core.NewRNG(3))
	exit := ExitFor(6, 6)
	linkExit(g, exit)
	g.Set(exit, Exit)

	if !Reachable(g, Start).Has(exit) {
		t.Error("exit link should connect the even corner to the lattice")
	}
}

func TestReachableDoesNotPassThroughExit(t *testing.T) {
	g := gridFrom(
		"#####",
		"#..##",
		"###.#",
		"##.E#",
		"#####",
	)
	// Treat (2,3) as the exit; (3,2) lies beyond it.
	g.Set(Position{Row: 3, Col: 3}, Open)
	g.Set(Position{Row: 2, Col: 3}, Exit)
	g.Set(Position{Row: 1, Col: 3}, Open)

	reach := Reachable(g, Start)
	if !reach.Has(Position{Row: 2, Col: 3}) {
		t.Fatal("exit should be reachable")
	}
	if reach.Has(Position{Row: 3, Col: 3}) {
		t.Error("cells behind the exit should not be reachable")
	}
}

func TestReachableAvoidsDistractions(t *testing.T) {
	g := gridFrom(
		"#####",
		"#.D.#",
		"###.#",
		"#..E#",
		"#####",
	)
	reach := Reachable(g, Start)
	if reach.Size() != 1 {
		t.Errorf("only start should be reachable, got %d cells", reach.Size())
	}
}
