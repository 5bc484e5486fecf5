package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// Params controls maze generation.
type Params struct {
	Rows         int
	Cols         int
	Keys         int
	Distractions int
	WallDensity  float64 // chance an interior wall survives the opening pass
}

// MinSize is the smallest accepted grid dimension.
const MinSize = 5

// Start is the player's fixed starting cell.
var Start = Position{Row: 1, Col: 1}

// ExitFor returns the exit position for a grid size: the far inner corner.
func ExitFor(rows, cols int) Position {
	return Position{Row: rows - 2, Col: cols - 2}
}

func (p Params) normalized() Params {
	p.Rows = max(p.Rows, MinSize)
	p.Cols = max(p.Cols, MinSize)
	p.Keys = max(p.Keys, 0)
	p.Distractions = max(p.Distractions, 0)
	p.WallDensity = min(max(p.WallDensity, 0), 1)
	return p
}

// Generate builds a new maze. The exit is always reachable from Start without
// crossing a distraction, and so is every key. When the requested items cannot
// fit, fewer are placed.
func Generate(p Params, rng core.RNG) *Grid {
	p = p.normalized()
	g := NewGrid(p.Rows, p.Cols)

	carve(g, rng)
	openWalls(g, p.WallDensity, rng)

	exit := ExitFor(p.Rows, p.Cols)
	linkExit(g, exit)
	g.Set(exit, Exit)

	placeDistractions(g, p, rng)
	placeKeys(g, p.Keys, rng)
	return g
}

// carve runs a randomized depth-first search from Start over the odd-indexed
// lattice, knocking down the wall between each pair of visited cells.
func carve(g *Grid, rng core.RNG) {
	g.Set(Start, Open)
	stack := []Position{Start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []Direction
		for _, d := range directions {
			n := cur.Step(d).Step(d)
			if g.Interior(n) && g.At(n) == Wall {
				next = append(next, d)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := next[rng.Intn(len(next))]
		g.Set(cur.Step(d), Open)
		n := cur.Step(d).Step(d)
		g.Set(n, Open)
		stack = append(stack, n)
	}
}

// openWalls opens each interior wall with probability 1-density.
func openWalls(g *Grid, density float64, rng core.RNG) {
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			p := Position{Row: r, Col: c}
			if g.At(p) == Wall && rng.Float64() >= density {
				g.Set(p, Open)
			}
		}
	}
}

// linkExit connects the exit to the carved lattice. On odd dimensions the
// exit already sits on the lattice; on even ones up to two cells are opened.
func linkExit(g *Grid, exit Position) {
	corner := exit
	if corner.Row%2 == 0 {
		corner.Row--
	}
	if corner.Col%2 == 0 {
		corner.Col--
	}
	for r := corner.Row; r <= exit.Row; r++ {
		openIfWall(g, Position{Row: r, Col: corner.Col})
	}
	for c := corner.Col; c <= exit.Col; c++ {
		openIfWall(g, Position{Row: exit.Row, Col: c})
	}
}

func openIfWall(g *Grid, p Position) {
	if g.At(p) == Wall {
		g.Set(p, Open)
	}
}

// Reachable returns every cell reachable from `from` through cells that are
// neither walls nor distractions. The exit is entered but never passed
// through, since a locked exit does not let the player cross it.
func Reachable(g *Grid, from Position) mapset.Set[Position] {
	seen := mapset.New[Position]()
	if blocked(g.At(from)) {
		return seen
	}

	seen.Put(from)
	queue := []Position{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if g.At(cur) == Exit && cur != from {
			continue
		}
		for _, d := range directions {
			n := cur.Step(d)
			if !g.InBounds(n) || blocked(g.At(n)) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

func blocked(c Cell) bool {
	return c == Wall || c == Distraction
}

// freeCells lists open interior cells other than start and exit, row-major.
// When reach is non-nil only cells in it are listed.
func freeCells(g *Grid, reach *mapset.Set[Position]) []Position {
	exit := ExitFor(g.rows, g.cols)
	var out []Position
	for _, p := range g.Positions(Open) {
		if p == Start || p == exit || !g.Interior(p) {
			continue
		}
		if reach != nil && !reach.Has(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func shuffled(ps []Position, rng core.RNG) []Position {
	core.Shuffle(rng, len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
	return ps
}

// placeDistractions drops distractions one at a time, keeping only those that
// leave the exit and enough key cells reachable. If the grid is too tight it
// opens another interior wall and starts over.
func placeDistractions(g *Grid, p Params, rng core.RNG) {
	for {
		placed := tryDistractions(g, p, rng)
		if len(placed) == p.Distractions && roomForKeys(g, p.Keys) {
			return
		}
		walls := interiorWalls(g)
		if len(walls) == 0 {
			// Fully open and still too tight: keep what fits.
			return
		}
		for _, pos := range placed {
			g.Set(pos, Open)
		}
		g.Set(walls[rng.Intn(len(walls))], Open)
	}
}

func tryDistractions(g *Grid, p Params, rng core.RNG) []Position {
	exit := ExitFor(g.rows, g.cols)
	var placed []Position
	for _, pos := range shuffled(freeCells(g, nil), rng) {
		if len(placed) == p.Distractions {
			break
		}
		g.Set(pos, Distraction)
		if Reachable(g, Start).Has(exit) && roomForKeys(g, p.Keys) {
			placed = append(placed, pos)
			continue
		}
		g.Set(pos, Open)
	}
	return placed
}

func roomForKeys(g *Grid, keys int) bool {
	reach := Reachable(g, Start)
	return len(freeCells(g, &reach)) >= keys
}

func interiorWalls(g *Grid) []Position {
	var out []Position
	for _, p := range g.Positions(Wall) {
		if g.Interior(p) {
			out = append(out, p)
		}
	}
	return out
}

// placeKeys puts keys on random free cells reachable from Start.
func placeKeys(g *Grid, keys int, rng core.RNG) {
	reach := Reachable(g, Start)
	cells := shuffled(freeCells(g, &reach), rng)
	for _, pos := range cells[:min(keys, len(cells))] {
		g.Set(pos, Key)
	}
}
