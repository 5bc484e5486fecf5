// Package maze implements the key-collecting maze: a randomized carved grid
// with keys to gather, distractions that reshuffle the maze, and an exit that
// stays locked until every key is collected.
package maze

// Cell is the content of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
	Key
	Distraction
	Exit
)

// String returns a stable name for the cell, used in snapshots.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Key:
		return "key"
	case Distraction:
		return "distraction"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the cell by name.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Position is a (row, col) grid coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the (row, col) offset of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Grid is a rows×cols arena of cells stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid returns a grid with every cell a wall.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Interior reports whether p lies strictly inside the border.
func (g *Grid) Interior(p Position) bool {
	return p.Row > 0 && p.Row < g.rows-1 && p.Col > 0 && p.Col < g.cols-1
}

// Index returns the row-major index of p.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// At returns the cell at p. Positions off the grid read as walls.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.Index(p)]
}

// Set stores c at p. Positions off the grid are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.Index(p)] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Positions lists every position holding c in row-major order.
func (g *Grid) Positions(c Cell) []Position {
	var out []Position
	for i, v := range g.cells {
		if v == c {
			out = append(out, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: append([]Cell(nil), g.cells...)}
}

// Rows2D returns the grid as a fresh slice of rows.
func (g *Grid) Rows2D() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = append([]Cell(nil), g.cells[r*g.cols:(r+1)*g.cols]...)
	}
	return out
}
