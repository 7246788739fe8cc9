package main

import "fmt"

// Coord addresses a single cell on the grid
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the coordinate as (x, y) for logs and errors
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Less orders coordinates lexicographically, X before Y
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// CellState is the classification of a single grid cell
type CellState uint8

const (
	// CellUnknown marks a cell the search has never discovered
	CellUnknown CellState = iota
	// CellFrontier marks a discovered cell that is not yet settled
	CellFrontier
	// CellSettled marks a cell whose shortest distance is final
	CellSettled
	// CellObstacle marks a permanently impassable cell
	CellObstacle
	// CellOnPath marks a settled cell on the reconstructed path
	CellOnPath
	// CellOutOfBounds is returned for reads outside the grid, never stored
	CellOutOfBounds
)

// String returns a human-readable name for the cell state
func (s CellState) String() string {
	switch s {
	case CellUnknown:
		return "unknown"
	case CellFrontier:
		return "frontier"
	case CellSettled:
		return "settled"
	case CellObstacle:
		return "obstacle"
	case CellOnPath:
		return "path"
	case CellOutOfBounds:
		return "out-of-bounds"
	default:
		return "invalid"
	}
}

// Grid owns the per-cell classification and recorded distances for one
// search. Cells are stored row-major; dimensions are fixed at construction.
type Grid struct {
	width  int
	height int
	states []CellState
	dist   []int
}

// NewGrid creates an empty grid with every cell unknown
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		states: make([]CellState, width*height),
		dist:   make([]int, width*height),
	}, nil
}

// Width returns the horizontal cell count
func (g *Grid) Width() int { return g.width }

// Height returns the vertical cell count
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the coordinate lies on the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// State returns the cell's classification, or CellOutOfBounds for
// coordinates off the grid
func (g *Grid) State(c Coord) CellState {
	if !g.InBounds(c) {
		return CellOutOfBounds
	}
	return g.states[g.index(c)]
}

// setState writes a cell's classification. Out-of-bounds writes are
// silently dropped; obstacle rasterization relies on that.
func (g *Grid) setState(c Coord, s CellState) {
	if !g.InBounds(c) {
		return
	}
	g.states[g.index(c)] = s
}

// DistAt returns the distance recorded for a cell, or -1 off the grid.
// The value is only meaningful for frontier, settled and path cells.
func (g *Grid) DistAt(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	return g.dist[g.index(c)]
}

func (g *Grid) setDist(c Coord, d int) {
	if !g.InBounds(c) {
		return
	}
	g.dist[g.index(c)] = d
}

// Neighbors returns the in-bounds axis-aligned neighbors of c in the fixed
// order up, down, left, right. The order is stable so downstream
// tie-breaking stays deterministic.
func (g *Grid) Neighbors(c Coord) []Coord {
	candidates := [4]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}

	neighbors := make([]Coord, 0, 4)
	for _, n := range candidates {
		if g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
