package main

import (
	"fmt"
	"math"
)

// Mode selects how the frontier orders discovered cells
type Mode uint8

const (
	// ModeDijkstra orders the frontier by actual distance alone
	ModeDijkstra Mode = iota
	// ModeAStar adds a floored Euclidean estimate toward the goal
	ModeAStar
)

// String returns the mode name used in scenarios and flags
func (m Mode) String() string {
	if m == ModeAStar {
		return "astar"
	}
	return "dijkstra"
}

// ParseMode resolves a mode name from a scenario file or flag
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dijkstra":
		return ModeDijkstra, nil
	case "astar", "a*":
		return ModeAStar, nil
	default:
		return ModeDijkstra, fmt.Errorf("unknown search mode %q", s)
	}
}

// SearchState is the lifecycle phase of a search
type SearchState uint8

const (
	// SearchNotStarted means no step has run; obstacles may still be painted
	SearchNotStarted SearchState = iota
	// SearchRunning means at least one step ran and the goal is still open
	SearchRunning
	// SearchCompleted means the goal settled and the path is marked
	SearchCompleted
	// SearchExhausted means the frontier emptied before reaching the goal
	SearchExhausted
)

// String returns a human-readable state name
func (s SearchState) String() string {
	switch s {
	case SearchNotStarted:
		return "not-started"
	case SearchRunning:
		return "running"
	case SearchCompleted:
		return "completed"
	case SearchExhausted:
		return "exhausted"
	default:
		return "invalid"
	}
}

// Terminal reports whether the search can advance no further
func (s SearchState) Terminal() bool {
	return s == SearchCompleted || s == SearchExhausted
}

// Search is an incremental shortest-path search over a uniform-cost grid.
// Each Step settles one cell and relaxes its neighbors, so external
// drivers can pause, observe and resume at any step boundary. Step is the
// sole mutator and must not be called concurrently.
type Search struct {
	grid     *Grid
	frontier *Frontier
	mode     Mode
	start    Coord
	goal     Coord

	current     Coord
	currentDist int

	state        SearchState
	steps        int
	settledCount int
	path         []Coord
}

// NewSearch builds a search over an empty width x height grid. Start and
// goal must lie on the grid; a search whose start equals its goal
// completes immediately.
func NewSearch(width, height int, start, goal Coord, mode Mode) (*Search, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("start %s outside %dx%d grid", start, width, height)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("goal %s outside %dx%d grid", goal, width, height)
	}

	s := &Search{
		grid:     grid,
		frontier: NewFrontier(),
		mode:     mode,
		start:    start,
		goal:     goal,
		current:  start,
	}

	s.grid.setState(start, CellFrontier)
	s.grid.setDist(start, 0)

	if start == goal {
		s.grid.setState(start, CellSettled)
		s.settledCount++
		s.state = SearchCompleted
		s.reconstructPath()
		return s, nil
	}

	s.frontier.Push(start, s.priorityKey(0, start), 0)
	return s, nil
}

// State returns the current lifecycle phase
func (s *Search) State() SearchState { return s.state }

// Steps returns how many advancing Step calls have run
func (s *Search) Steps() int { return s.steps }

// SettledCount returns how many cells have a finalized distance
func (s *Search) SettledCount() int { return s.settledCount }

// Mode returns the frontier ordering mode
func (s *Search) Mode() Mode { return s.mode }

// Start returns the start coordinate
func (s *Search) Start() Coord { return s.start }

// Goal returns the goal coordinate
func (s *Search) Goal() Coord { return s.goal }

// Path returns the reconstructed path ordered start to goal, or nil while
// the search has not completed
func (s *Search) Path() []Coord {
	if s.path == nil {
		return nil
	}
	path := make([]Coord, len(s.path))
	copy(path, s.path)
	return path
}

// priorityKey computes the frontier key for a cell at the given distance
func (s *Search) priorityKey(dist int, c Coord) int {
	if s.mode == ModeAStar {
		return dist + heuristic(c, s.goal)
	}
	return dist
}

// heuristic is the floored Euclidean distance between two cells. It never
// overestimates on a unit-cost grid without diagonals, so A* keeps
// returning shortest paths.
func heuristic(a, b Coord) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// canPaint reports whether obstacle painting is still allowed. Obstacles
// are fixed once the first step runs.
func (s *Search) canPaint() bool {
	return s.state == SearchNotStarted
}

// paintObstacle marks one cell impassable. The start cell is skipped so
// the cursor invariant survives painting.
func (s *Search) paintObstacle(c Coord) {
	if c == s.start {
		return
	}
	s.grid.setState(c, CellObstacle)
}

// Step advances the search by one settlement: it relaxes the cursor's
// neighbors, settles the cursor, then pops the next cursor from the
// frontier. The returned state tells the driver whether to keep
// scheduling steps. Terminal states are idempotent no-ops.
func (s *Search) Step() SearchState {
	if s.state.Terminal() {
		return s.state
	}
	if s.current == s.goal {
		return s.state
	}
	if s.state == SearchNotStarted {
		s.state = SearchRunning
	}

	if got := s.grid.State(s.current); got != CellFrontier {
		panic(fmt.Sprintf("search cursor %s is %s, want frontier", s.current, got))
	}

	// Relax the four neighbors
	for _, n := range s.grid.Neighbors(s.current) {
		switch s.grid.State(n) {
		case CellUnknown:
			d := s.currentDist + 1
			s.grid.setState(n, CellFrontier)
			s.grid.setDist(n, d)
			s.frontier.Push(n, s.priorityKey(d, n), d)
		case CellFrontier:
			// First discovery wins on a unit-cost grid; a later visit
			// can never carry a shorter distance.
		case CellSettled, CellOnPath:
			if d := s.grid.DistAt(n); d > s.currentDist+1 {
				panic(fmt.Sprintf("settled cell %s has distance %d, worse than %d reachable via %s",
					n, d, s.currentDist+1, s.current))
			}
		case CellObstacle:
			// Impassable, never enters the frontier
		}
	}

	// Settle the cursor
	s.grid.setState(s.current, CellSettled)
	s.settledCount++
	s.steps++

	// Pop until a live entry surfaces or the frontier runs dry
	for {
		entry, ok := s.frontier.PopMin()
		if !ok {
			s.state = SearchExhausted
			return s.state
		}
		if s.grid.State(entry.Coord) != CellFrontier || s.grid.DistAt(entry.Coord) != entry.Dist {
			// Stale entry, superseded since it was pushed
			continue
		}
		s.current = entry.Coord
		s.currentDist = entry.Dist
		break
	}

	// Reaching the goal settles it and marks the path in the same step
	if s.current == s.goal {
		s.grid.setState(s.goal, CellSettled)
		s.settledCount++
		s.state = SearchCompleted
		s.reconstructPath()
	}
	return s.state
}
