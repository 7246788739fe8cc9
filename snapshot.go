package main

// Snapshot is a read-only view of a search for renderers and the HTTP
// API: grid dimensions, per-cell classification, recorded distances, the
// cursor and the endpoints. Slices are copies, so mutating a snapshot
// never touches the engine, and frontier internals are not exposed.
type Snapshot struct {
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	Cells        []CellState `json:"cells"`
	Dist         []int       `json:"dist"`
	Start        Coord       `json:"start"`
	Goal         Coord       `json:"goal"`
	Current      Coord       `json:"current"`
	CurrentDist  int         `json:"current_dist"`
	Mode         string      `json:"mode"`
	State        SearchState `json:"state"`
	StateName    string      `json:"state_name"`
	Steps        int         `json:"steps"`
	SettledCount int         `json:"settled"`
	Path         []Coord     `json:"path,omitempty"`
}

// Snapshot captures the search state at the current step boundary
func (s *Search) Snapshot() Snapshot {
	cells := make([]CellState, len(s.grid.states))
	copy(cells, s.grid.states)
	dist := make([]int, len(s.grid.dist))
	copy(dist, s.grid.dist)

	return Snapshot{
		Width:        s.grid.width,
		Height:       s.grid.height,
		Cells:        cells,
		Dist:         dist,
		Start:        s.start,
		Goal:         s.goal,
		Current:      s.current,
		CurrentDist:  s.currentDist,
		Mode:         s.mode.String(),
		State:        s.state,
		StateName:    s.state.String(),
		Steps:        s.steps,
		SettledCount: s.settledCount,
		Path:         s.Path(),
	}
}

// At returns the classification at c, or CellOutOfBounds off the grid
func (sn Snapshot) At(c Coord) CellState {
	if c.X < 0 || c.X >= sn.Width || c.Y < 0 || c.Y >= sn.Height {
		return CellOutOfBounds
	}
	return sn.Cells[c.Y*sn.Width+c.X]
}

// DistanceAt returns the recorded distance at c, or -1 off the grid
func (sn Snapshot) DistanceAt(c Coord) int {
	if c.X < 0 || c.X >= sn.Width || c.Y < 0 || c.Y >= sn.Height {
		return -1
	}
	return sn.Dist[c.Y*sn.Width+c.X]
}
