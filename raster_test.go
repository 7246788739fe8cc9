package main

import "testing"

// obstacleCells collects every painted cell for easy comparison
func obstacleCells(s *Search) map[Coord]bool {
	painted := map[Coord]bool{}
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			c := Coord{x, y}
			if s.grid.State(c) == CellObstacle {
				painted[c] = true
			}
		}
	}
	return painted
}

func placeWall(t *testing.T, s *Search, from, to Coord) {
	t.Helper()
	if err := s.PlaceObstacle(from, to); err != nil {
		t.Fatalf("PlaceObstacle(%s, %s) failed: %v", from, to, err)
	}
}

func assertObstacles(t *testing.T, s *Search, want []Coord) {
	t.Helper()
	painted := obstacleCells(s)
	if len(painted) != len(want) {
		t.Fatalf("painted %d cells %v, want %d", len(painted), painted, len(want))
	}
	for _, c := range want {
		if !painted[c] {
			t.Fatalf("cell %s not painted, painted set: %v", c, painted)
		}
	}
}

func TestPlaceObstacle_HorizontalLine(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 0}, Coord{4, 4}, ModeDijkstra)
	placeWall(t, s, Coord{0, 2}, Coord{4, 2})

	// The end column stays free: the range is half-open
	assertObstacles(t, s, []Coord{{0, 2}, {1, 2}, {2, 2}, {3, 2}})
}

func TestPlaceObstacle_DiagonalSkipsStart(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 0}, Coord{4, 4}, ModeDijkstra)
	placeWall(t, s, Coord{0, 0}, Coord{4, 4})

	// (0, 0) is the start cell and is never painted over
	assertObstacles(t, s, []Coord{{1, 1}, {2, 2}, {3, 3}})
	if got := s.grid.State(Coord{0, 0}); got != CellFrontier {
		t.Fatalf("start cell = %s, want frontier", got)
	}
}

func TestPlaceObstacle_SteepSlope(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{4, 4}, Coord{0, 4}, ModeDijkstra)
	placeWall(t, s, Coord{0, 0}, Coord{2, 4})

	// Slope 2 samples one cell per column
	assertObstacles(t, s, []Coord{{0, 0}, {1, 2}})
}

func TestPlaceObstacle_VerticalLine(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 0}, Coord{4, 4}, ModeDijkstra)
	placeWall(t, s, Coord{2, 1}, Coord{2, 4})

	assertObstacles(t, s, []Coord{{2, 1}, {2, 2}, {2, 3}})
}

func TestPlaceObstacle_ReversedRangesPaintNothing(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 0}, Coord{4, 4}, ModeDijkstra)
	placeWall(t, s, Coord{3, 0}, Coord{1, 0})
	placeWall(t, s, Coord{2, 4}, Coord{2, 1})

	assertObstacles(t, s, nil)
}

func TestPlaceObstacle_ClipsToGrid(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 3}, Coord{4, 4}, ModeDijkstra)
	placeWall(t, s, Coord{-2, 1}, Coord{7, 1})

	assertObstacles(t, s, []Coord{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}})
}

func TestPlaceObstacle_BlocksTraversal(t *testing.T) {
	// A wall with a single gap forces the path through the gap
	//   S . . . .
	//   # # # # .
	//   . . . . .
	//   . . G . .
	s := mustSearch(t, 5, 4, Coord{0, 0}, Coord{2, 3}, ModeDijkstra)
	placeWall(t, s, Coord{0, 1}, Coord{4, 1})

	if st := drainSearch(t, s); st != SearchCompleted {
		t.Fatalf("terminal state = %s, want completed", st)
	}
	// Around through (4, 1): 4 right, 2 down, 2 left, 1 down
	if got := s.grid.DistAt(Coord{2, 3}); got != 9 {
		t.Fatalf("goal distance = %d, want 9", got)
	}
}
