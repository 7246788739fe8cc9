package main

import "testing"

func TestSnapshot_IsolatedFromEngine(t *testing.T) {
	s := mustSearch(t, 5, 5, Coord{0, 0}, Coord{4, 4}, ModeDijkstra)
	s.Step()
	s.Step()

	snap := s.Snapshot()

	// Scribbling over the snapshot must not disturb the engine
	for i := range snap.Cells {
		snap.Cells[i] = CellObstacle
		snap.Dist[i] = 999
	}

	if got := s.grid.State(Coord{0, 0}); got != CellSettled {
		t.Fatalf("engine cell (0, 0) = %s after mutating a snapshot", got)
	}
	fresh := s.Snapshot()
	if fresh.At(Coord{0, 0}) != CellSettled {
		t.Fatalf("fresh snapshot shows %s at (0, 0)", fresh.At(Coord{0, 0}))
	}
	if fresh.DistanceAt(Coord{0, 0}) != 0 {
		t.Fatalf("fresh snapshot distance at (0, 0) = %d", fresh.DistanceAt(Coord{0, 0}))
	}
}

func TestSnapshot_ReflectsProgress(t *testing.T) {
	s := mustSearch(t, 4, 4, Coord{0, 0}, Coord{3, 3}, ModeAStar)

	snap := s.Snapshot()
	if snap.State != SearchNotStarted || snap.StateName != "not-started" {
		t.Fatalf("initial snapshot state = %s (%q)", snap.State, snap.StateName)
	}
	if snap.Mode != "astar" {
		t.Fatalf("snapshot mode = %q, want astar", snap.Mode)
	}
	if snap.Current != (Coord{0, 0}) || snap.CurrentDist != 0 {
		t.Fatalf("initial cursor = %s at %d", snap.Current, snap.CurrentDist)
	}
	if snap.Path != nil {
		t.Fatalf("initial snapshot carries a path of %d cells", len(snap.Path))
	}

	drainSearch(t, s)
	snap = s.Snapshot()

	if snap.State != SearchCompleted {
		t.Fatalf("final snapshot state = %s", snap.State)
	}
	if snap.Current != snap.Goal {
		t.Fatalf("final cursor = %s, goal = %s", snap.Current, snap.Goal)
	}
	if len(snap.Path) != 7 {
		t.Fatalf("final path length = %d, want 7", len(snap.Path))
	}
	if snap.Steps != s.Steps() || snap.SettledCount != s.SettledCount() {
		t.Fatalf("snapshot counters %d/%d, engine %d/%d",
			snap.Steps, snap.SettledCount, s.Steps(), s.SettledCount())
	}
}

func TestSnapshot_BoundsQueries(t *testing.T) {
	s := mustSearch(t, 3, 2, Coord{0, 0}, Coord{2, 1}, ModeDijkstra)
	snap := s.Snapshot()

	if got := snap.At(Coord{3, 0}); got != CellOutOfBounds {
		t.Fatalf("At outside grid = %s, want out-of-bounds", got)
	}
	if got := snap.At(Coord{0, -1}); got != CellOutOfBounds {
		t.Fatalf("At outside grid = %s, want out-of-bounds", got)
	}
	if got := snap.DistanceAt(Coord{-1, 0}); got != -1 {
		t.Fatalf("DistanceAt outside grid = %d, want -1", got)
	}
	if got := snap.At(Coord{0, 0}); got != CellFrontier {
		t.Fatalf("At(start) = %s, want frontier", got)
	}
}
