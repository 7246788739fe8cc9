package main

import "fmt"

// PlaceObstacle rasterizes a straight obstacle line between two cells by
// slope-based sampling over the half-open range [from.X, to.X): the end
// column itself stays free, and a range running backwards paints nothing.
// Vertical segments sample [from.Y, to.Y) instead, mirroring the same
// half-open contract. Samples falling off the grid are dropped, the start
// cell is never painted, and painting is rejected once the first step has
// run.
func (s *Search) PlaceObstacle(from, to Coord) error {
	if !s.canPaint() {
		return fmt.Errorf("cannot place obstacles once the search is %s", s.state)
	}

	if from.X == to.X {
		for y := from.Y; y < to.Y; y++ {
			s.paintObstacle(Coord{X: from.X, Y: y})
		}
		return nil
	}

	slope := float64(to.Y-from.Y) / float64(to.X-from.X)
	for x := from.X; x < to.X; x++ {
		y := from.Y + int(slope*float64(x-from.X))
		s.paintObstacle(Coord{X: x, Y: y})
	}
	return nil
}
