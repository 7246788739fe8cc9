package main

import (
	"fmt"
	"math"
)

// reconstructPath walks backward from the goal through settled cells,
// marking every visited cell including both endpoints, and records the
// path in start-to-goal order. Each hop moves to a settled neighbor with
// the minimum recorded distance, which on a unit-cost grid is always
// exactly one unit closer to start.
func (s *Search) reconstructPath() {
	reversed := []Coord{}

	cursor := s.goal
	for {
		s.grid.setState(cursor, CellOnPath)
		reversed = append(reversed, cursor)
		if cursor == s.start {
			break
		}
		cursor = s.closestSettledNeighbor(cursor)
	}

	s.path = make([]Coord, len(reversed))
	for i, c := range reversed {
		s.path[len(reversed)-1-i] = c
	}
}

// closestSettledNeighbor picks the settled neighbor of c with the
// smallest recorded distance, ties broken by coordinate order. Cells
// already marked as path are skipped, so the walk never doubles back.
func (s *Search) closestSettledNeighbor(c Coord) Coord {
	var best Coord
	bestDist := -1

	for _, n := range s.grid.Neighbors(c) {
		if s.grid.State(n) != CellSettled {
			continue
		}
		d := s.grid.DistAt(n)
		if bestDist == -1 || d < bestDist || (d == bestDist && n.Less(best)) {
			best = n
			bestDist = d
		}
	}

	if bestDist == -1 {
		panic(fmt.Sprintf("path cell %s has no settled neighbor", c))
	}
	return best
}

// SimplifyPath reduces a cell-by-cell path to its corner waypoints using
// the Douglas-Peucker algorithm. Epsilon is in grid units; any value
// below 1 keeps every true corner of a 4-connected path.
func SimplifyPath(path []Coord, epsilon float64) []Coord {
	if len(path) <= 2 {
		simplified := make([]Coord, len(path))
		copy(simplified, path)
		return simplified
	}
	return douglasPeucker(path, epsilon)
}

// douglasPeucker implements the Douglas-Peucker line simplification
// algorithm over grid coordinates
func douglasPeucker(points []Coord, epsilon float64) []Coord {
	if len(points) <= 2 {
		return points
	}

	// Find the point with maximum distance from line between first and last
	dmax := 0.0
	index := 0
	end := len(points) - 1

	for i := 1; i < end; i++ {
		d := perpendicularDistance(points[i], points[0], points[end])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	// If max distance is greater than epsilon, recursively simplify
	if dmax > epsilon {
		left := douglasPeucker(points[0:index+1], epsilon)
		right := douglasPeucker(points[index:], epsilon)

		// Combine results, dropping the duplicated split point
		result := make([]Coord, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	// All points in between can be discarded
	return []Coord{points[0], points[end]}
}

// perpendicularDistance calculates the perpendicular distance from a
// point to the line through lineStart and lineEnd
func perpendicularDistance(point, lineStart, lineEnd Coord) float64 {
	dx := float64(lineEnd.X - lineStart.X)
	dy := float64(lineEnd.Y - lineStart.Y)

	mag := math.Sqrt(dx*dx + dy*dy)
	if mag > 0 {
		dx /= mag
		dy /= mag
	}

	pvx := float64(point.X - lineStart.X)
	pvy := float64(point.Y - lineStart.Y)

	// Project pv onto the normalized direction, keep the rejection
	pvdot := dx*pvx + dy*pvy
	ax := pvx - pvdot*dx
	ay := pvy - pvdot*dy

	return math.Sqrt(ax*ax + ay*ay)
}
