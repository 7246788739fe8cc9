package main

import (
	"fmt"
	"log"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PolygonEntry wraps an obstacle polygon for R-tree storage
type PolygonEntry struct {
	Name    string
	Polygon orb.Polygon
	BBox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (p *PolygonEntry) Bounds() rtreego.Rect {
	return p.BBox
}

// SpatialIndex manages obstacle polygon spatial queries
type SpatialIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewSpatialIndex creates a new spatial index over obstacle polygons
func NewSpatialIndex(polygons []ObstaclePolygon) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	size := 0
	for _, op := range polygons {
		bbox, err := polygonBoundingBox(op.Polygon)
		if err != nil {
			log.Printf("⚠️  Skipping polygon %s: %v\n", op.Name, err)
			continue
		}
		tree.Insert(&PolygonEntry{Name: op.Name, Polygon: op.Polygon, BBox: bbox})
		size++
	}

	return &SpatialIndex{tree: tree, size: size}
}

// Size returns the number of indexed polygons
func (si *SpatialIndex) Size() int {
	return si.size
}

// QueryCell returns polygons whose bounding boxes intersect the unit
// square of the given grid cell
func (si *SpatialIndex) QueryCell(c Coord) []orb.Polygon {
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(c.X), float64(c.Y)},
		[]float64{1, 1},
	)
	if err != nil {
		return []orb.Polygon{}
	}

	results := si.tree.SearchIntersect(bbox)
	polygons := make([]orb.Polygon, 0, len(results))

	for _, item := range results {
		entry := item.(*PolygonEntry)
		polygons = append(polygons, entry.Polygon)
	}

	return polygons
}

// polygonBoundingBox computes the axis-aligned bounding box for a
// polygon, padding flat extents so degenerate polygons still index
func polygonBoundingBox(poly orb.Polygon) (rtreego.Rect, error) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return rtreego.Rect{}, fmt.Errorf("polygon has no vertices")
	}

	bound := poly.Bound()
	w := bound.Max[0] - bound.Min[0]
	h := bound.Max[1] - bound.Min[1]

	const minExtent = 1e-9
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}

	return rtreego.NewRect(
		rtreego.Point{bound.Min[0], bound.Min[1]},
		[]float64{w, h},
	)
}

// RasterizePolygons paints an obstacle on every cell whose center lies
// inside one of the indexed polygons. It reports how many cells were
// covered and fails once the search has started.
func RasterizePolygons(s *Search, index *SpatialIndex) (int, error) {
	if !s.canPaint() {
		return 0, fmt.Errorf("cannot place obstacles once the search is %s", s.State())
	}

	covered := 0
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			c := Coord{X: x, Y: y}
			center := orb.Point{float64(x) + 0.5, float64(y) + 0.5}
			for _, poly := range index.QueryCell(c) {
				if planar.PolygonContains(poly, center) {
					s.paintObstacle(c)
					covered++
					break
				}
			}
		}
	}

	return covered, nil
}
