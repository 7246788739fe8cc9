package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ObstaclePolygon is one impassable region loaded from a GeoJSON file.
// Coordinates are in grid units: vertex (2.0, 3.0) sits on the corner
// shared by cells (1, 2), (2, 2), (1, 3) and (2, 3).
type ObstaclePolygon struct {
	Name    string
	Polygon orb.Polygon
}

// LoadObstaclePolygons loads every *.geojson file in dir, keeps Polygon
// and MultiPolygon features, and drops polygons fully contained in
// another. Unreadable or malformed files are skipped with a warning.
func LoadObstaclePolygons(dir string) ([]ObstaclePolygon, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	log.Printf("📂 Loading obstacle polygons from %d GeoJSON files...\n", len(files))

	var all []ObstaclePolygon
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("⚠️  Failed to read %s: %v\n", file, err)
			continue
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			log.Printf("⚠️  Failed to parse %s: %v\n", file, err)
			continue
		}

		count := 0
		for _, feature := range fc.Features {
			name := featureName(feature, filepath.Base(file))
			switch geom := feature.Geometry.(type) {
			case orb.Polygon:
				all = append(all, ObstaclePolygon{Name: name, Polygon: geom})
				count++
			case orb.MultiPolygon:
				for _, poly := range geom {
					all = append(all, ObstaclePolygon{Name: name, Polygon: poly})
					count++
				}
			}
		}

		log.Printf("   ✅ Loaded %d polygons from %s\n", count, filepath.Base(file))
	}

	before := len(all)
	all = removeContainedPolygons(all)
	if removed := before - len(all); removed > 0 {
		log.Printf("   Polygons after removing contained: %d (removed %d)\n", len(all), removed)
	}

	log.Printf("🗺️  Total obstacle polygons loaded: %d\n", len(all))
	return all, nil
}

// featureName pulls the name property, falling back to the file name
func featureName(feature *geojson.Feature, fallback string) string {
	if name, ok := feature.Properties["name"].(string); ok && name != "" {
		return name
	}
	return fallback
}

// removeContainedPolygons removes polygons fully contained within other
// polygons; they cannot change which cells get painted
func removeContainedPolygons(polygons []ObstaclePolygon) []ObstaclePolygon {
	if len(polygons) <= 1 {
		return polygons
	}

	contained := make([]bool, len(polygons))
	for i := 0; i < len(polygons); i++ {
		if contained[i] {
			continue
		}
		for j := 0; j < len(polygons); j++ {
			if i == j || contained[j] {
				continue
			}
			if isPolygonContainedIn(polygons[i].Polygon, polygons[j].Polygon) {
				contained[i] = true
				break
			}
			if isPolygonContainedIn(polygons[j].Polygon, polygons[i].Polygon) {
				contained[j] = true
			}
		}
	}

	result := make([]ObstaclePolygon, 0, len(polygons))
	for i, p := range polygons {
		if !contained[i] {
			result = append(result, p)
		}
	}
	return result
}

// isPolygonContainedIn checks if polygon a is fully contained within
// polygon b, using a bounding box rejection before the per-vertex test
func isPolygonContainedIn(a, b orb.Polygon) bool {
	if len(a) == 0 || len(a[0]) == 0 || len(b) == 0 {
		return false
	}

	ab, bb := a.Bound(), b.Bound()
	if ab.Min[0] < bb.Min[0] || ab.Max[0] > bb.Max[0] ||
		ab.Min[1] < bb.Min[1] || ab.Max[1] > bb.Max[1] {
		return false
	}

	for _, vertex := range a[0] {
		if !planar.PolygonContains(b, vertex) {
			return false
		}
	}
	return true
}
