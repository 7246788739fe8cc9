package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

// Default grid matching the classic 20x20 demo layout
const (
	DefaultGridWidth  = 20
	DefaultGridHeight = 20
)

// Wall is one rasterized obstacle segment, half-open over its major axis
type Wall struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// Scenario bundles everything needed to reproduce a search run
type Scenario struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Start       Coord  `json:"start"`
	Goal        Coord  `json:"goal"`
	Mode        string `json:"mode"`
	Walls       []Wall `json:"walls,omitempty"`
	PolygonsDir string `json:"polygonsDir,omitempty"`
}

// DefaultScenario returns the corner-to-corner 20x20 Dijkstra run
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:   "classic-20x20",
		Width:  DefaultGridWidth,
		Height: DefaultGridHeight,
		Start:  Coord{X: 0, Y: 0},
		Goal:   Coord{X: DefaultGridWidth - 1, Y: DefaultGridHeight - 1},
		Mode:   ModeDijkstra.String(),
	}
}

// Validate checks the scenario fields before a search is built from them
func (sc *Scenario) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", sc.Width, sc.Height)
	}
	if !sc.contains(sc.Start) {
		return fmt.Errorf("start %s is outside the %dx%d grid", sc.Start, sc.Width, sc.Height)
	}
	if !sc.contains(sc.Goal) {
		return fmt.Errorf("goal %s is outside the %dx%d grid", sc.Goal, sc.Width, sc.Height)
	}
	if _, err := ParseMode(sc.Mode); err != nil {
		return err
	}
	return nil
}

func (sc *Scenario) contains(c Coord) bool {
	return c.X >= 0 && c.X < sc.Width && c.Y >= 0 && c.Y < sc.Height
}

// NewSearch builds a fresh search from the scenario, placing its walls
// and rasterizing its obstacle polygons. A non-empty modeOverride wins
// over the scenario's own mode.
func (sc *Scenario) NewSearch(modeOverride string) (*Search, error) {
	modeName := sc.Mode
	if modeOverride != "" {
		modeName = modeOverride
	}
	mode, err := ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	s, err := NewSearch(sc.Width, sc.Height, sc.Start, sc.Goal, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to build search: %w", err)
	}

	for _, wall := range sc.Walls {
		if err := s.PlaceObstacle(wall.From, wall.To); err != nil {
			return nil, fmt.Errorf("failed to place wall %s to %s: %w", wall.From, wall.To, err)
		}
	}

	if sc.PolygonsDir != "" {
		polygons, err := LoadObstaclePolygons(sc.PolygonsDir)
		if err != nil {
			return nil, err
		}
		if len(polygons) > 0 {
			covered, err := RasterizePolygons(s, NewSpatialIndex(polygons))
			if err != nil {
				return nil, err
			}
			log.Printf("   🗺️  Rasterized %d polygon-covered cells\n", covered)
		}
	}

	return s, nil
}

// runToTermination advances the search until it reaches a terminal state
func runToTermination(s *Search) SearchState {
	for !s.State().Terminal() {
		s.Step()
	}
	return s.State()
}

// GenerateScenario creates a random scenario with the requested number of
// walls, retrying until a solvable layout comes up. When every attempt
// fails it returns the last candidate anyway.
func GenerateScenario(width, height, wallCount int, seed int64) *Scenario {
	startTime := time.Now()
	log.Printf("🗺️  Generating %dx%d scenario with %d walls (seed %d)...\n",
		width, height, wallCount, seed)

	rng := rand.New(rand.NewSource(seed))

	const maxAttempts = 25
	var candidate *Scenario

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate = randomScenario(rng, width, height, wallCount)

		s, err := candidate.NewSearch("")
		if err != nil {
			continue
		}
		if runToTermination(s) == SearchCompleted {
			log.Printf("   ✅ Solvable layout found on attempt %d\n", attempt)
			log.Printf("   ⏱️  Generation time: %.2f seconds\n", time.Since(startTime).Seconds())
			return candidate
		}
	}

	log.Printf("   ⚠️  No solvable layout in %d attempts, returning last candidate\n", maxAttempts)
	return candidate
}

func randomScenario(rng *rand.Rand, width, height, wallCount int) *Scenario {
	sc := &Scenario{
		Name:   fmt.Sprintf("random-%dx%d", width, height),
		Width:  width,
		Height: height,
		Mode:   ModeDijkstra.String(),
		Start:  Coord{X: rng.Intn(width), Y: rng.Intn(height)},
	}

	sc.Goal = sc.Start
	if width*height > 1 {
		for sc.Goal == sc.Start {
			sc.Goal = Coord{X: rng.Intn(width), Y: rng.Intn(height)}
		}
	}

	for i := 0; i < wallCount; i++ {
		sc.Walls = append(sc.Walls, randomWall(rng, width, height))
	}
	return sc
}

// randomWall picks a horizontal or vertical segment spanning up to half
// the grid. Out-of-bounds spans get clipped at raster time.
func randomWall(rng *rand.Rand, width, height int) Wall {
	from := Coord{X: rng.Intn(width), Y: rng.Intn(height)}
	if rng.Intn(2) == 0 {
		span := 1 + rng.Intn(max(width/2, 1))
		return Wall{From: from, To: Coord{X: from.X + span, Y: from.Y}}
	}
	span := 1 + rng.Intn(max(height/2, 1))
	return Wall{From: from, To: Coord{X: from.X, Y: from.Y + span}}
}

// SaveScenario serializes and saves the scenario to a JSON file
func SaveScenario(sc *Scenario, filename string) error {
	log.Printf("💾 Saving scenario to %s...\n", filename)

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Scenario saved (%d bytes)\n", len(data))
	return nil
}

// LoadScenario deserializes and loads a scenario from a JSON file
func LoadScenario(filename string) (*Scenario, error) {
	log.Printf("📂 Loading scenario from %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var sc Scenario
	err = json.Unmarshal(data, &sc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	log.Printf("   ✅ Scenario loaded: %s (%dx%d, %s)\n", sc.Name, sc.Width, sc.Height, sc.Mode)
	return &sc, nil
}
