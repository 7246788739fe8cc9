package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

// SolveReport summarizes one search run to termination
type SolveReport struct {
	RunID     string  `json:"runId"`
	Scenario  string  `json:"scenario"`
	Mode      string  `json:"mode"`
	State     string  `json:"state"`
	Steps     int     `json:"steps"`
	Settled   int     `json:"settled"`
	Distance  int     `json:"distance"`
	PathCells int     `json:"pathCells,omitempty"`
	Waypoints []Coord `json:"waypoints,omitempty"`
	ElapsedMS float64 `json:"elapsedMs"`
	MinStepNS int64   `json:"minStepNs,omitempty"`
	AvgStepNS int64   `json:"avgStepNs,omitempty"`
	MaxStepNS int64   `json:"maxStepNs,omitempty"`
}

// RunSolve drives a search to termination, timing every step. Completed
// runs carry the goal distance and a simplified waypoint list; exhausted
// runs report a distance of -1.
func RunSolve(s *Search, sc *Scenario, epsilon float64) *SolveReport {
	log.Printf("🔍 Running %s on %s...\n", s.Mode(), sc.Name)
	startTime := time.Now()

	var minStep, maxStep, total time.Duration
	timed := 0
	for !s.State().Terminal() {
		t0 := time.Now()
		s.Step()
		d := time.Since(t0)

		total += d
		if timed == 0 || d < minStep {
			minStep = d
		}
		if d > maxStep {
			maxStep = d
		}
		timed++
	}
	elapsed := time.Since(startTime)

	snap := s.Snapshot()
	report := &SolveReport{
		RunID:     uuid.NewString(),
		Scenario:  sc.Name,
		Mode:      s.Mode().String(),
		State:     snap.StateName,
		Steps:     snap.Steps,
		Settled:   snap.SettledCount,
		Distance:  -1,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
	}
	if snap.State == SearchCompleted {
		report.Distance = snap.DistanceAt(snap.Goal)
		report.PathCells = len(snap.Path)
		report.Waypoints = SimplifyPath(snap.Path, epsilon)
	}
	if timed > 0 {
		report.MinStepNS = minStep.Nanoseconds()
		report.AvgStepNS = (total / time.Duration(timed)).Nanoseconds()
		report.MaxStepNS = maxStep.Nanoseconds()
	}

	log.Printf("   ✅ %s after %d steps, %d settled\n", report.State, report.Steps, report.Settled)
	if report.Distance >= 0 {
		log.Printf("   Distance: %d, path %d cells, %d waypoints\n",
			report.Distance, report.PathCells, len(report.Waypoints))
	}
	if timed > 0 {
		log.Printf("   ⏱️  Total %.2f ms (step min/avg/max %v/%v/%v)\n",
			report.ElapsedMS, minStep, total/time.Duration(timed), maxStep)
	}

	return report
}

// CompareReport pairs a Dijkstra run and an A* run over one scenario
type CompareReport struct {
	Scenario string       `json:"scenario"`
	Dijkstra *SolveReport `json:"dijkstra"`
	AStar    *SolveReport `json:"astar"`
}

// RunCompare solves the same scenario in both modes and logs how many
// steps the heuristic saved
func RunCompare(sc *Scenario, epsilon float64) (*CompareReport, error) {
	dij, err := sc.NewSearch("dijkstra")
	if err != nil {
		return nil, err
	}
	ast, err := sc.NewSearch("astar")
	if err != nil {
		return nil, err
	}

	log.Println("========================================")
	log.Printf("⚖️  Comparing modes on %s\n", sc.Name)
	dr := RunSolve(dij, sc, epsilon)
	ar := RunSolve(ast, sc, epsilon)

	if dr.State == SearchCompleted.String() && ar.State == SearchCompleted.String() {
		saved := dr.Steps - ar.Steps
		pct := 0.0
		if dr.Steps > 0 {
			pct = float64(saved) / float64(dr.Steps) * 100
		}
		log.Printf("   A* needed %d fewer steps than Dijkstra (%.1f%% saved)\n", saved, pct)
	}
	log.Println("========================================")

	return &CompareReport{Scenario: sc.Name, Dijkstra: dr, AStar: ar}, nil
}

// SaveReport writes a report as indented JSON
func SaveReport(v interface{}, filename string) error {
	log.Printf("💾 Saving report to %s...\n", filename)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Report saved (%d bytes)\n", len(data))
	return nil
}
