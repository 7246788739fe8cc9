package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadReport(t *testing.T, path string) SolveReport {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report SolveReport
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

func TestRunSolve_CompletedRun(t *testing.T) {
	sc := &Scenario{
		Name: "five", Width: 5, Height: 5,
		Start: Coord{X: 0, Y: 0}, Goal: Coord{X: 4, Y: 4}, Mode: "dijkstra",
	}
	s, err := sc.NewSearch("")
	require.NoError(t, err)

	report := RunSolve(s, sc, 0.5)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id is a uuid")
	assert.Equal(t, "five", report.Scenario)
	assert.Equal(t, "dijkstra", report.Mode)
	assert.Equal(t, "completed", report.State)
	assert.Equal(t, 8, report.Distance)
	assert.Equal(t, 9, report.PathCells)
	assert.Equal(t, report.Steps+1, report.Settled, "the completing step settles the goal too")
	assert.Equal(t, []Coord{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}}, report.Waypoints)
	assert.GreaterOrEqual(t, report.MaxStepNS, report.MinStepNS)
}

func TestRunSolve_ExhaustedRun(t *testing.T) {
	sc := &Scenario{
		Name: "sealed", Width: 3, Height: 3,
		Start: Coord{X: 0, Y: 0}, Goal: Coord{X: 2, Y: 2}, Mode: "dijkstra",
		Walls: []Wall{{From: Coord{X: 0, Y: 1}, To: Coord{X: 3, Y: 1}}},
	}
	s, err := sc.NewSearch("")
	require.NoError(t, err)

	report := RunSolve(s, sc, 0.5)

	assert.Equal(t, "exhausted", report.State)
	assert.Equal(t, -1, report.Distance)
	assert.Zero(t, report.PathCells)
	assert.Empty(t, report.Waypoints)
}

func TestRunSolve_StartEqualsGoal(t *testing.T) {
	sc := &Scenario{
		Name: "trivial", Width: 4, Height: 4,
		Start: Coord{X: 2, Y: 2}, Goal: Coord{X: 2, Y: 2}, Mode: "astar",
	}
	s, err := sc.NewSearch("")
	require.NoError(t, err)

	report := RunSolve(s, sc, 0.5)

	assert.Equal(t, "completed", report.State)
	assert.Zero(t, report.Steps)
	assert.Zero(t, report.Distance)
	assert.Equal(t, 1, report.PathCells)
	assert.Equal(t, []Coord{{X: 2, Y: 2}}, report.Waypoints)
}

func TestRunCompare_HeuristicSavesSteps(t *testing.T) {
	sc := &Scenario{
		Name: "straight-shot", Width: 9, Height: 9,
		Start: Coord{X: 0, Y: 4}, Goal: Coord{X: 8, Y: 4}, Mode: "dijkstra",
	}

	report, err := RunCompare(sc, 0.5)
	require.NoError(t, err)

	assert.Equal(t, "dijkstra", report.Dijkstra.Mode)
	assert.Equal(t, "astar", report.AStar.Mode)
	require.Equal(t, "completed", report.Dijkstra.State)
	require.Equal(t, "completed", report.AStar.State)

	assert.Equal(t, report.Dijkstra.Distance, report.AStar.Distance, "both modes find the same distance")
	assert.Less(t, report.AStar.Steps, report.Dijkstra.Steps, "the heuristic skips off-axis settling here")
	assert.NotEqual(t, report.Dijkstra.RunID, report.AStar.RunID)
}

func TestSaveReport_RoundTrips(t *testing.T) {
	sc := DefaultScenario()
	s, err := sc.NewSearch("")
	require.NoError(t, err)
	report := RunSolve(s, sc, 0.5)

	file := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveReport(report, file))

	loaded := loadReport(t, file)
	assert.Equal(t, report.RunID, loaded.RunID)
	assert.Equal(t, report.Distance, loaded.Distance)
	assert.Equal(t, report.Waypoints, loaded.Waypoints)
}
