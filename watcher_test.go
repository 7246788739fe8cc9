package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitReload(t *testing.T, ch <-chan *Scenario) *Scenario {
	t.Helper()
	select {
	case sc := <-ch:
		return sc
	case <-time.After(5 * time.Second):
		t.Fatal("no reload arrived")
		return nil
	}
}

func assertNoReload(t *testing.T, ch <-chan *Scenario) {
	t.Helper()
	select {
	case sc := <-ch:
		t.Fatalf("unexpected reload of %s", sc.Name)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestScenarioWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, SaveScenario(DefaultScenario(), path))

	reloads := make(chan *Scenario, 4)
	w, err := NewScenarioWatcher(path, func(sc *Scenario) { reloads <- sc })
	require.NoError(t, err)
	defer w.Close()

	changed := DefaultScenario()
	changed.Name = "edited"
	require.NoError(t, SaveScenario(changed, path))

	got := awaitReload(t, reloads)
	assert.Equal(t, "edited", got.Name)
}

func TestScenarioWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, SaveScenario(DefaultScenario(), path))

	reloads := make(chan *Scenario, 4)
	w, err := NewScenarioWatcher(path, func(sc *Scenario) { reloads <- sc })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	assertNoReload(t, reloads)
}

func TestScenarioWatcher_KeepsPreviousOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, SaveScenario(DefaultScenario(), path))

	reloads := make(chan *Scenario, 4)
	w, err := NewScenarioWatcher(path, func(sc *Scenario) { reloads <- sc })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	assertNoReload(t, reloads)

	fixed := DefaultScenario()
	fixed.Name = "fixed"
	require.NoError(t, SaveScenario(fixed, path))

	got := awaitReload(t, reloads)
	assert.Equal(t, "fixed", got.Name)
}
