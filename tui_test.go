package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T) tuiModel {
	t.Helper()
	m, err := newTUIModel(DefaultScenario(), TUIConfig{StepIntervalMS: 50})
	require.NoError(t, err)
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTUI_StepKeyAdvancesOnce(t *testing.T) {
	m := newTestTUI(t)

	updated, _ := m.Update(runeKey('s'))
	m = updated.(tuiModel)

	assert.Equal(t, 1, m.search.Steps())
	assert.False(t, m.playing)
}

func TestTUI_SpaceTogglesAutoplay(t *testing.T) {
	m := newTestTUI(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(tuiModel)
	require.True(t, m.playing)

	updated, cmd := m.Update(tickMsg{})
	m = updated.(tuiModel)
	assert.Equal(t, 1, m.search.Steps(), "ticks advance while playing")
	assert.NotNil(t, cmd, "ticks reschedule themselves")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(tuiModel)
	require.False(t, m.playing)

	updated, _ = m.Update(tickMsg{})
	m = updated.(tuiModel)
	assert.Equal(t, 1, m.search.Steps(), "ticks are no-ops while paused")
}

func TestTUI_ResetKeyRestoresFreshSearch(t *testing.T) {
	m := newTestTUI(t)
	for i := 0; i < 5; i++ {
		m.search.Step()
	}

	updated, _ := m.Update(runeKey('r'))
	m = updated.(tuiModel)

	assert.Zero(t, m.search.Steps())
	assert.Equal(t, SearchNotStarted, m.search.State())
}

func TestTUI_QuitKeyQuits(t *testing.T) {
	m := newTestTUI(t)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_ScenarioReloadSwapsSearch(t *testing.T) {
	m := newTestTUI(t)
	m.search.Step()

	small := &Scenario{Name: "small", Width: 4, Height: 4, Goal: Coord{X: 3, Y: 3}, Mode: "astar"}
	updated, _ := m.Update(scenarioReloadMsg{scenario: small})
	m = updated.(tuiModel)

	assert.Equal(t, "small", m.scenario.Name)
	assert.Zero(t, m.search.Steps())
	assert.Equal(t, ModeAStar, m.search.Mode())
}

func TestTUI_ViewShowsStatus(t *testing.T) {
	m := newTestTUI(t)

	view := m.View()
	assert.Contains(t, view, "classic-20x20")
	assert.Contains(t, view, "dijkstra")
	assert.Contains(t, view, "not-started")
	assert.Contains(t, view, "step 0")

	updated, _ := m.Update(runeKey('s'))
	m = updated.(tuiModel)
	assert.Contains(t, m.View(), "step 1")
}
