package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// scenarioReloadMsg carries a freshly loaded scenario into the model
type scenarioReloadMsg struct {
	scenario *Scenario
}

type tuiKeyMap struct {
	Play  key.Binding
	Step  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k tuiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Step, k.Reset, k.Quit}
}

func (k tuiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Play, k.Step, k.Reset, k.Quit}}
}

func defaultTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Step:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "step")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tuiModel renders the grid in the terminal, two runes per cell
type tuiModel struct {
	scenario *Scenario
	search   *Search
	interval time.Duration
	playing  bool
	keys     tuiKeyMap
	help     help.Model
}

func newTUIModel(sc *Scenario, cfg TUIConfig) (tuiModel, error) {
	search, err := sc.NewSearch("")
	if err != nil {
		return tuiModel{}, err
	}

	return tuiModel{
		scenario: sc,
		search:   search,
		interval: time.Duration(cfg.StepIntervalMS) * time.Millisecond,
		keys:     defaultTUIKeyMap(),
		help:     help.New(),
	}, nil
}

func (m tuiModel) Init() tea.Cmd {
	return m.tick()
}

func (m tuiModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			m.playing = !m.playing
		case key.Matches(msg, m.keys.Step):
			m.playing = false
			m.search.Step()
		case key.Matches(msg, m.keys.Reset):
			if search, err := m.scenario.NewSearch(""); err == nil {
				m.search = search
			}
			m.playing = false
		}

	case tickMsg:
		if m.playing && !m.search.State().Terminal() {
			m.search.Step()
		}
		return m, m.tick()

	case scenarioReloadMsg:
		if search, err := msg.scenario.NewSearch(""); err == nil {
			m.scenario = msg.scenario
			m.search = search
			m.playing = false
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// cellStyle renders a background swatch from the shared palette
func cellStyle(fill color.RGBA) lipgloss.Style {
	hex := fmt.Sprintf("#%02X%02X%02X", fill.R, fill.G, fill.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

func (m tuiModel) View() string {
	snap := m.search.Snapshot()

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true)
	b.WriteString(title.Render(fmt.Sprintf("%s  [%s | %s]", m.scenario.Name, snap.Mode, snap.StateName)))
	b.WriteString("\n\n")

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := Coord{X: x, Y: y}
			fill := overlayFill(snap, c, cellFill(snap.At(c)))
			b.WriteString(cellStyle(fill).Render("  "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("step %d | settled %d", snap.Steps, snap.SettledCount)
	if snap.State == SearchCompleted {
		status = fmt.Sprintf("%s | distance %d | path %d cells",
			status, snap.DistanceAt(snap.Goal), len(snap.Path))
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunTUI starts the terminal frontend and blocks until quit. A non-empty
// watchPath live-reloads the scenario on file changes.
func RunTUI(sc *Scenario, cfg TUIConfig, watchPath string) error {
	model, err := newTUIModel(sc, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if watchPath != "" {
		watcher, err := NewScenarioWatcher(watchPath, func(next *Scenario) {
			p.Send(scenarioReloadMsg{scenario: next})
		})
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	_, err = p.Run()
	return err
}
