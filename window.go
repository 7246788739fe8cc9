package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window is the interactive grid view. Space toggles autoplay, S runs a
// single step, R resets, E exports the current state as a PNG.
type Window struct {
	cfg      WindowConfig
	scenario *Scenario
	search   *Search

	playing bool
	accum   float64

	reloads chan *Scenario
	cell    *ebiten.Image
}

// NewWindow builds the interactive view for a scenario
func NewWindow(sc *Scenario, cfg WindowConfig) (*Window, error) {
	search, err := sc.NewSearch("")
	if err != nil {
		return nil, err
	}

	stride := cfg.CellSize + cfg.Gap
	log.Printf("🪟 %dx%d grid, %dpx cells, %dpx gaps (%dx%d window)\n",
		sc.Width, sc.Height, cfg.CellSize, cfg.Gap,
		sc.Width*stride-cfg.Gap, sc.Height*stride-cfg.Gap)

	return &Window{
		cfg:      cfg,
		scenario: sc,
		search:   search,
		reloads:  make(chan *Scenario, 1),
	}, nil
}

// QueueScenario hands a freshly loaded scenario to the game loop. Safe
// to call from the watcher goroutine.
func (w *Window) QueueScenario(sc *Scenario) {
	select {
	case <-w.reloads:
	default:
	}
	w.reloads <- sc
}

// Update handles input, scenario reloads and autoplay pacing
func (w *Window) Update() error {
	select {
	case sc := <-w.reloads:
		search, err := sc.NewSearch("")
		if err != nil {
			log.Printf("⚠️  Ignoring reloaded scenario: %v\n", err)
		} else {
			w.scenario = sc
			w.search = search
			w.playing = false
			w.accum = 0
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.playing = !w.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		w.playing = false
		w.search.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		search, err := w.scenario.NewSearch("")
		if err != nil {
			return fmt.Errorf("failed to rebuild search: %w", err)
		}
		w.search = search
		w.playing = false
		w.accum = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		name := fmt.Sprintf("%s-step-%04d.png", w.scenario.Name, w.search.Steps())
		if err := ExportPNG(w.search.Snapshot(), w.cfg.CellSize, w.cfg.Gap, name); err != nil {
			log.Printf("⚠️  Export failed: %v\n", err)
		}
	}

	if w.playing && !w.search.State().Terminal() {
		w.accum += float64(w.cfg.StepsPerSecond) / float64(w.cfg.TPS)
		for w.accum >= 1 {
			w.search.Step()
			w.accum--
		}
	}

	return nil
}

// Draw renders the grid with the shared palette and a status line
func (w *Window) Draw(screen *ebiten.Image) {
	if w.cell == nil {
		// One 1x1 white pixel, scaled up and tinted per cell
		w.cell = ebiten.NewImage(1, 1)
		w.cell.Fill(color.White)
	}

	screen.Fill(colorBackground)

	snap := w.search.Snapshot()
	stride := float64(w.cfg.CellSize + w.cfg.Gap)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := Coord{X: x, Y: y}
			fill := overlayFill(snap, c, cellFill(snap.At(c)))

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(w.cfg.CellSize), float64(w.cfg.CellSize))
			op.GeoM.Translate(float64(x)*stride, float64(y)*stride)
			op.ColorScale.ScaleWithColor(fill)
			screen.DrawImage(w.cell, op)
		}
	}

	status := fmt.Sprintf("%s | %s | %s | step %d | settled %d",
		w.scenario.Name, snap.Mode, snap.StateName, snap.Steps, snap.SettledCount)
	if snap.State == SearchCompleted {
		status = fmt.Sprintf("%s | distance %d", status, snap.DistanceAt(snap.Goal))
	}
	ebitenutil.DebugPrintAt(screen, status, 2, 2)
}

// Layout sizes the view to the grid, tracking scenario reloads
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	stride := w.cfg.CellSize + w.cfg.Gap
	return w.scenario.Width*stride - w.cfg.Gap, w.scenario.Height*stride - w.cfg.Gap
}

// Run opens the window and blocks until it is closed
func (w *Window) Run() error {
	stride := w.cfg.CellSize + w.cfg.Gap
	ebiten.SetWindowSize(w.scenario.Width*stride-w.cfg.Gap, w.scenario.Height*stride-w.cfg.Gap)
	ebiten.SetWindowTitle("dijkstra")
	ebiten.SetTPS(w.cfg.TPS)
	return ebiten.RunGame(w)
}
