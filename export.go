package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
)

// Palette shared by PNG exports and the graphical window. Background and
// unknown shades match the classic 819x819 demo window.
var (
	colorBackground = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	colorUnknown    = color.RGBA{R: 63, G: 63, B: 63, A: 255}
	colorFrontier   = color.RGBA{R: 218, G: 165, B: 32, A: 255}
	colorSettled    = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorObstacle   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorPath       = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorStart      = color.RGBA{R: 60, G: 220, B: 60, A: 255}
	colorGoal       = color.RGBA{R: 220, G: 220, B: 60, A: 255}
	colorCurrent    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// cellFill maps a cell state to its fill color
func cellFill(state CellState) color.RGBA {
	switch state {
	case CellFrontier:
		return colorFrontier
	case CellSettled:
		return colorSettled
	case CellObstacle:
		return colorObstacle
	case CellOnPath:
		return colorPath
	default:
		return colorUnknown
	}
}

// overlayFill layers the start, goal and cursor markers over the state
// fill. The cursor only shows while the search is running.
func overlayFill(snap Snapshot, c Coord, base color.RGBA) color.RGBA {
	switch {
	case c == snap.Start:
		return colorStart
	case c == snap.Goal:
		return colorGoal
	case c == snap.Current && snap.State == SearchRunning:
		return colorCurrent
	}
	return base
}

// ExportPNG renders a snapshot to a PNG file using the window palette
// and geometry
func ExportPNG(snap Snapshot, cellSize, gap int, filename string) error {
	if cellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", gap)
	}

	stride := cellSize + gap
	imgW := snap.Width*stride - gap
	imgH := snap.Height*stride - gap

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := Coord{X: x, Y: y}
			fill := overlayFill(snap, c, cellFill(snap.At(c)))
			rect := image.Rect(x*stride, y*stride, x*stride+cellSize, y*stride+cellSize)
			draw.Draw(img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	log.Printf("💾 Exported %dx%d snapshot to %s\n", snap.Width, snap.Height, filename)
	return nil
}
