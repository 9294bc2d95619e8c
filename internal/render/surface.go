package render

import "canvas-toys/pkg/life"

const (
	// Background is the value painted for dead cells.
	Background uint8 = 0
	// Foreground is the value painted for live cells.
	Foreground uint8 = 255
)

// Surface is a raster sims paint into one cell at a time.
type Surface interface {
	Clear()
	FillPixel(x, y int, v uint8)
}

// PaintAll clears s and paints every live cell.
func PaintAll(s Surface, alive life.Set) {
	s.Clear()
	for c := range alive {
		s.FillPixel(c.X, c.Y, Foreground)
	}
}

// PaintDiff repaints only what a step changed: died cells get the background
// and every live cell of the new generation the foreground.
func PaintDiff(s Surface, res life.Result) {
	for c := range res.Died {
		s.FillPixel(c.X, c.Y, Background)
	}
	for c := range res.Next {
		s.FillPixel(c.X, c.Y, Foreground)
	}
}
