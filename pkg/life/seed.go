package life

import "fmt"

const (
	// CanvasWidth and CanvasHeight are the demo canvas size in pixels.
	CanvasWidth  = 1000
	CanvasHeight = 500
	// CellSize is the edge length of one cell in pixels.
	CellSize = 8
)

// DefaultBounds is the 125x62 grid of the demo canvas.
func DefaultBounds() Bounds { return BoundsFor(CanvasWidth, CanvasHeight, CellSize) }

// defaultPattern lists the demo's starting cells. (19,19) appears twice.
var defaultPattern = []Cell{
	{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
	{18, 11}, {18, 12}, {18, 13}, {17, 13}, {17, 14},
	{15, 15}, {15, 16}, {15, 17},
	{10, 10}, {11, 10}, {12, 10}, {12, 11}, {11, 12},
	{19, 17}, {19, 18}, {19, 19}, {19, 19},
	{12, 19}, {12, 20}, {12, 21}, {11, 21}, {12, 22},
	{14, 19}, {14, 20}, {14, 21}, {14, 22},
	{15, 23}, {15, 24}, {15, 25}, {15, 26}, {15, 27},
	{16, 22}, {16, 23}, {16, 25}, {16, 28},
	{17, 22}, {17, 23}, {17, 24}, {17, 26}, {17, 29},
	{18, 29},
	{12, 31}, {13, 31}, {14, 31}, {15, 31},
}

// DefaultPattern returns a copy of the demo's starting cells, duplicates
// included.
func DefaultPattern() []Cell { return append([]Cell(nil), defaultPattern...) }

// LoadSeed validates cells against b and returns them as a set. Any
// coordinate outside b is rejected rather than clipped.
func LoadSeed(b Bounds, cells []Cell) (Set, error) {
	s := make(Set, len(cells))
	for _, c := range cells {
		if !b.Contains(c) {
			return nil, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, b.W, b.H)
		}
		s.Add(c)
	}
	return s, nil
}
