package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedCell reports a coordinate that could not be parsed.
	ErrMalformedCell = errors.New("life: malformed cell")
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("life: cell out of bounds")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Bounds describes an open (non-wrapping) grid of W columns and H rows.
type Bounds struct {
	W, H int
}

// BoundsFor derives grid dimensions from a canvas size and the pixel size of
// a single cell. Partial cells at the right or bottom edge are dropped.
func BoundsFor(canvasW, canvasH, cellSize int) Bounds {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Bounds{W: canvasW / cellSize, H: canvasH / cellSize}
}

// Contains reports whether c lies within [0,W) x [0,H).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Neighbors returns the Moore neighbourhood of c clipped to b. Cells on the
// edge have fewer than eight neighbours.
func Neighbors(b Bounds, c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{X: c.X + dx, Y: c.Y + dy}
			if !b.Contains(n) {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// ParseCell parses a single "x,y" coordinate.
func ParseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	xs, ys = strings.TrimSpace(xs), strings.TrimSpace(ys)
	if !ok || xs == "" || ys == "" {
		return Cell{}, fmt.Errorf("%w: %q needs two axes", ErrMalformedCell, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: bad x: %v", ErrMalformedCell, s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: bad y: %v", ErrMalformedCell, s, err)
	}
	return Cell{X: x, Y: y}, nil
}

// ParsePattern parses a semicolon separated list of "x,y" coordinates. Empty
// entries are skipped so a trailing separator is accepted.
func ParsePattern(s string) ([]Cell, error) {
	var cells []Cell
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCell(part)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}
