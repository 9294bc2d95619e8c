// Package life implements Conway's Game of Life on an open, bounded grid
// using a sparse set of live cells.
package life

import "strings"

// Result is the outcome of advancing one generation.
type Result struct {
	Next Set // live cells of the new generation
	Died Set // previously live cells that did not survive
	Born Set // cells that came alive this generation
}

// Step computes the generation following current using the B3/S23 rule.
// Cells outside b are ignored and current is never modified.
func Step(b Bounds, current Set) Result {
	counts := make(map[Cell]int, len(current)*8)
	for c := range current {
		if !b.Contains(c) {
			continue
		}
		for _, n := range Neighbors(b, c) {
			counts[n]++
		}
	}

	res := Result{Next: Set{}, Died: Set{}, Born: Set{}}
	for c := range current {
		if !b.Contains(c) {
			continue
		}
		switch counts[c] {
		case 2, 3:
			res.Next.Add(c)
		default:
			res.Died.Add(c)
		}
	}
	for c, n := range counts {
		if n != 3 || current.Has(c) {
			continue
		}
		res.Next.Add(c)
		res.Born.Add(c)
	}
	return res
}

// Reset returns a fresh copy of seed for use as the current generation.
func Reset(seed Set) Set { return seed.Clone() }

// LiveNeighbors counts the live cells around c.
func LiveNeighbors(b Bounds, alive Set, c Cell) int {
	n := 0
	for _, nb := range Neighbors(b, c) {
		if alive.Has(nb) {
			n++
		}
	}
	return n
}

// Render draws alive as rows of '#' and '.' characters.
func Render(b Bounds, alive Set) string {
	var sb strings.Builder
	sb.Grow((b.W + 1) * b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if alive.Has(Cell{X: x, Y: y}) {
				sb.WriteByte('#')
				continue
			}
			sb.WriteByte('.')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
