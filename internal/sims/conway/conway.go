// Package conway runs the sparse Game of Life engine as a registered sim.
package conway

import (
	"time"

	"canvas-toys/internal/core"
	"canvas-toys/internal/render"
	"canvas-toys/pkg/life"
)

// TickInterval is the time between generations.
const TickInterval = 100 * time.Millisecond

// Life owns the current generation and the raster it is painted into.
type Life struct {
	cfg    Config
	bounds life.Bounds
	seed   life.Set

	alive      life.Set
	last       life.Result
	generation int
	frame      int

	surface *core.ByteGrid
}

// New validates cfg and returns a board holding the seed pattern.
func New(cfg Config) (*Life, error) {
	b := life.Bounds{W: cfg.Width, H: cfg.Height}
	seed, err := life.LoadSeed(b, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:     cfg,
		bounds:  b,
		seed:    seed,
		surface: core.NewByteGrid(b.W, b.H),
	}
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.bounds.W, H: l.bounds.H} }

// Cells exposes the painted raster: 255 for live cells, 0 otherwise.
func (l *Life) Cells() []uint8 { return l.surface.Cells() }

// TickInterval reports the generation cadence.
func (l *Life) TickInterval() time.Duration { return TickInterval }

// Alive returns the current generation. Callers must not modify it.
func (l *Life) Alive() life.Set { return l.alive }

// Changes returns the outcome of the most recent step.
func (l *Life) Changes() life.Result { return l.last }

// Generation counts steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Frame returns the wrapped frame counter.
func (l *Life) Frame() int { return l.frame }

// Reset replaces the board wholesale. Seed 0 restores the configured
// pattern; any other seed fills the board at random.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		l.alive = life.Reset(l.seed)
	} else {
		l.alive = l.soup(seed)
	}
	l.last = life.Result{Next: l.alive, Died: life.Set{}, Born: life.Set{}}
	l.generation = 0
	l.frame = 0
	render.PaintAll(l.surface, l.alive)
}

// Step advances the board by one generation and repaints the cells that
// changed.
func (l *Life) Step() {
	res := life.Step(l.bounds, l.alive)
	render.PaintDiff(l.surface, res)
	l.alive = res.Next
	l.last = res
	l.generation++
	l.frame = core.NextFrame(l.frame)
}

// Parameters reports board statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.bounds.W),
				core.IntParam("h", "Height", l.bounds.H),
				core.IntParam("seed_cells", "Seed cells", l.seed.Len()),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("frame", "Frame", l.frame),
				core.IntParam("population", "Population", l.alive.Len()),
				core.IntParam("born", "Born", l.last.Born.Len()),
				core.IntParam("died", "Died", l.last.Died.Len()),
			},
		},
	}}
}

func (l *Life) soup(seed int64) life.Set {
	rng := core.NewRNG(seed)
	s := life.Set{}
	for y := 0; y < l.bounds.H; y++ {
		for x := 0; x < l.bounds.W; x++ {
			if rng.Chance(l.cfg.Density) {
				s.Add(life.Cell{X: x, Y: y})
			}
		}
	}
	return s
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
