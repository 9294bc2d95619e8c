package app

import (
	"fmt"
	"time"

	"canvas-toys/internal/core"
)

// Controller owns the running flag and the step cadence for one sim. The sim
// is only ever stepped from Tick, so a step always finishes before the next
// one can start.
type Controller struct {
	sim   core.Sim
	clock *core.FixedStep

	running  bool
	tickOnce bool
	seed     int64
	steps    int
}

// NewController wraps sim. When clock is nil one is built from the sim's
// preferred tick interval.
func NewController(sim core.Sim, seed int64, clock *core.FixedStep) *Controller {
	if clock == nil {
		clock = core.NewFixedStep(IntervalFor(sim))
	}
	return &Controller{sim: sim, clock: clock, running: true, seed: seed}
}

// IntervalFor returns the sim's tick interval, or 1/60s when it has none.
func IntervalFor(sim core.Sim) time.Duration {
	if t, ok := sim.(core.Ticker); ok {
		return t.TickInterval()
	}
	return time.Second / 60
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

func (c *Controller) Pause() { c.running = false }
func (c *Controller) Resume() { c.running = true }
func (c *Controller) Toggle() { c.running = !c.running }

// Running reports whether ticks advance the sim.
func (c *Controller) Running() bool { return c.running }

// StepOnce requests a single step on the next tick even while paused.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Steps counts steps performed since the last reset.
func (c *Controller) Steps() int { return c.steps }

// Seed returns the seed of the last reset.
func (c *Controller) Seed() int64 { return c.seed }

// Reset reinitializes the simulation state with the provided seed.
func (c *Controller) Reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.tickOnce = false
	c.steps = 0
}

// Tick performs at most one step. The running flag is read once, before the
// step, and errors reported by the sim are returned.
func (c *Controller) Tick() error {
	due := c.clock.ShouldStep()
	if c.tickOnce || (c.running && due) {
		c.sim.Step()
		c.tickOnce = false
		c.steps++
	}
	if rep, ok := c.sim.(core.ErrorReporter); ok {
		if err := rep.Err(); err != nil {
			return fmt.Errorf("%s: %w", c.sim.Name(), err)
		}
	}
	return nil
}
