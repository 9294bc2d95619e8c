package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"canvas-toys/internal/core"
	"canvas-toys/internal/sims/conway"
	"canvas-toys/pkg/life"
)

type countingSim struct {
	steps  int
	resets []int64
	err    error
}

func (s *countingSim) Name() string { return "counting" }
func (s *countingSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (s *countingSim) Reset(seed int64) { s.resets = append(s.resets, seed); s.steps = 0 }
func (s *countingSim) Step() { s.steps++ }
func (s *countingSim) Cells() []uint8 { return []uint8{0} }
func (s *countingSim) Err() error { return s.err }
func (s *countingSim) TickInterval() time.Duration { return 100 * time.Millisecond }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(sim core.Sim) (*Controller, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := core.NewFixedStep(IntervalFor(sim)).WithClock(clock.now)
	return NewController(sim, 0, fs), clock
}

func TestTickHonoursInterval(t *testing.T) {
	sim := &countingSim{}
	ctl, clock := newTestController(sim)

	for i := 0; i < 5; i++ {
		if err := ctl.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		clock.advance(50 * time.Millisecond)
	}
	// Fires at 0ms, 100ms and 200ms.
	if sim.steps != 3 {
		t.Fatalf("expected 3 steps, got %d", sim.steps)
	}
}

func TestPauseAndResume(t *testing.T) {
	sim := &countingSim{}
	ctl, clock := newTestController(sim)

	ctl.Pause()
	for i := 0; i < 4; i++ {
		ctl.Tick()
		clock.advance(100 * time.Millisecond)
	}
	if sim.steps != 0 {
		t.Fatalf("paused controller stepped %d times", sim.steps)
	}

	ctl.StepOnce()
	ctl.Tick()
	if sim.steps != 1 {
		t.Fatalf("StepOnce should step exactly once, got %d", sim.steps)
	}
	ctl.Tick()
	if sim.steps != 1 {
		t.Fatal("StepOnce request was not consumed")
	}

	ctl.Toggle()
	if !ctl.Running() {
		t.Fatal("Toggle from paused should resume")
	}
	clock.advance(100 * time.Millisecond)
	ctl.Tick()
	if sim.steps != 2 {
		t.Fatalf("resumed controller did not step, steps=%d", sim.steps)
	}
	ctl.Toggle()
	ctl.Resume()
	if !ctl.Running() {
		t.Fatal("Resume did not set running")
	}
}

func TestResetForwardsSeed(t *testing.T) {
	sim := &countingSim{}
	ctl, _ := newTestController(sim)
	ctl.StepOnce()
	ctl.Reset(42)
	if ctl.Seed() != 42 || len(sim.resets) != 1 || sim.resets[0] != 42 {
		t.Fatalf("reset not forwarded: seed=%d resets=%v", ctl.Seed(), sim.resets)
	}
	if ctl.Steps() != 0 {
		t.Fatal("Reset did not clear the step counter")
	}
	ctl.Pause()
	ctl.Tick()
	if sim.steps != 0 {
		t.Fatal("pending StepOnce survived Reset")
	}
}

func TestTickSurfacesSimError(t *testing.T) {
	boom := errors.New("boom")
	sim := &countingSim{err: boom}
	ctl, _ := newTestController(sim)
	if err := ctl.Tick(); !errors.Is(err, boom) {
		t.Fatalf("expected sim error, got %v", err)
	}
}

func TestControllerDrivesLife(t *testing.T) {
	cfg := conway.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Pattern = []life.Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	board, err := conway.New(cfg)
	if err != nil {
		t.Fatalf("conway.New: %v", err)
	}
	ctl, clock := newTestController(board)
	if got := ctl.clock.Interval(); got != conway.TickInterval {
		t.Fatalf("interval = %v, expected %v", got, conway.TickInterval)
	}
	for i := 0; i < 2; i++ {
		if err := ctl.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		clock.advance(conway.TickInterval)
	}
	if board.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", board.Generation())
	}
	horizontal := life.NewSet(cfg.Pattern...)
	if !board.Alive().Equal(horizontal) {
		t.Fatalf("blinker did not return after two ticks: %v", board.Alive().Sorted())
	}
}

func TestConfigFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "sphere", "-seed", "9", "-set", "w=64", "-set", "h = 32"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := cfg.Set.Map()
	if cfg.Sim != "sphere" || cfg.Seed != 9 || m["w"] != "64" || m["h"] != "32" {
		t.Fatalf("unexpected config %+v map=%v", cfg, m)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected error for malformed -set")
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(0, core.Size{W: 125, H: 62}); got != 8 {
		t.Fatalf("FitScale life = %d", got)
	}
	if got := FitScale(0, core.Size{W: 200, H: 200}); got != 2 {
		t.Fatalf("FitScale sphere = %d", got)
	}
	if got := FitScale(3, core.Size{W: 200, H: 200}); got != 3 {
		t.Fatalf("explicit scale ignored, got %d", got)
	}
}
