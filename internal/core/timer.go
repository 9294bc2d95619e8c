package core

import "time"

// FrameModulus is where frame counters wrap back to zero.
const FrameModulus = 10000

// NextFrame advances a frame counter, wrapping at FrameModulus.
func NextFrame(i int) int {
	if i >= FrameModulus {
		return 0
	}
	return i + 1
}

// FixedStep gates simulation updates to a steady interval regardless of how
// often the host loop runs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing every interval. The first call
// to ShouldStep always fires.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// WithClock replaces the time source, for tests and replays.
func (f *FixedStep) WithClock(now func() time.Time) *FixedStep {
	f.now = now
	f.last = time.Time{}
	return f
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval returns the configured step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. Time
// owed beyond a single step is dropped so a stalled host never triggers a
// burst of catch-up steps.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

// TPSFor returns the host ticks per second needed to honour interval.
func TPSFor(interval time.Duration) int {
	if interval <= 0 {
		return 60
	}
	tps := int(time.Second / interval)
	if tps < 1 {
		tps = 1
	}
	return tps
}
