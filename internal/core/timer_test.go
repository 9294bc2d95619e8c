package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepCadence(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first tick should fire immediately")
	}
	clock.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("fired twice without time passing")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("stalled host caused %d catch-up steps", fired)
	}
}

func TestNextFrameWraps(t *testing.T) {
	if got := NextFrame(0); got != 1 {
		t.Fatalf("NextFrame(0) = %d", got)
	}
	if got := NextFrame(FrameModulus - 1); got != FrameModulus {
		t.Fatalf("NextFrame(%d) = %d", FrameModulus-1, got)
	}
	if got := NextFrame(FrameModulus); got != 0 {
		t.Fatalf("NextFrame(%d) = %d, expected wrap to 0", FrameModulus, got)
	}
}

func TestTPSFor(t *testing.T) {
	if got := TPSFor(100 * time.Millisecond); got != 10 {
		t.Fatalf("TPSFor(100ms) = %d", got)
	}
	if got := TPSFor(10 * time.Millisecond); got != 100 {
		t.Fatalf("TPSFor(10ms) = %d", got)
	}
	if got := TPSFor(3 * time.Second); got != 1 {
		t.Fatalf("TPSFor(3s) = %d", got)
	}
}
