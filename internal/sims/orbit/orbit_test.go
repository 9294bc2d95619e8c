package orbit

import (
	"errors"
	"slices"
	"testing"

	"canvas-toys/internal/core"
	"canvas-toys/pkg/sphere"
)

func smallScene() *Scene {
	r := sphere.DefaultRenderer()
	r.Width, r.Height, r.Workers = 40, 30, 2
	return New(r)
}

func TestStepAdvancesFrame(t *testing.T) {
	s := smallScene()
	first := append([]uint8(nil), s.Cells()...)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error: %v", s.Err())
	}
	if s.Frame() != 30 {
		t.Fatalf("frame = %d, expected 30", s.Frame())
	}
	if slices.Equal(first, s.Cells()) {
		t.Fatal("frame did not change as the light moved")
	}

	s.Reset(0)
	if !slices.Equal(first, s.Cells()) {
		t.Fatal("Reset(0) did not restore the first frame")
	}
}

func TestResetFoldsSeed(t *testing.T) {
	s := smallScene()
	s.Reset(core.FrameModulus + 3)
	if s.Frame() != 2 {
		t.Fatalf("frame = %d, expected 2", s.Frame())
	}
	s.Reset(-1)
	if s.Frame() != core.FrameModulus {
		t.Fatalf("frame = %d, expected %d", s.Frame(), core.FrameModulus)
	}
	s.Step()
	if s.Frame() != 0 {
		t.Fatalf("frame did not wrap, got %d", s.Frame())
	}
}

func TestDegenerateRayLatchesError(t *testing.T) {
	s := New(sphere.Renderer{Width: 1, Height: 1, Eye: sphere.Vec3{Z: -3}, Radius: 1})
	if !errors.Is(s.Err(), sphere.ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", s.Err())
	}
	frame := s.Frame()
	s.Step()
	if s.Frame() != frame {
		t.Fatal("failed scene kept advancing")
	}
}

func TestFromMap(t *testing.T) {
	r := FromMap(map[string]string{"w": "64", "h": "32", "workers": "3", "focal": "2"})
	if r.Width != 64 || r.Height != 32 || r.Workers != 3 || r.Focal != 2 {
		t.Fatalf("unexpected renderer %+v", r)
	}
	sim, err := core.New("sphere", map[string]string{"w": "16", "h": "16"})
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	if got := len(sim.Cells()); got != 256 {
		t.Fatalf("buffer length %d, expected 256", got)
	}
}
