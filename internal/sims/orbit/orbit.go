// Package orbit animates the ray-traced sphere as a registered sim.
package orbit

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"canvas-toys/internal/core"
	"canvas-toys/pkg/sphere"
)

// TickInterval is the time between frames.
const TickInterval = 10 * time.Millisecond

// FromMap builds a renderer from flag-style key/value pairs.
func FromMap(cfg map[string]string) sphere.Renderer {
	r := sphere.DefaultRenderer()
	if cfg == nil {
		return r
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.Workers = parsed
		}
	}
	if v, ok := cfg["focal"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			r.Focal = parsed
		}
	}
	return r
}

// Scene holds the frame counter and the last rendered frame.
type Scene struct {
	r     sphere.Renderer
	frame int
	buf   []uint8
	err   error
}

// New returns a scene showing frame 0.
func New(r sphere.Renderer) *Scene {
	s := &Scene{r: r, buf: make([]uint8, r.Width*r.Height)}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Scene) Name() string { return "sphere" }

// Size returns the raster dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.r.Width, H: s.r.Height} }

// Cells exposes the intensity buffer.
func (s *Scene) Cells() []uint8 { return s.buf }

// TickInterval reports the frame cadence.
func (s *Scene) TickInterval() time.Duration { return TickInterval }

// Frame returns the frame currently shown.
func (s *Scene) Frame() int { return s.frame }

// Err reports the first render failure since the last reset.
func (s *Scene) Err() error { return s.err }

// Reset rewinds the light. The seed is used as the starting frame, folded
// into the frame counter's range.
func (s *Scene) Reset(seed int64) {
	s.frame = int(seed % (core.FrameModulus + 1))
	if s.frame < 0 {
		s.frame += core.FrameModulus + 1
	}
	s.err = nil
	s.render()
}

// Step renders the next frame. After a failure the scene stays frozen.
func (s *Scene) Step() {
	if s.err != nil {
		return
	}
	s.frame = core.NextFrame(s.frame)
	s.render()
}

func (s *Scene) render() {
	if err := s.r.Render(s.frame, s.buf); err != nil {
		s.err = fmt.Errorf("frame %d: %w", s.frame, err)
	}
}

// Parameters reports the renderer setup and light position.
func (s *Scene) Parameters() core.ParameterSnapshot {
	l := sphere.LightDir(s.frame)
	angle := math.Mod(float64(s.frame)*sphere.LightSpeed, 2*math.Pi)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "View",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.r.Width),
				core.IntParam("h", "Height", s.r.Height),
				core.FloatParam("focal", "Focal", s.r.Focal),
				core.IntParam("workers", "Workers", s.r.Workers),
			},
		},
		{
			Name: "Light",
			Params: []core.Parameter{
				core.IntParam("frame", "Frame", s.frame),
				core.FloatParam("angle", "Angle", math.Round(angle*100)/100),
				core.FloatParam("light_x", "Light X", math.Round(l.X*100)/100),
				core.FloatParam("light_y", "Light Y", math.Round(l.Y*100)/100),
				core.BoolParam("failed", "Failed", s.err != nil),
			},
		},
	}}
}

func init() {
	core.Register("sphere", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}
