// Package sphere shades a unit sphere lit by an orbiting directional light,
// one analytic ray intersection per pixel.
package sphere

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// Bands is the number of brightness steps a shaded pixel is quantized to.
	Bands = 15
	// LightSpeed is the light's angular step per frame in radians.
	LightSpeed = 0.05
)

var (
	// ErrPixelOutOfRange reports a pixel outside the renderer's raster.
	ErrPixelOutOfRange = errors.New("sphere: pixel out of range")
	// ErrBufferSize reports a destination buffer that does not match the raster.
	ErrBufferSize = errors.New("sphere: buffer size mismatch")
)

// IntersectSphere solves |origin + t*dir| = radius for t, where the sphere is
// centred on the origin. A miss, including a sphere lying entirely behind the
// ray, returns (-1, -1).
func IntersectSphere(origin, dir Vec3, radius float64) (tNear, tFar float64) {
	a := dir.Dot(dir)
	if a == 0 {
		return -1, -1
	}
	b := origin.Dot(dir)
	c := origin.Dot(origin) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return -1, -1
	}
	s := math.Sqrt(disc)
	tNear, tFar = (-b-s)/a, (-b+s)/a
	if tFar < 0 {
		return -1, -1
	}
	return tNear, tFar
}

// LightDir returns the unit light direction for a frame.
func LightDir(frame int) Vec3 {
	angle := float64(frame) * LightSpeed
	// Never zero length: Z is fixed at -1.
	l, _ := Vec3{X: math.Sin(angle), Y: math.Cos(angle), Z: -1}.Normalize()
	return l
}

// Quantize maps a diffuse term to one of Bands brightness levels on a 0..256
// scale. The result is not clamped.
func Quantize(diff float64) float64 {
	return math.Floor(diff*Bands) / Bands * 256
}

// ClampByte converts an intensity to a display byte, saturating instead of
// wrapping. NaN maps to zero.
func ClampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Renderer casts rays from Eye through a view plane Focal units ahead.
type Renderer struct {
	Width, Height int
	Eye           Vec3
	Focal         float64
	Radius        float64
	// Workers bounds how many rows are shaded concurrently by Render.
	Workers       int
}

// DefaultRenderer returns a 200x200 view of the unit sphere from z=-3.
func DefaultRenderer() Renderer {
	return Renderer{
		Width:   200,
		Height:  200,
		Eye:     Vec3{Z: -3},
		Focal:   1.5,
		Radius:  1,
		Workers: runtime.NumCPU(),
	}
}

// RayDir returns the unit direction of the ray through the centre of pixel
// (px, py).
func (r Renderer) RayDir(px, py int) (Vec3, error) {
	if px < 0 || px >= r.Width || py < 0 || py >= r.Height {
		return Vec3{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrPixelOutOfRange, px, py, r.Width, r.Height)
	}
	aspect := float64(r.Width) / float64(r.Height)
	u := (2*(float64(px)+0.5)/float64(r.Width) - 1) * aspect
	v := 1 - 2*(float64(py)+0.5)/float64(r.Height)
	dir, err := Vec3{X: u, Y: v, Z: r.Focal}.Normalize()
	if err != nil {
		return Vec3{}, fmt.Errorf("ray through (%d,%d): %w", px, py, err)
	}
	return dir, nil
}

// Shade returns the brightness of pixel (px, py) at the given frame. Pixels
// whose ray misses the sphere, or hits it behind the eye, are black.
func (r Renderer) Shade(frame, px, py int) (uint8, error) {
	dir, err := r.RayDir(px, py)
	if err != nil {
		return 0, err
	}
	tNear, _ := IntersectSphere(r.Eye, dir, r.Radius)
	if tNear <= 0 {
		return 0, nil
	}
	normal, err := r.Eye.Add(dir.Scale(tNear)).Normalize()
	if err != nil {
		return 0, fmt.Errorf("normal at (%d,%d): %w", px, py, err)
	}
	return ClampByte(Quantize(normal.Dot(LightDir(frame)))), nil
}

// Render shades every pixel of the frame into dst in row-major order.
func (r Renderer) Render(frame int, dst []uint8) error {
	if len(dst) != r.Width*r.Height {
		return fmt.Errorf("%w: have %d, need %d", ErrBufferSize, len(dst), r.Width*r.Height)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < r.Height; y++ {
		row := dst[y*r.Width : (y+1)*r.Width]
		g.Go(func() error {
			for x := range row {
				v, err := r.Shade(frame, x, y)
				if err != nil {
					return err
				}
				row[x] = v
			}
			return nil
		})
	}
	return g.Wait()
}
