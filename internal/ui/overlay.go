//go:build ebiten

package ui

import (
	"image/color"

	"canvas-toys/internal/core"
	"canvas-toys/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type changeProvider interface {
	Changes() life.Result
}

var (
	bornTint = color.RGBA{R: 40, G: 200, B: 80, A: 160}
	diedTint = color.RGBA{R: 200, G: 40, B: 40, A: 160}
)

// Overlay highlights the cells the last step changed.
type Overlay struct {
	sim         core.Sim
	scale       int
	showChanges bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChanges = !o.showChanges
	}
}

// Draw tints born cells green and died cells red.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChanges {
		return
	}
	provider, ok := o.sim.(changeProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	res := provider.Changes()
	o.drawCells(screen, res.Died, diedTint, scale)
	o.drawCells(screen, res.Born, bornTint, scale)
}

func (o *Overlay) drawCells(screen *ebiten.Image, cells life.Set, tint color.RGBA, scale int) {
	s := float32(scale)
	for c := range cells {
		vector.DrawFilledRect(screen, float32(c.X)*s, float32(c.Y)*s, s, s, tint, false)
	}
}
