//go:build ebiten

package app

import (
	"image/color"
	"time"

	"canvas-toys/internal/render"
	"canvas-toys/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width of the status panel right of the canvas.
const hudWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, scale int) *Game {
	sim := ctl.Sim()
	size := sim.Size()
	palette := render.Grayscale()
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		palette: palette,
		scale:   scale,
	}
}

// Update handles input, then lets the controller decide whether to step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset(g.ctl.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if err := g.ctl.Tick(); err != nil {
		return err
	}
	if g.hud != nil {
		g.hud.Update(g.ctl.Running(), g.ctl.Steps())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.ctl.Sim()
	g.painter.Blit(screen, sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize returns the size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
