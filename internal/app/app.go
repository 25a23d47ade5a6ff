//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"
	"life-ca/pkg/core"
	"life-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameSink receives every generation the game advances to.
type FrameSink interface {
	AddFrame(core.Snapshot) error
}

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	sink    FrameSink

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation, advancing one
// generation per interval.
func New(sim *life.Life, scale int, interval time.Duration) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Grid().Size()),
		hud:      ui.NewHUD(sim),
		pacer:    core.NewFixedStep(interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     sim.Config().Seed,
	}
}

// SetFrameSink registers a sink that is fed the initial generation and every
// generation after it.
func (g *Game) SetFrameSink(sink FrameSink) error {
	g.sink = sink
	if sink == nil {
		return nil
	}
	return sink.AddFrame(g.sim.Snapshot())
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if err := g.sim.Advance(); err != nil {
			return err
		}
		if g.sink != nil {
			if err := g.sink.AddFrame(g.sim.Snapshot()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Generation(), g.sim.Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.painter.Size()
	return n * g.scale, n * g.scale
}
