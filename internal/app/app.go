//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	simcore "mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     simcore.Sim
	painter *render.GridPainter
	ticker  *core.FixedStep
	session *Session

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64
}

// New constructs a Game for the provided simulation, stepping once per
// interval. A zero interval steps on every frame. session may be nil.
func New(sim simcore.Sim, scale int, seed int64, interval time.Duration, session *Session) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		ticker:   core.NewFixedStep(interval),
		session:  session,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		showHUD:  true,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	if g.session != nil {
		g.session.Restart()
	}
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
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	due := g.ticker.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	if g.session == nil {
		return nil
	}
	if err := g.session.Capture(); err != nil {
		return err
	}
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if !g.showHUD {
		return
	}
	if rep, ok := g.sim.(simcore.GenerationReporter); ok {
		status := ""
		if g.paused {
			status = " [paused]"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  alive %d%s", rep.Generation(), rep.Population(), status))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
