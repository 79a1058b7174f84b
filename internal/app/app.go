//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// viewProvider is implemented by sims exposing a bounded read-only grid.
type viewProvider interface {
	Current() core.GridReader
}

// seeder is implemented by sims that accept single-cell edits.
type seeder interface {
	Seed(row, column int, alive bool) error
}

// Game adapts a core simulation to the ebiten.Game interface. Each frame
// finishes any step, buffer swap included, in Update before Draw reads the
// generation.
type Game struct {
	sim     core.Sim
	pacer   core.Pacer
	painter *render.GridPainter
	circles *render.CirclePainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	cfg      Config
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:      sim,
		pacer:    core.NewFrameGate(cfg.Every),
		overlay:  ui.NewOverlay(sim),
		onColor:  color.White,
		offColor: color.Black,
		cfg:      *cfg,
		seed:     cfg.Seed,
	}
	_, hasView := sim.(viewProvider)
	if cfg.Style == StyleCircles && hasView {
		g.circles = render.NewCirclePainter(render.DefaultLayout())
	} else {
		g.cfg.Style = StylePixels
		g.painter = render.NewGridPainter(sim.Size().W, sim.Size().H)
		g.overlay.SetColor(color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	return g
}

// WindowSize returns the window dimensions for the active style.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
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
		seed := time.Now().UnixNano()
		log.Printf("reseeding %s with %d", g.sim.Name(), seed)
		g.Reset(seed)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleCellAt(ebiten.CursorPosition())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	step := !g.paused && g.pacer.ShouldStep()
	if step || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleCellAt(x, y int) {
	vp, ok := g.sim.(viewProvider)
	if !ok {
		return
	}
	sd, ok := g.sim.(seeder)
	if !ok {
		return
	}
	view := vp.Current()
	var row, column int
	if g.circles != nil {
		row, column, ok = g.circles.Layout.CellAt(float32(x), float32(y), view.Rows(), view.Columns())
	} else {
		row, column, ok = render.PixelCellAt(x, y, g.cfg.Scale, view.Rows(), view.Columns())
	}
	if !ok {
		return
	}
	alive, err := view.Get(row, column)
	if err != nil {
		log.Printf("toggle (%d,%d): %v", row, column, err)
		return
	}
	if err := sd.Seed(row, column, !alive); err != nil {
		log.Printf("toggle (%d,%d): %v", row, column, err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.circles != nil {
		g.circles.Draw(screen, g.sim.(viewProvider).Current())
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.cfg.Scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.circles != nil {
		return g.cfg.WindowW, g.cfg.WindowH
	}
	s := g.sim.Size()
	return s.W * g.cfg.Scale, s.H * g.cfg.Scale
}
