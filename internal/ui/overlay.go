//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifegrid/pkg/core"
)

const helpLine = "space pause  n step  r reset  s reseed  click toggle  h help  q quit"

// Overlay draws the status and key help on top of the simulation.
type Overlay struct {
	sim      core.Sim
	showHelp bool
	fg       color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showHelp: true, fg: color.RGBA{R: 90, G: 90, B: 100, A: 255}}
}

// SetColor changes the text color so it stays legible on the active style.
func (o *Overlay) SetColor(c color.Color) { o.fg = c }

// Update toggles the help line.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the status line and, when enabled, the key help.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	text.Draw(screen, StatusLine(o.sim, paused), basicfont.Face7x13, 6, 16, o.fg)
	if o.showHelp {
		text.Draw(screen, helpLine, basicfont.Face7x13, 6, 32, o.fg)
	}
}
