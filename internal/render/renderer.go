//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifegrid/pkg/core"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// CirclePainter draws one filled circle per alive cell.
type CirclePainter struct {
	Layout     Layout
	Color      color.Color
	Background color.Color
}

// NewCirclePainter returns a painter using the sky-blue on ray-white palette.
func NewCirclePainter(layout Layout) *CirclePainter {
	return &CirclePainter{Layout: layout, Color: SkyBlue, Background: RayWhite}
}

// Draw clears dst and paints every alive cell of view.
func (cp *CirclePainter) Draw(dst *ebiten.Image, view core.GridReader) {
	dst.Fill(cp.Background)
	view.ForEachAlive(func(row, column int) {
		x, y := cp.Layout.Center(row, column)
		vector.DrawFilledCircle(dst, x, y, cp.Layout.Radius, cp.Color, true)
	})
}
