package render

import (
	"image/color"
	"math"
)

// Palette used by the circle style.
var (
	RayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	SkyBlue  = color.RGBA{R: 102, G: 191, B: 255, A: 255}
)

// Layout places cell (row, column) at Origin + (column, row) * Pitch in
// screen space.
type Layout struct {
	OriginX float32
	OriginY float32
	Pitch   float32
	Radius  float32
}

// DefaultLayout matches the classic 800x450 window: 5px pitch, 2.5px dots.
func DefaultLayout() Layout {
	return Layout{OriginX: 240, OriginY: 65, Pitch: 5, Radius: 2.5}
}

// Center returns the screen position of a cell's center.
func (l Layout) Center(row, column int) (x, y float32) {
	return l.OriginX + float32(column)*l.Pitch, l.OriginY + float32(row)*l.Pitch
}

// CellAt maps a screen position to the nearest cell. ok is false when the
// position falls outside a rows x columns board.
func (l Layout) CellAt(x, y float32, rows, columns int) (row, column int, ok bool) {
	if l.Pitch <= 0 {
		return 0, 0, false
	}
	column = int(math.Round(float64((x - l.OriginX) / l.Pitch)))
	row = int(math.Round(float64((y - l.OriginY) / l.Pitch)))
	if row < 0 || row >= rows || column < 0 || column >= columns {
		return 0, 0, false
	}
	return row, column, true
}

// PixelCellAt maps a screen position to a cell for the scaled pixel style.
func PixelCellAt(x, y, scale, rows, columns int) (row, column int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, column = y/scale, x/scale
	if row >= rows || column >= columns {
		return 0, 0, false
	}
	return row, column, true
}
