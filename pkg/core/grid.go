package core

import "fmt"

// GridReader is the read-only view of a Grid handed to renderers.
type GridReader interface {
	Rows() int
	Columns() int
	Get(row, column int) (bool, error)
	CountAliveNeighbors(row, column int) (int, error)
	Population() int
	ForEachAlive(fn func(row, column int))
}

// Rule decides whether a cell is alive in the next generation given its
// current state and the number of alive Moore neighbors.
type Rule func(alive bool, neighbors int) bool

// Grid stores a bounded 2D field of binary cells in row-major order. The
// backing slice carries a one-cell border on every side that always stays
// dead, so neighbor lookups never need bounds checks.
type Grid struct {
	rows, columns int
	stride        int
	cells         []uint8
	offsets       [8]int
}

// NewGrid allocates a grid with the given logical dimensions, all cells dead.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, columns)
	}
	stride := columns + 2
	g := &Grid{
		rows:    rows,
		columns: columns,
		stride:  stride,
		cells:   make([]uint8, (rows+2)*stride),
	}
	g.offsets = [8]int{
		-stride - 1, -stride, -stride + 1,
		-1, 1,
		stride - 1, stride, stride + 1,
	}
	return g, nil
}

// Rows returns the number of logical rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of logical columns.
func (g *Grid) Columns() int { return g.columns }

// index maps logical coordinates to the bordered storage index.
func (g *Grid) index(row, column int) int { return (row+1)*g.stride + column + 1 }

func (g *Grid) check(row, column int) error {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfBounds, row, column, g.rows, g.columns)
	}
	return nil
}

// Get reports whether the cell at (row, column) is alive.
func (g *Grid) Get(row, column int) (bool, error) {
	if err := g.check(row, column); err != nil {
		return false, err
	}
	return g.cells[g.index(row, column)] == 1, nil
}

// Set writes the state of the cell at (row, column). Nothing is written when
// the coordinates are out of range.
func (g *Grid) Set(row, column int, alive bool) error {
	if err := g.check(row, column); err != nil {
		return err
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cells[g.index(row, column)] = v
	return nil
}

// CountAliveNeighbors returns the number of alive cells, in [0, 8], among the
// eight cells surrounding (row, column). Cells past the edge count as dead.
func (g *Grid) CountAliveNeighbors(row, column int) (int, error) {
	if err := g.check(row, column); err != nil {
		return 0, err
	}
	return g.neighbors(g.index(row, column)), nil
}

// neighbors counts around a storage index. The border keeps every offset in
// range for any interior index.
func (g *Grid) neighbors(i int) int {
	c := g.cells
	o := &g.offsets
	return int(c[i+o[0]]) + int(c[i+o[1]]) + int(c[i+o[2]]) +
		int(c[i+o[3]]) + int(c[i+o[4]]) +
		int(c[i+o[5]]) + int(c[i+o[6]]) + int(c[i+o[7]])
}

// Evolve applies rule to every interior cell in logical rows
// [rowStart, rowEnd), reading only from g and writing only to dst. Border
// cells of dst are never touched. Disjoint row bands may be evolved
// concurrently into the same dst.
func (g *Grid) Evolve(dst *Grid, rule Rule, rowStart, rowEnd int) error {
	if dst == nil || dst == g || dst.rows != g.rows || dst.columns != g.columns {
		return ErrDimensionMismatch
	}
	if rowStart < 0 || rowEnd > g.rows || rowStart > rowEnd {
		return fmt.Errorf("%w: row band [%d,%d) outside %d rows", ErrIndexOutOfBounds, rowStart, rowEnd, g.rows)
	}
	src, out := g.cells, dst.cells
	for row := rowStart; row < rowEnd; row++ {
		base := (row+1)*g.stride + 1
		for i := base; i < base+g.columns; i++ {
			var v uint8
			if rule(src[i] == 1, g.neighbors(i)) {
				v = 1
			}
			out[i] = v
		}
	}
	return nil
}

// Population returns the number of alive interior cells.
func (g *Grid) Population() int {
	n := 0
	for row := 0; row < g.rows; row++ {
		base := g.index(row, 0)
		for _, c := range g.cells[base : base+g.columns] {
			n += int(c)
		}
	}
	return n
}

// ForEachAlive calls fn for every alive cell in row-major order.
func (g *Grid) ForEachAlive(fn func(row, column int)) {
	for row := 0; row < g.rows; row++ {
		base := g.index(row, 0)
		for column, c := range g.cells[base : base+g.columns] {
			if c == 1 {
				fn(row, column)
			}
		}
	}
}

// CopyTo exports the interior as row-major 0/1 values. dst must hold exactly
// Rows()*Columns() entries.
func (g *Grid) CopyTo(dst []uint8) error {
	if len(dst) != g.rows*g.columns {
		return fmt.Errorf("%w: buffer of %d for %dx%d grid", ErrDimensionMismatch, len(dst), g.rows, g.columns)
	}
	for row := 0; row < g.rows; row++ {
		base := g.index(row, 0)
		copy(dst[row*g.columns:(row+1)*g.columns], g.cells[base:base+g.columns])
	}
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Equal reports whether both grids have the same dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
