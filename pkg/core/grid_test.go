package core

import (
	"errors"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows, columns int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, columns)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, columns, err)
	}
	return g
}

func mustSet(t *testing.T, g *Grid, cells ...[2]int) {
	t.Helper()
	for _, rc := range cells {
		if err := g.Set(rc[0], rc[1], true); err != nil {
			t.Fatalf("Set(%d,%d): %v", rc[0], rc[1], err)
		}
	}
}

func conway(alive bool, n int) bool { return n == 3 || (alive && n == 2) }

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid alongside the error", dims[0], dims[1])
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {4, 1}, {13, 9}} {
		g := mustGrid(t, dims[0], dims[1])
		if g.Rows() != dims[0] || g.Columns() != dims[1] {
			t.Fatalf("size = %dx%d, want %dx%d", g.Rows(), g.Columns(), dims[0], dims[1])
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Columns(); c++ {
				alive, err := g.Get(r, c)
				if err != nil {
					t.Fatalf("Get(%d,%d): %v", r, c, err)
				}
				if alive {
					t.Fatalf("fresh grid cell (%d,%d) alive", r, c)
				}
			}
		}
		if len(g.cells) != (dims[0]+2)*(dims[1]+2) {
			t.Fatalf("storage len = %d, want %d", len(g.cells), (dims[0]+2)*(dims[1]+2))
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := mustGrid(t, 4, 6)
	if err := g.Set(3, 5, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	alive, err := g.Get(3, 5)
	if err != nil || !alive {
		t.Fatalf("Get(3,5) = %v, %v; want true, nil", alive, err)
	}
	if err := g.Set(3, 5, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if alive, _ := g.Get(3, 5); alive {
		t.Fatal("cell still alive after clearing")
	}
}

func TestOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if err := g.Set(2, 2, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	before := slices.Clone(g.cells)

	cases := [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}, {-1, -1}, {5, 5}}
	for _, rc := range cases {
		if err := g.Set(rc[0], rc[1], true); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrIndexOutOfBounds", rc[0], rc[1], err)
		}
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Get(%d,%d) err = %v, want ErrIndexOutOfBounds", rc[0], rc[1], err)
		}
		if _, err := g.CountAliveNeighbors(rc[0], rc[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("CountAliveNeighbors(%d,%d) err = %v, want ErrIndexOutOfBounds", rc[0], rc[1], err)
		}
	}
	if !slices.Equal(before, g.cells) {
		t.Fatal("out-of-bounds writes modified the grid")
	}
}

func TestCountAliveNeighbors(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if err := g.Set(r, c, true); err != nil {
				t.Fatalf("Set(%d,%d): %v", r, c, err)
			}
		}
	}

	tests := []struct {
		row, column int
		want        int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{0, 2, 3},
		{2, 0, 3},
		{2, 2, 3},
		{0, 1, 5},
		{1, 0, 5},
		{2, 1, 5},
	}
	for _, tt := range tests {
		got, err := g.CountAliveNeighbors(tt.row, tt.column)
		if err != nil {
			t.Fatalf("CountAliveNeighbors(%d,%d): %v", tt.row, tt.column, err)
		}
		if got != tt.want {
			t.Fatalf("CountAliveNeighbors(%d,%d) = %d, want %d", tt.row, tt.column, got, tt.want)
		}
	}

	if err := g.Set(1, 1, false); err != nil {
		t.Fatalf("Set(1,1): %v", err)
	}
	if n, _ := g.CountAliveNeighbors(1, 1); n != 8 {
		t.Fatalf("center count changed with its own state: %d", n)
	}
}

func TestCountAliveNeighborsIgnoresSelf(t *testing.T) {
	g := mustGrid(t, 1, 1)
	mustSet(t, g, [2]int{0, 0})
	if n, _ := g.CountAliveNeighbors(0, 0); n != 0 {
		t.Fatalf("lone cell sees %d neighbors, want 0", n)
	}
}

func TestEvolveDoesNotWrap(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// A vertical line on the left edge would be fed by the right edge on a torus.
	mustSet(t, g, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{2, 4})

	dst := mustGrid(t, 5, 5)
	if err := g.Evolve(dst, conway, 0, 5); err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	want := map[[2]int]bool{{2, 0}: true, {2, 1}: true}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			alive, _ := dst.Get(r, c)
			if alive != want[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", r, c, alive, want[[2]int{r, c}])
			}
		}
	}
}

func TestEvolveKeepsBorderDead(t *testing.T) {
	g := mustGrid(t, 6, 4)
	dst := mustGrid(t, 6, 4)
	everything := func(bool, int) bool { return true }
	for i := 0; i < 3; i++ {
		if err := g.Evolve(dst, everything, 0, g.Rows()); err != nil {
			t.Fatalf("Evolve: %v", err)
		}
		g, dst = dst, g
	}
	if g.Population() != 24 {
		t.Fatalf("population = %d, want 24", g.Population())
	}
	for _, grid := range []*Grid{g, dst} {
		for r := 0; r < grid.rows+2; r++ {
			for c := 0; c < grid.stride; c++ {
				if r != 0 && r != grid.rows+1 && c != 0 && c != grid.columns+1 {
					continue
				}
				if grid.cells[r*grid.stride+c] != 0 {
					t.Fatalf("border cell (%d,%d) came alive", r, c)
				}
			}
		}
	}
}

func TestEvolveRowBands(t *testing.T) {
	rng := NewRNG(7)
	g := mustGrid(t, 17, 11)
	rng.FillGrid(g, 0.4)

	whole := mustGrid(t, 17, 11)
	if err := g.Evolve(whole, conway, 0, 17); err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	banded := mustGrid(t, 17, 11)
	for _, band := range [][2]int{{0, 5}, {5, 6}, {6, 17}} {
		if err := g.Evolve(banded, conway, band[0], band[1]); err != nil {
			t.Fatalf("Evolve band %v: %v", band, err)
		}
	}
	if !whole.Equal(banded) {
		t.Fatal("banded evolution differs from a single pass")
	}
}

func TestEvolveErrors(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if err := g.Evolve(g, conway, 0, 4); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("self evolve err = %v, want ErrDimensionMismatch", err)
	}
	if err := g.Evolve(mustGrid(t, 4, 5), conway, 0, 4); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("mismatched evolve err = %v, want ErrDimensionMismatch", err)
	}
	if err := g.Evolve(nil, conway, 0, 4); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("nil evolve err = %v, want ErrDimensionMismatch", err)
	}
	dst := mustGrid(t, 4, 4)
	for _, band := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		if err := g.Evolve(dst, conway, band[0], band[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("band %v err = %v, want ErrIndexOutOfBounds", band, err)
		}
	}
}

func TestPopulationForEachAliveCopyTo(t *testing.T) {
	g := mustGrid(t, 3, 4)
	alive := [][2]int{{0, 1}, {1, 3}, {2, 0}}
	mustSet(t, g, alive...)
	if g.Population() != 3 {
		t.Fatalf("population = %d, want 3", g.Population())
	}

	var seen [][2]int
	g.ForEachAlive(func(r, c int) { seen = append(seen, [2]int{r, c}) })
	if !slices.Equal(seen, alive) {
		t.Fatalf("ForEachAlive = %v, want %v", seen, alive)
	}

	buf := make([]uint8, 12)
	if err := g.CopyTo(buf); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	want := []uint8{
		0, 1, 0, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("CopyTo = %v, want %v", buf, want)
	}
	if err := g.CopyTo(make([]uint8, 11)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("short buffer err = %v, want ErrDimensionMismatch", err)
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear left cells alive")
	}
}
