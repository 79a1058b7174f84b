package life

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/core"
)

// Conway is the B3/S23 transition rule: a live cell survives with two or
// three neighbors, a dead cell is born with exactly three.
func Conway(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Simulation implements Conway's Game of Life on a bounded board whose edges
// are permanently dead. It owns two grids and swaps them after every step.
type Simulation struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	display    []uint8
	bands      [][2]int
	generation uint64
}

// New returns a Life simulation with the provided dimensions using defaults.
// Every cell starts dead.
func New(rows, columns int) (*Simulation, error) {
	cfg := DefaultConfig()
	cfg.Height = rows
	cfg.Width = columns
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided
// options. Every cell starts dead; call Reset to apply cfg.Pattern. Any
// positive board size is accepted whatever the pattern.
func NewWithConfig(cfg Config) (*Simulation, error) {
	cur, err := core.NewGrid(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if err := validatePattern(cfg.Pattern); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:     cfg,
		cur:     cur,
		nxt:     nxt,
		display: make([]uint8, cfg.Width*cfg.Height),
		bands:   splitRows(cfg.Height, cfg.Workers),
	}, nil
}

// splitRows partitions rows into n contiguous bands whose sizes differ by at
// most one.
func splitRows(rows, n int) [][2]int {
	n = min(n, rows)
	bands := make([][2]int, 0, n)
	each, extra := rows/n, rows%n
	start := 0
	for i := 0; i < n; i++ {
		end := start + each
		if i < extra {
			end++
		}
		bands = append(bands, [2]int{start, end})
		start = end
	}
	return bands
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the effective configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Generation returns the number of steps completed since construction or the
// last Reset.
func (s *Simulation) Generation() uint64 { return s.generation }

// Population returns the number of alive cells in the current generation.
func (s *Simulation) Population() int { return s.cur.Population() }

// Current exposes the live generation for reading. Mutation goes through Seed.
func (s *Simulation) Current() core.GridReader { return s.cur }

// Seed sets a cell of the current generation.
func (s *Simulation) Seed(row, column int, alive bool) error {
	return s.cur.Set(row, column, alive)
}

// Cells exposes the current generation as row-major 0/1 values for pixel
// renderers. The slice is reused and refreshed on every call.
func (s *Simulation) Cells() []uint8 {
	invariant(s.cur.CopyTo(s.display))
	return s.display
}

// Reset clears the board and applies the configured pattern. A zero seed
// falls back to the configured one. A fixed pattern larger than the board
// leaves it empty; see PatternFits.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.cur.Clear()
	s.nxt.Clear()
	s.generation = 0

	switch s.cfg.Pattern {
	case PatternEmpty:
	case PatternRandom:
		core.NewRNG(seed).FillGrid(s.cur, randomDensity)
	default:
		p, _ := LookupPattern(s.cfg.Pattern)
		if !p.Fits(s.cfg.Height, s.cfg.Width) {
			return
		}
		h, w := p.Bounds()
		invariant(p.Place(s, (s.cfg.Height-h)/2, (s.cfg.Width-w)/2))
	}
}

// PatternFits reports whether Reset can place the configured pattern.
func (s *Simulation) PatternFits() bool {
	p, ok := LookupPattern(s.cfg.Pattern)
	return !ok || p.Fits(s.cfg.Height, s.cfg.Width)
}

// Step advances the simulation by one generation. Every cell of the next
// generation is computed from the current one only, then the two buffers
// trade places.
func (s *Simulation) Step() {
	invariant(s.evolve())
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
}

func (s *Simulation) evolve() error {
	if len(s.bands) == 1 {
		return s.cur.Evolve(s.nxt, Conway, 0, s.cfg.Height)
	}
	var g errgroup.Group
	for _, band := range s.bands {
		g.Go(func() error {
			return s.cur.Evolve(s.nxt, Conway, band[0], band[1])
		})
	}
	return g.Wait()
}

// Parameters describes the effective configuration.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.IntParam("workers", "Workers", s.cfg.Workers),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("pattern", "Pattern", s.cfg.Pattern),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
	}}
}

// invariant panics on errors that validated construction rules out.
func invariant(err error) {
	if err != nil {
		panic(fmt.Sprintf("life: %v", err))
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		s, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
