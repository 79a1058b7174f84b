package life

import (
	"errors"
	"fmt"
	"sort"
)

// Names of the initial conditions Reset understands.
const (
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternGlider  = "glider"
	PatternRandom  = "random"
	PatternEmpty   = "empty"
)

// randomDensity is the share of cells the random pattern starts alive.
const randomDensity = 0.5

// ErrUnknownPattern reports a pattern name with no definition.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a fixed arrangement of alive cells given as (row, column)
// offsets from its top-left anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{
	PatternBlinker: {Name: PatternBlinker, Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}},
	PatternBlock:   {Name: PatternBlock, Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	PatternGlider:  {Name: PatternGlider, Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
}

// LookupPattern returns the fixed pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Patterns lists every name accepted by Config.Pattern.
func Patterns() []string {
	names := []string{PatternRandom, PatternEmpty}
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the height and width of the pattern's bounding box.
func (p Pattern) Bounds() (rows, columns int) {
	for _, rc := range p.Cells {
		rows = max(rows, rc[0]+1)
		columns = max(columns, rc[1]+1)
	}
	return rows, columns
}

// Place seeds the pattern with its anchor at (row, column). Either every
// cell is written or, when any cell falls outside the grid, none is.
func (p Pattern) Place(s *Simulation, row, column int) error {
	for _, rc := range p.Cells {
		if _, err := s.cur.Get(row+rc[0], column+rc[1]); err != nil {
			return fmt.Errorf("place %s at (%d,%d): %w", p.Name, row, column, err)
		}
	}
	for _, rc := range p.Cells {
		if err := s.Seed(row+rc[0], column+rc[1], true); err != nil {
			return err
		}
	}
	return nil
}

// Fits reports whether the pattern's bounding box fits a rows x columns board.
func (p Pattern) Fits(rows, columns int) bool {
	h, w := p.Bounds()
	return h <= rows && w <= columns
}

// validatePattern checks that name is known.
func validatePattern(name string) error {
	switch name {
	case PatternRandom, PatternEmpty:
		return nil
	}
	if _, ok := patterns[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return nil
}
