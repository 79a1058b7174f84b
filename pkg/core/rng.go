package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillGrid sets every interior cell of g alive with probability density.
func (r *RNG) FillGrid(g *Grid, density float64) {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			var v uint8
			if r.Chance(density) {
				v = 1
			}
			g.cells[g.index(row, column)] = v
		}
	}
}
