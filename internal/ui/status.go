package ui

import (
	"fmt"

	"lifegrid/pkg/core"
)

// statsProvider is implemented by sims that count generations and cells.
type statsProvider interface {
	Generation() uint64
	Population() int
}

// StatusLine summarizes the sim for the overlay.
func StatusLine(sim core.Sim, paused bool) string {
	line := sim.Name()
	if st, ok := sim.(statsProvider); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, st.Generation(), st.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
