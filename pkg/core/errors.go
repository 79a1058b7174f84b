package core

import "errors"

var (
	// ErrInvalidDimension reports a grid constructed with a non-positive size.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrIndexOutOfBounds reports logical coordinates outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrDimensionMismatch reports two grids that cannot be paired.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrUnknownSim reports a lookup for a simulation that was never registered.
	ErrUnknownSim = errors.New("unknown sim")
)
