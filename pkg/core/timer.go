package core

import "time"

// Pacer decides, once per rendered frame, whether the driver should advance
// the simulation.
type Pacer interface {
	ShouldStep() bool
}

// FrameGate steps once every N frames, independent of wall-clock time.
type FrameGate struct {
	every int
	frame int
}

// NewFrameGate returns a gate that opens on every n-th call. Values below 1
// open on every call.
func NewFrameGate(n int) *FrameGate {
	if n < 1 {
		n = 1
	}
	return &FrameGate{every: n}
}

// ShouldStep counts a frame and reports whether it completes a period.
func (f *FrameGate) ShouldStep() bool {
	f.frame++
	if f.frame >= f.every {
		f.frame = 0
		return true
	}
	return false
}

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
