package core

import (
	"testing"
	"time"
)

func TestFrameGate(t *testing.T) {
	gate := NewFrameGate(3)
	var got []bool
	for i := 0; i < 7; i++ {
		got = append(got, gate.ShouldStep())
	}
	want := []bool{false, false, true, false, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d: ShouldStep = %v, want %v", i+1, got[i], want[i])
		}
	}

	every := NewFrameGate(0)
	for i := 0; i < 3; i++ {
		if !every.ShouldStep() {
			t.Fatal("gate with n<1 must open on every frame")
		}
	}
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs := NewFixedStep(1)
	if fs.Interval() != time.Second {
		t.Fatalf("interval = %v, want 1s", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep must fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second ShouldStep fired before a full interval")
	}

	fs.SetTPS(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("SetTPS(0) interval = %v, want default 60 TPS", fs.Interval())
	}
}
