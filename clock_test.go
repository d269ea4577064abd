package reel

import (
	"testing"
	"time"
)

func TestClockDeltaIsNonNegative(t *testing.T) {
	c := NewClock()
	for i := 0; i < 5; i++ {
		if dt := c.Dt(); dt < 0 {
			t.Fatalf("Dt() = %f, want >= 0", dt)
		}
	}
}

func TestClockCapsLargeSteps(t *testing.T) {
	c := NewClock()
	c.MaxStep = 0.001

	time.Sleep(10 * time.Millisecond)
	if dt := c.Dt(); dt != 0.001 {
		t.Errorf("Dt() = %f after a long gap, want capped 0.001", dt)
	}
}

func TestClockRestartDiscardsGap(t *testing.T) {
	c := NewClock()
	c.MaxStep = 0 // uncapped, so a stale reference would show up

	time.Sleep(5 * time.Millisecond)
	c.Restart()
	if dt := c.Dt(); dt > 0.004 {
		t.Errorf("Dt() = %f right after Restart, want near 0", dt)
	}
}
