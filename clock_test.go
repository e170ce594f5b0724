package glyphfield

import "testing"

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(16.5)
	c.Advance(-100)
	c.Advance(0.5)
	if c.NowMs() != 17 {
		t.Errorf("NowMs = %v, want 17", c.NowMs())
	}
}

func TestWallClockMonotonic(t *testing.T) {
	c := NewWallClock()
	a := c.NowMs()
	b := c.NowMs()
	if a < 0 || b < a {
		t.Errorf("wall clock went backwards: %v then %v", a, b)
	}
}
