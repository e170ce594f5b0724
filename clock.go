package glyphfield

import "time"

// Clock supplies the monotonically increasing millisecond time that drives
// effects and trail decay.
type Clock interface {
	NowMs() float64
}

// wallClock measures milliseconds since it was created.
type wallClock struct {
	start time.Time
}

// NewWallClock returns a Clock that starts at zero now.
func NewWallClock() Clock {
	return wallClock{start: time.Now()}
}

func (c wallClock) NowMs() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000
}

// ManualClock is a Clock advanced explicitly, for scripted runs and tests.
type ManualClock struct {
	Ms float64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() float64 { return c.Ms }

// Advance moves the clock forward by ms. Negative values are ignored.
func (c *ManualClock) Advance(ms float64) {
	if ms > 0 {
		c.Ms += ms
	}
}
