package glyphfield

import "time"

// debugLogInterval throttles per-frame stats so debug output stays readable.
const debugLogInterval = time.Second

// debugLogger reports frame stats at Debug level. Only used when debug mode
// is on.
type debugLogger struct {
	last   time.Time
	frames int
}

// log records one frame and emits a summary at most once per interval.
func (d *debugLogger) log(now time.Time, stats frameStats, s *Session) {
	d.frames++
	if !d.last.IsZero() && now.Sub(d.last) < debugLogInterval {
		return
	}
	Logger().Debug("frame",
		"frames", d.frames,
		"active", stats.active,
		"points", stats.points,
		"trail", stats.trailSamples,
		"draw", stats.drawTime,
		"effect", s.Effect.Effect().Name,
		"density", s.Effect.Density,
		"scrollY", s.Viewport.ScrollY)
	d.last = now
	d.frames = 0
}
