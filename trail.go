package glyphfield

import "github.com/tanema/gween/ease"

// Trail defaults: samples live for 100ms and render as 40px gradient discs.
const (
	DefaultTrailLifetimeMs = 100
	DefaultTrailDiameter   = 40

	defaultTrailCap = 16
)

// Gradient endpoints for trail discs. The inner alpha is further scaled by
// each sample's remaining life.
var (
	trailInnerColor = RGBA8(200, 150, 255, 200)
	trailOuterColor = RGBA8(50, 100, 255, 0)
)

// TrailSample is a timestamped pointer position.
type TrailSample struct {
	X, Y         float64
	CapturedAtMs float64
}

// Trail is a time-decaying ring of recent pointer positions. Samples are kept
// in non-decreasing capture order; anything older than LifetimeMs is evicted
// on the next Tick or Evict.
type Trail struct {
	LifetimeMs float64
	Diameter   float64

	ring  []TrailSample
	head  int // index of the oldest live sample
	count int
}

// NewTrail creates a Trail. Non-positive arguments select the defaults.
func NewTrail(lifetimeMs, diameter float64) *Trail {
	if lifetimeMs <= 0 {
		lifetimeMs = DefaultTrailLifetimeMs
	}
	if diameter <= 0 {
		diameter = DefaultTrailDiameter
	}
	return &Trail{
		LifetimeMs: lifetimeMs,
		Diameter:   diameter,
		ring:       make([]TrailSample, defaultTrailCap),
	}
}

// Tick appends a sample at (x, y) captured at nowMs, then evicts expired
// samples. A timestamp earlier than the newest sample is raised to it so the
// buffer stays ordered.
func (t *Trail) Tick(x, y, nowMs float64) {
	if t.count > 0 {
		if newest := t.ring[(t.head+t.count-1)%len(t.ring)]; nowMs < newest.CapturedAtMs {
			nowMs = newest.CapturedAtMs
		}
	}
	if t.count == len(t.ring) {
		t.grow()
	}
	t.ring[(t.head+t.count)%len(t.ring)] = TrailSample{X: x, Y: y, CapturedAtMs: nowMs}
	t.count++
	t.Evict(nowMs)
}

// Evict drops every sample with nowMs - CapturedAtMs > LifetimeMs.
func (t *Trail) Evict(nowMs float64) {
	for t.count > 0 && nowMs-t.ring[t.head].CapturedAtMs > t.LifetimeMs {
		t.ring[t.head] = TrailSample{}
		t.head = (t.head + 1) % len(t.ring)
		t.count--
	}
}

// grow doubles the ring, unrolling live samples to the front.
func (t *Trail) grow() {
	n := len(t.ring) * 2
	if n == 0 {
		n = defaultTrailCap
	}
	next := make([]TrailSample, n)
	for i := 0; i < t.count; i++ {
		next[i] = t.ring[(t.head+i)%len(t.ring)]
	}
	t.ring = next
	t.head = 0
}

// Len returns the number of live samples.
func (t *Trail) Len() int {
	return t.count
}

// Samples appends the live samples, oldest first, to dst.
func (t *Trail) Samples(dst []TrailSample) []TrailSample {
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.ring[(t.head+i)%len(t.ring)])
	}
	return dst
}

// Reset drops all samples.
func (t *Trail) Reset() {
	clear(t.ring)
	t.head = 0
	t.count = 0
}

// Alpha returns the remaining-life factor of s at nowMs: 1 when fresh,
// falling linearly to 0 at LifetimeMs.
func (t *Trail) Alpha(s TrailSample, nowMs float64) float64 {
	age := clamp(nowMs-s.CapturedAtMs, 0, t.LifetimeMs)
	return float64(ease.Linear(float32(age), 1, -1, float32(t.LifetimeMs)))
}

// Render draws every live sample as a radial gradient disc: concentric
// filled circles from the outer radius down to 1px, blending from the outer
// color at the rim to the alpha-scaled inner color at the center.
func (t *Trail) Render(s Surface, nowMs float64) {
	r := int(t.Diameter / 2)
	if r <= 0 {
		return
	}
	for i := 0; i < t.count; i++ {
		sample := t.ring[(t.head+i)%len(t.ring)]
		inner := trailInnerColor
		inner.A *= t.Alpha(sample, nowMs)
		for ring := r; ring > 0; ring-- {
			c := inner.Lerp(trailOuterColor, float64(ring)/float64(r))
			s.FillCircle(sample.X, sample.Y, float64(ring), c)
		}
	}
}
