package glyphfield

import "time"

// Frame colors and sizes.
var (
	activeBackground = Gray(30)
	idleBackground   = Gray(255)
	textPointColor   = Gray(255)
	placeholderColor = Gray(100)
	overlayColor     = Gray(200)
	cursorColor      = ColorWhite
)

const (
	pointRadius  = 1.5
	cursorRadius = 5
)

// Frame is the per-tick input to the renderer.
type Frame struct {
	Pointer Vec2
	NowMs   float64
}

// frameStats holds per-frame draw metrics. Only logged in debug mode.
type frameStats struct {
	points       int
	trailSamples int
	active       bool
	drawTime     time.Duration
}

// Renderer draws one frame of a Session onto a Surface.
type Renderer struct {
	// HideOverlay suppresses the instruction overlay.
	HideOverlay bool

	stats frameStats
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders s for frame f. While the interactive region is in view the
// trail, displaced points, overlay, banner and cursor are drawn over a dark
// background. Otherwise only a light background is drawn and the trail is
// not advanced. banner may be nil.
func (r *Renderer) Draw(dst Surface, s *Session, banner *EffectBanner, f Frame) {
	start := time.Now()
	r.stats = frameStats{active: s.Viewport.Active()}
	if !r.stats.active {
		dst.Fill(idleBackground)
		r.stats.drawTime = time.Since(start)
		return
	}

	dst.Fill(activeBackground)

	trail := s.Trail()
	trail.Tick(f.Pointer.X, f.Pointer.Y, f.NowMs)
	trail.Render(dst, f.NowMs)
	r.stats.trailSamples = trail.Len()

	r.drawPoints(dst, s, f)

	if !r.HideOverlay {
		dst.DrawText(OverlayText(s.Effect.Effect().Name, s.Text.MaxLength),
			overlayMargin, overlayMargin, OverlayTextSize, overlayColor, TextAlignLeft)
	}
	if banner != nil {
		banner.Render(dst)
	}
	dst.FillCircle(f.Pointer.X, f.Pointer.Y, cursorRadius, cursorColor)

	r.stats.drawTime = time.Since(start)
}

// drawPoints evaluates the active effect for every point in the cloud.
func (r *Renderer) drawPoints(dst Surface, s *Session, f Frame) {
	cloud := s.Cloud()
	w, h := s.Size()
	in := FieldInput{
		Pointer: f.Pointer,
		Center:  Vec2{float64(w) / 2, float64(h) / 2},
		Size:    Vec2{float64(w), float64(h)},
		Time:    f.NowMs / 1000,
		Noise:   s.Noise(),
	}
	effect := s.Effect.Effect()
	c := textPointColor
	if cloud.Placeholder {
		c = placeholderColor
	}
	for _, p := range cloud.Points {
		in.Point = p
		q := effect.Displace(in)
		dst.FillCircle(q.X, q.Y, pointRadius, c)
	}
	r.stats.points = len(cloud.Points)
}
