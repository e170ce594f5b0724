package glyphfield

import (
	"errors"
	"time"
	"unicode/utf8"
)

// DefaultMaxTextLength is the rune limit for typed text.
const DefaultMaxTextLength = 10

// DefaultPlaceholder is shaped whenever no text has been typed.
const DefaultPlaceholder = "Type Anything"

// DefaultFontSize is the point cloud text size in pixels.
const DefaultFontSize = 250

// visibleFraction is the share of the viewport height the page may scroll
// before the interactive region counts as out of view.
const visibleFraction = 0.5

// TextState is the typed text, bounded to MaxLength runes.
type TextState struct {
	Content   string
	MaxLength int
}

// Len returns the number of runes in Content.
func (t *TextState) Len() int {
	return utf8.RuneCountInString(t.Content)
}

// Append adds r if the text is below MaxLength. It reports whether the
// content changed.
func (t *TextState) Append(r rune) bool {
	if t.Len() >= t.MaxLength {
		return false
	}
	t.Content += string(r)
	return true
}

// Delete removes the last rune. Deleting from empty text is a no-op.
func (t *TextState) Delete() bool {
	if t.Content == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(t.Content)
	t.Content = t.Content[:len(t.Content)-size]
	return true
}

// EffectState selects the active effect and the sampling density.
type EffectState struct {
	EffectIndex int
	Density     float64
}

// Effect returns the active effect.
func (e *EffectState) Effect() Effect {
	return EffectAt(e.EffectIndex)
}

// Cycle advances to the next effect, wrapping after the last one.
func (e *EffectState) Cycle() {
	e.EffectIndex = wrapEffectIndex(e.EffectIndex + 1)
}

// AdjustDensity adds delta to Density, saturating at the density bounds.
// It reports whether Density changed.
func (e *EffectState) AdjustDensity(delta float64) bool {
	next := ClampDensity(e.Density + delta)
	if next == e.Density {
		return false
	}
	e.Density = next
	return true
}

// Viewport is the virtual page scroll. The page is two viewports tall and
// only its top half hosts the interactive text.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Active reports whether the interactive region is in view.
func (v *Viewport) Active() bool {
	return v.ScrollY < v.Height*visibleFraction
}

// Scroll moves the page by dy pixels, keeping it within [0, Height].
func (v *Viewport) Scroll(dy float64) {
	v.ScrollY = clamp(v.ScrollY+dy, 0, v.Height)
}

// SessionConfig holds the initial session values.
type SessionConfig struct {
	Placeholder   string
	InitialText   string
	MaxTextLength int
	FontSize      float64
	Density       float64
	EffectIndex   int
	Width, Height int
	Noise         NoiseSource
	Trail         *Trail
}

// Session owns all mutable interactive state: text, effect selection,
// scroll, the current point cloud and the cursor trail. It is used from a
// single goroutine; input handlers mutate it and the renderer reads it.
type Session struct {
	Text        TextState
	Effect      EffectState
	Viewport    Viewport
	Placeholder string
	FontSize    float64

	font   *Font
	noise  NoiseSource
	trail  *Trail
	cloud  PointCloud
	width  int
	height int
}

// NewSession creates a session and builds its first point cloud. Text the
// font cannot shape falls back to the placeholder; an error is returned only
// if the placeholder itself cannot be shaped.
func NewSession(f *Font, cfg SessionConfig) (*Session, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultFontSize
	}
	if cfg.Density == 0 {
		cfg.Density = DefaultDensity
	}
	if cfg.Trail == nil {
		cfg.Trail = NewTrail(DefaultTrailLifetimeMs, DefaultTrailDiameter)
	}

	s := &Session{
		Text:        TextState{MaxLength: cfg.MaxTextLength},
		Effect:      EffectState{EffectIndex: wrapEffectIndex(cfg.EffectIndex), Density: ClampDensity(cfg.Density)},
		Viewport:    Viewport{Height: float64(cfg.Height)},
		Placeholder: cfg.Placeholder,
		FontSize:    cfg.FontSize,
		font:        f,
		noise:       cfg.Noise,
		trail:       cfg.Trail,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	for _, r := range cfg.InitialText {
		if !s.Text.Append(r) {
			break
		}
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Cloud returns the current point cloud. It is replaced whole on every
// regeneration and must not be modified.
func (s *Session) Cloud() *PointCloud {
	return &s.cloud
}

// Trail returns the cursor trail.
func (s *Session) Trail() *Trail {
	return s.trail
}

// Noise returns the coherent-noise source used by the Perlin Noise effect.
func (s *Session) Noise() NoiseSource {
	return s.noise
}

// Size returns the canvas size the session lays out for.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Resize records a new canvas size and regenerates the cloud. Repeating the
// current size does nothing.
func (s *Session) Resize(width, height int) error {
	if width == s.width && height == s.height {
		return nil
	}
	s.width, s.height = width, height
	s.Viewport.Height = float64(height)
	s.Viewport.Scroll(0)
	return s.Regenerate()
}

// request returns the generation tuple for the current state.
func (s *Session) request() CloudRequest {
	return CloudRequest{
		Text:        s.Text.Content,
		Placeholder: s.Placeholder,
		FontSize:    s.FontSize,
		Density:     s.Effect.Density,
		Width:       s.width,
		Height:      s.height,
	}
}

// Regenerate rebuilds the point cloud from the current text, density and
// canvas size and swaps it in. If the text cannot be shaped the placeholder
// is used instead. If even the placeholder fails, the cloud becomes empty
// (but still records the current tuple) and the error is returned.
func (s *Session) Regenerate() error {
	req := s.request()
	start := time.Now()

	cloud, err := GenerateCloud(s.font, req)
	var shapeErr *ShapingError
	if err != nil && errors.As(err, &shapeErr) && req.Text != "" {
		Logger().Warn("text cannot be shaped, showing placeholder",
			"text", req.Text, "rune", string(shapeErr.Rune))
		fallback := req
		fallback.Text = ""
		cloud, err = GenerateCloud(s.font, fallback)
	}
	if err != nil {
		s.cloud = PointCloud{
			Text:     req.Placeholder,
			FontSize: req.FontSize,
			Density:  ClampDensity(req.Density),
			Width:    req.Width,
			Height:   req.Height,
		}
		return err
	}

	s.cloud = cloud
	Logger().Debug("point cloud regenerated",
		"text", cloud.Text,
		"placeholder", cloud.Placeholder,
		"points", cloud.Len(),
		"density", cloud.Density,
		"elapsed", time.Since(start))
	return nil
}
