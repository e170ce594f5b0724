package glyphfield

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay layout.
const (
	OverlayTextSize = 16
	overlayMargin   = 10

	bannerTextSize     = 28
	bannerBottomOffset = 60
	// DefaultBannerSeconds is how long the effect name lingers after cycling.
	DefaultBannerSeconds = 1.2
)

// overlayHints follows the effect name in the top-left overlay.
const overlayHints = "\nPress ENTER to change effect" +
	"\n\nUp/Down arrows adjust density" +
	"\nType (max %d letters) / BACKSPACE to delete"

// OverlayText returns the fixed instruction overlay for the active effect.
func OverlayText(effectName string, maxLength int) string {
	return "Effect: " + effectName + fmt.Sprintf(overlayHints, maxLength)
}

// OverlayFont wraps Ebitengine's text/v2 for the overlay, which is rendered
// as regular text rather than as a point cloud.
type OverlayFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadOverlayFont loads a TrueType font for overlay text.
func LoadOverlayFont(ttfData []byte) (*OverlayFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("glyphfield: failed to parse overlay font: %w", err)
	}
	return &OverlayFont{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultOverlayFont loads the embedded Go Regular face.
func DefaultOverlayFont() (*OverlayFont, error) {
	return LoadOverlayFont(goregular.TTF)
}

// Face returns the face for the given pixel size, caching one per size.
func (f *OverlayFont) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// LineHeight returns the distance between baselines at size.
func (f *OverlayFont) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureString returns the width and height of s at size.
func (f *OverlayFont) MeasureString(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}

// EffectBanner briefly shows the active effect name after it changes. The
// banner starts opaque and fades out along an ease-in curve.
type EffectBanner struct {
	Duration float32
	name     string
	tween    *gween.Tween
	alpha    float64
}

// NewEffectBanner creates a hidden banner. A non-positive duration selects
// DefaultBannerSeconds.
func NewEffectBanner(seconds float64) *EffectBanner {
	if seconds <= 0 {
		seconds = DefaultBannerSeconds
	}
	return &EffectBanner{Duration: float32(seconds)}
}

// Show restarts the fade for name.
func (b *EffectBanner) Show(name string) {
	b.name = name
	b.alpha = 1
	b.tween = gween.New(1, 0, b.Duration, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (b *EffectBanner) Update(dt float32) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(dt)
	b.alpha = float64(v)
	if done {
		b.alpha = 0
		b.tween = nil
	}
}

// Visible reports whether the banner currently draws anything.
func (b *EffectBanner) Visible() bool {
	return b.alpha > 0
}

// Alpha returns the current banner opacity in [0, 1].
func (b *EffectBanner) Alpha() float64 {
	return b.alpha
}

// Name returns the effect name last passed to Show.
func (b *EffectBanner) Name() string {
	return b.name
}

// Render draws the banner centered horizontally near the bottom of dst.
func (b *EffectBanner) Render(dst Surface) {
	if !b.Visible() {
		return
	}
	w, h := dst.Size()
	c := ColorWhite
	c.A = b.alpha
	dst.DrawText(b.name, float64(w)/2, float64(h)-bannerBottomOffset, bannerTextSize, c, TextAlignCenter)
}
