package glyphfield

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Sentinel errors for font loading.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyphfield: empty font data")

	// ErrNoFont is returned when an operation needs a font and none was given.
	ErrNoFont = errors.New("glyphfield: no font")
)

// ShapingError reports text the font cannot turn into outlines, typically a
// rune with no glyph. Callers fall back to placeholder text.
type ShapingError struct {
	Text string
	Rune rune
	Err  error
}

func (e *ShapingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glyphfield: cannot shape %q: rune %q: %v", e.Text, e.Rune, e.Err)
	}
	return fmt.Sprintf("glyphfield: cannot shape %q: no glyph for rune %q", e.Text, e.Rune)
}

func (e *ShapingError) Unwrap() error { return e.Err }

// Font turns strings into glyph outlines. It is backed by an sfnt font and
// keeps a scratch buffer, so a Font must not be used from multiple
// goroutines at once.
type Font struct {
	sf   *sfnt.Font
	buf  sfnt.Buffer
	name string
}

// LoadFont parses TrueType or OpenType data.
func LoadFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyphfield: failed to parse font data: %w", err)
	}
	f := &Font{sf: sf}
	if name, err := sf.Name(&f.buf, sfnt.NameIDFull); err == nil {
		f.name = name
	}
	return f, nil
}

// LoadFontFile reads and parses the font at path.
func LoadFontFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyphfield: read font %s: %w", path, err)
	}
	f, err := LoadFont(data)
	if err != nil {
		return nil, fmt.Errorf("glyphfield: load font %s: %w", path, err)
	}
	return f, nil
}

// DefaultFont returns the embedded Go Regular face.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// Name returns the font's full name, or "" if the font does not carry one.
func (f *Font) Name() string {
	return f.name
}

// MeasureBounds returns the tight outline bounds of text at sizePx, relative
// to a pen origin at (0, 0) on the baseline. Y grows downward, so glyph
// parts above the baseline have negative Y.
func (f *Font) MeasureBounds(text string, sizePx float64) (Rect, error) {
	cs, err := f.contours(text, sizePx, Vec2{})
	if err != nil {
		return Rect{}, err
	}
	return contourBounds(cs), nil
}

// ShapeToPoints returns points sampled along the glyph outlines of text,
// with the pen origin at (x, y) on the baseline. density is clamped to
// [MinDensity, MaxDensity]; smaller values space the points more tightly.
func (f *Font) ShapeToPoints(text string, x, y, sizePx, density float64) ([]Vec2, error) {
	cs, err := f.contours(text, sizePx, Vec2{x, y})
	if err != nil {
		return nil, err
	}
	return sampleContours(cs, densitySpacing(density), nil), nil
}

// contours lays text out on a single line starting at origin and returns
// the flattened outline contours of every glyph.
func (f *Font) contours(text string, sizePx float64, origin Vec2) ([]contour, error) {
	if f == nil || f.sf == nil {
		return nil, ErrNoFont
	}
	ppem := fixed.Int26_6(sizePx * 64)

	var b outlineBuilder
	var prev sfnt.GlyphIndex
	hasPrev := false
	penX := origin.X

	for _, r := range text {
		gid, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil {
			return nil, &ShapingError{Text: text, Rune: r, Err: err}
		}
		if gid == 0 {
			return nil, &ShapingError{Text: text, Rune: r}
		}

		if hasPrev {
			// Fonts without a kern table report ErrNotFound; treat as no kerning.
			if k, err := f.sf.Kern(&f.buf, prev, gid, ppem, font.HintingNone); err == nil {
				penX += fixedToFloat(k)
			}
		}

		segs, err := f.sf.LoadGlyph(&f.buf, gid, ppem, nil)
		if err != nil {
			return nil, &ShapingError{Text: text, Rune: r, Err: err}
		}
		// segs aliases f.buf and is only valid until the next sfnt call.
		at := func(p fixed.Point26_6) Vec2 {
			return Vec2{penX + fixedToFloat(p.X), origin.Y + fixedToFloat(p.Y)}
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				b.moveTo(at(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				b.lineTo(at(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				b.quadTo(at(seg.Args[0]), at(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				b.cubeTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
			}
		}
		b.closePath()

		adv, err := f.sf.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, &ShapingError{Text: text, Rune: r, Err: err}
		}
		penX += fixedToFloat(adv)
		prev = gid
		hasPrev = true
	}
	return b.finish(), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
