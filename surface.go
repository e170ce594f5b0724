package glyphfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the raster target the renderer draws on.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Fill paints the whole surface with c.
	Fill(c Color)
	// FillCircle draws a filled circle of radius r centered at (cx, cy),
	// alpha-blended over existing content.
	FillCircle(cx, cy, r float64, c Color)
	// DrawText draws s with its first line's top at y. x is the left edge,
	// center or right edge according to align. Lines are split on '\n'.
	DrawText(s string, x, y, size float64, c Color, align TextAlign)
}

// ebitenSurface draws onto an Ebitengine image.
type ebitenSurface struct {
	dst  *ebiten.Image
	font *OverlayFont
}

// NewEbitenSurface wraps dst. Text is drawn with font; a nil font disables
// DrawText.
func NewEbitenSurface(dst *ebiten.Image, font *OverlayFont) Surface {
	return &ebitenSurface{dst: dst, font: font}
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Fill(c Color) {
	s.dst.Fill(c.toRGBA())
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c Color) {
	if c.A <= 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.toRGBA(), true)
}

func (s *ebitenSurface) DrawText(str string, x, y, size float64, c Color, align TextAlign) {
	if s.font == nil || str == "" || c.A <= 0 {
		return
	}
	face := s.font.Face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = s.font.LineHeight(size)
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.dst, str, face, op)
}
