package glyphfield

type recordedCircle struct {
	x, y, r float64
	c       Color
}

type recordedText struct {
	s     string
	x, y  float64
	size  float64
	c     Color
	align TextAlign
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	w, h    int
	fills   []Color
	circles []recordedCircle
	texts   []recordedText
	ops     []string
}

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }

func (r *recordingSurface) Fill(c Color) {
	r.fills = append(r.fills, c)
	r.ops = append(r.ops, "fill")
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, c Color) {
	r.circles = append(r.circles, recordedCircle{cx, cy, rad, c})
	r.ops = append(r.ops, "circle")
}

func (r *recordingSurface) DrawText(s string, x, y, size float64, c Color, align TextAlign) {
	r.texts = append(r.texts, recordedText{s, x, y, size, c, align})
	r.ops = append(r.ops, "text")
}
