package glyphfield

import "math"

// contour is a closed polyline. The closing edge from the last point back to
// the first is implicit.
type contour []Vec2

// defaultFlatness is the maximum distance error allowed when flattening curves.
// Smaller values produce smoother curves but more vertices.
const defaultFlatness = 0.25

// maxFlattenDepth bounds curve subdivision so degenerate control points
// cannot recurse forever.
const maxFlattenDepth = 16

// outlineBuilder accumulates glyph path operations into flattened contours.
type outlineBuilder struct {
	contours []contour
	cur      contour
}

func (b *outlineBuilder) moveTo(p Vec2) {
	b.closePath()
	b.cur = contour{p}
}

func (b *outlineBuilder) lineTo(p Vec2) {
	if len(b.cur) == 0 {
		b.cur = append(b.cur, p)
		return
	}
	if b.cur[len(b.cur)-1] != p {
		b.cur = append(b.cur, p)
	}
}

func (b *outlineBuilder) quadTo(c, p Vec2) {
	start := b.last()
	b.cur = flattenQuadratic(b.cur, start, c, p, defaultFlatness, 0)
}

func (b *outlineBuilder) cubeTo(c1, c2, p Vec2) {
	start := b.last()
	b.cur = flattenCubic(b.cur, start, c1, c2, p, defaultFlatness, 0)
}

// closePath finishes the current contour. A trailing point equal to the
// contour start is dropped since the closing edge is implicit.
func (b *outlineBuilder) closePath() {
	if len(b.cur) > 1 && b.cur[len(b.cur)-1] == b.cur[0] {
		b.cur = b.cur[:len(b.cur)-1]
	}
	if len(b.cur) > 1 {
		b.contours = append(b.contours, b.cur)
	}
	b.cur = nil
}

func (b *outlineBuilder) last() Vec2 {
	if len(b.cur) == 0 {
		return Vec2{}
	}
	return b.cur[len(b.cur)-1]
}

// finish closes any open contour and returns all contours.
func (b *outlineBuilder) finish() []contour {
	b.closePath()
	return b.contours
}

// flattenQuadratic appends a polyline approximation of the quadratic Bezier
// p0-p1-p2 to dst, excluding p0. Uses de Casteljau subdivision.
func flattenQuadratic(dst contour, p0, p1, p2 Vec2, flatness float64, depth int) contour {
	if depth >= maxFlattenDepth || pointToLineDistance(p1, p0, p2) <= flatness {
		return append(dst, p2)
	}
	q0 := midpoint(p0, p1)
	q1 := midpoint(p1, p2)
	r := midpoint(q0, q1)
	dst = flattenQuadratic(dst, p0, q0, r, flatness, depth+1)
	return flattenQuadratic(dst, r, q1, p2, flatness, depth+1)
}

// flattenCubic appends a polyline approximation of the cubic Bezier
// p0-p1-p2-p3 to dst, excluding p0.
func flattenCubic(dst contour, p0, p1, p2, p3 Vec2, flatness float64, depth int) contour {
	flat := math.Max(pointToLineDistance(p1, p0, p3), pointToLineDistance(p2, p0, p3)) <= flatness
	if depth >= maxFlattenDepth || flat {
		return append(dst, p3)
	}
	q0 := midpoint(p0, p1)
	q1 := midpoint(p1, p2)
	q2 := midpoint(p2, p3)
	r0 := midpoint(q0, q1)
	r1 := midpoint(q1, q2)
	s := midpoint(r0, r1)
	dst = flattenCubic(dst, p0, q0, r0, s, flatness, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, flatness, depth+1)
}

func midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// pointToLineDistance is the perpendicular distance from p to the line a-b,
// or the distance to a when a and b coincide.
func pointToLineDistance(p, a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return p.Dist(a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / l
}

// length returns the perimeter of the closed contour.
func (c contour) length() float64 {
	var total float64
	for i := range c {
		total += c[i].Dist(c[(i+1)%len(c)])
	}
	return total
}

// bounds returns the axis-aligned bounds of all contour vertices.
func contourBounds(cs []contour) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range cs {
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// sampleContours walks every closed contour and emits a point each spacing
// pixels of arc length, starting at the contour's first vertex.
func sampleContours(cs []contour, spacing float64, dst []Vec2) []Vec2 {
	if spacing <= 0 {
		return dst
	}
	for _, c := range cs {
		total := c.length()
		if total == 0 {
			continue
		}
		var walked float64 // arc length at the start of the current edge
		next := 0.0        // arc length of the next sample
		for i := range c {
			a := c[i]
			b := c[(i+1)%len(c)]
			edge := a.Dist(b)
			for next < walked+edge && next < total {
				t := (next - walked) / edge
				dst = append(dst, Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)})
				next += spacing
			}
			walked += edge
		}
	}
	return dst
}
