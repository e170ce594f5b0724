package glyphfield

import "math"

// EffectKind distinguishes effects that offset the sampled point from those
// that compute a new position outright.
type EffectKind uint8

const (
	EffectOffset  EffectKind = iota // field value is added to the sampled point
	EffectReplace                   // field value replaces the sampled point
)

// FieldInput carries everything an effect may read for one point in one frame.
// Time is elapsed seconds; Center and Size describe the canvas.
type FieldInput struct {
	Point   Vec2
	Pointer Vec2
	Center  Vec2
	Size    Vec2
	Time    float64
	Noise   NoiseSource
}

// Effect is a named, stateless displacement field.
type Effect struct {
	Name  string
	Kind  EffectKind
	field func(in FieldInput) Vec2
}

// Displace returns the position at which in.Point is drawn this frame.
func (e Effect) Displace(in FieldInput) Vec2 {
	v := e.field(in)
	if e.Kind == EffectReplace {
		return v
	}
	return in.Point.Add(v)
}

// Offset returns the displacement of in.Point, i.e. Displace(in) - in.Point.
func (e Effect) Offset(in FieldInput) Vec2 {
	return e.Displace(in).Sub(in.Point)
}

// Effect indices into Effects.
const (
	EffectRepulsion = iota
	EffectWavy
	EffectPerlinNoise
	EffectRipple
	EffectSpiral
	EffectMagneticPull
	EffectDistortionRipple
	EffectSwirl
	EffectBubbleExpansion
	NumEffects
)

// Effects is the ordered effect registry. Cycling wraps modulo its length.
var Effects = [NumEffects]Effect{
	EffectRepulsion:        {Name: "Repulsion", field: repulsion},
	EffectWavy:             {Name: "Wavy", field: wavy},
	EffectPerlinNoise:      {Name: "Perlin Noise", field: perlinField},
	EffectRipple:           {Name: "Ripple", field: ripple},
	EffectSpiral:           {Name: "Spiral", Kind: EffectReplace, field: spiral},
	EffectMagneticPull:     {Name: "Magnetic Pull", field: magneticPull},
	EffectDistortionRipple: {Name: "Distortion Ripple", field: distortionRipple},
	EffectSwirl:            {Name: "Swirl", field: swirl},
	EffectBubbleExpansion:  {Name: "Bubble Expansion", field: bubbleExpansion},
}

// EffectAt returns the effect at index i, wrapping i into [0, NumEffects).
func EffectAt(i int) Effect {
	return Effects[wrapEffectIndex(i)]
}

func wrapEffectIndex(i int) int {
	i %= NumEffects
	if i < 0 {
		i += NumEffects
	}
	return i
}

// polar returns the distance from pointer to point and the angle of
// point - pointer. atan2(0, 0) is 0, so coincident points push along +X.
func polar(in FieldInput) (d, angle float64) {
	dx := in.Point.X - in.Pointer.X
	dy := in.Point.Y - in.Pointer.Y
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// radial returns a vector of length mag along angle.
func radial(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

func repulsion(in FieldInput) Vec2 {
	d, angle := polar(in)
	if d >= 100 {
		return Vec2{}
	}
	return radial(angle, mapRange(d, 0, 100, 50, 0))
}

func wavy(in FieldInput) Vec2 {
	wave := math.Sin(in.Time*2+in.Point.X*0.05+in.Point.Y*0.05) * 10
	return Vec2{
		X: mapRange(in.Pointer.X, 0, in.Size.X, -20, 20) + wave,
		Y: mapRange(in.Pointer.Y, 0, in.Size.Y, -20, 20) + wave,
	}
}

func perlinField(in FieldInput) Vec2 {
	if in.Noise == nil {
		return Vec2{}
	}
	n := in.Noise.Eval2(in.Point.X*0.01+in.Time, in.Point.Y*0.01+in.Time)
	return Vec2{
		X: mapRange(n, 0, 1, -in.Pointer.X*0.05, in.Pointer.X*0.05),
		Y: mapRange(n, 0, 1, -in.Pointer.Y*0.05, in.Pointer.Y*0.05),
	}
}

func ripple(in FieldInput) Vec2 {
	d, angle := polar(in)
	return radial(angle, math.Sin(in.Time*10-d*0.1)*10)
}

func spiral(in FieldInput) Vec2 {
	strength := mapRange(in.Pointer.Y, 0, in.Size.Y, -0.1, 0.1)
	theta := strength * in.Point.Dist(in.Center)
	dx := in.Point.X - in.Center.X
	dy := in.Point.Y - in.Center.Y
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: in.Center.X + dx*cos - dy*sin,
		Y: in.Center.Y + dx*sin + dy*cos,
	}
}

func magneticPull(in FieldInput) Vec2 {
	d, _ := polar(in)
	if d >= 150 {
		return Vec2{}
	}
	return in.Pointer.Sub(in.Point).Scale(mapRange(d, 0, 150, 0.8, 0))
}

// distortionRipple leaves its amplitude unclamped: past d=200 it goes negative.
func distortionRipple(in FieldInput) Vec2 {
	d, angle := polar(in)
	return radial(angle, math.Sin(d/15-in.Time*5)*mapRange(d, 0, 200, 15, 0))
}

func swirl(in FieldInput) Vec2 {
	d, angle := polar(in)
	if d >= 200 {
		return Vec2{}
	}
	rotated := radial(angle+mapRange(d, 0, 200, math.Pi/2, 0), d)
	return rotated.Sub(in.Point.Sub(in.Pointer))
}

func bubbleExpansion(in FieldInput) Vec2 {
	d, angle := polar(in)
	if d >= 150 {
		return Vec2{}
	}
	return radial(angle, mapRange(d, 0, 150, 30, 0))
}
