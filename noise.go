package glyphfield

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// NoiseSource is a continuous, deterministic 2D coherent-noise function.
// Eval2 returns values in [0, 1] and always returns the same value for the
// same coordinates.
type NoiseSource interface {
	Eval2(x, y float64) float64
}

// NoiseKind selects a NoiseSource implementation.
type NoiseKind string

const (
	NoisePerlin  NoiseKind = "perlin"
	NoiseSimplex NoiseKind = "simplex"
)

// Perlin parameters: persistence-like alpha, frequency multiplier beta and
// octave count n, as accepted by go-perlin.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// perlinNoise adapts go-perlin, whose output is roughly [-1, 1], to [0, 1].
type perlinNoise struct {
	p *perlin.Perlin
}

func (n perlinNoise) Eval2(x, y float64) float64 {
	return clamp01((n.p.Noise2D(x, y) + 1) / 2)
}

// simplexNoise wraps an already-normalized OpenSimplex generator.
type simplexNoise struct {
	n opensimplex.Noise
}

func (n simplexNoise) Eval2(x, y float64) float64 {
	return clamp01(n.n.Eval2(x, y))
}

// NewNoise returns the NoiseSource of the given kind seeded with seed.
// An empty kind selects Perlin noise.
func NewNoise(kind NoiseKind, seed int64) (NoiseSource, error) {
	switch kind {
	case NoisePerlin, "":
		return perlinNoise{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}, nil
	case NoiseSimplex:
		return simplexNoise{n: opensimplex.NewNormalized(seed)}, nil
	default:
		return nil, fmt.Errorf("glyphfield: unknown noise kind %q", kind)
	}
}
