package glyphfield

import "testing"

func TestNewNoiseKinds(t *testing.T) {
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex, ""} {
		n, err := NewNoise(kind, 42)
		if err != nil {
			t.Fatalf("NewNoise(%q): %v", kind, err)
		}
		for i := 0; i < 200; i++ {
			x := float64(i) * 0.173
			y := float64(i) * 0.291
			v := n.Eval2(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("NewNoise(%q).Eval2(%v, %v) = %v, want in [0, 1]", kind, x, y, v)
			}
			if again := n.Eval2(x, y); again != v {
				t.Fatalf("NewNoise(%q) not deterministic at (%v, %v)", kind, x, y)
			}
		}
	}
}

func TestNewNoiseSameSeed(t *testing.T) {
	a, _ := NewNoise(NoiseSimplex, 9)
	b, _ := NewNoise(NoiseSimplex, 9)
	if a.Eval2(1.5, 2.5) != b.Eval2(1.5, 2.5) {
		t.Error("same seed should give the same field")
	}
}

func TestNewNoiseUnknown(t *testing.T) {
	if _, err := NewNoise("worley", 1); err == nil {
		t.Error("expected error for unknown noise kind")
	}
}
