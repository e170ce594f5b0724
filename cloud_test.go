package glyphfield

import (
	"errors"
	"testing"
)

func testRequest(text string) CloudRequest {
	return CloudRequest{
		Text:        text,
		Placeholder: DefaultPlaceholder,
		FontSize:    120,
		Density:     DefaultDensity,
		Width:       1280,
		Height:      720,
	}
}

func TestClampDensity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.1},
		{0, MinDensity},
		{-1, MinDensity},
		{0.05, 0.05},
		{0.2, 0.2},
		{5, MaxDensity},
	}
	for _, tt := range tests {
		if got := ClampDensity(tt.in); got != tt.want {
			t.Errorf("ClampDensity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGenerateCloudCentered(t *testing.T) {
	f := mustDefaultFont(t)
	req := testRequest("Hi")
	cloud, err := GenerateCloud(f, req)
	if err != nil {
		t.Fatal(err)
	}
	if cloud.Len() == 0 {
		t.Fatal("empty cloud")
	}
	cx := cloud.Bounds.X + cloud.Bounds.Width/2
	cy := cloud.Bounds.Y + cloud.Bounds.Height/2
	if !approxEqual(cx, 640, 1e-6) || !approxEqual(cy, 360, 1e-6) {
		t.Errorf("bounds center = (%v, %v), want (640, 360)", cx, cy)
	}
	for i, p := range cloud.Points {
		if !cloud.Bounds.Contains(p.X, p.Y) {
			// Samples lie on the outline, so they are within the bounds
			// up to rounding.
			grown := Rect{cloud.Bounds.X - 1e-6, cloud.Bounds.Y - 1e-6, cloud.Bounds.Width + 2e-6, cloud.Bounds.Height + 2e-6}
			if !grown.Contains(p.X, p.Y) {
				t.Fatalf("point %d %v outside bounds %v", i, p, cloud.Bounds)
			}
		}
	}
}

func TestGenerateCloudIdempotent(t *testing.T) {
	f := mustDefaultFont(t)
	req := testRequest("AB")
	a, err := GenerateCloud(f, req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateCloud(f, req)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
	if !a.Matches(req) {
		t.Error("cloud does not match its own request")
	}
}

func TestGenerateCloudPlaceholder(t *testing.T) {
	f := mustDefaultFont(t)
	cloud, err := GenerateCloud(f, testRequest(""))
	if err != nil {
		t.Fatal(err)
	}
	if !cloud.Placeholder || cloud.Text != DefaultPlaceholder {
		t.Errorf("cloud = {Text: %q, Placeholder: %v}, want placeholder", cloud.Text, cloud.Placeholder)
	}
	if cloud.Len() == 0 {
		t.Error("placeholder cloud is empty")
	}
}

func TestGenerateCloudRecordsTuple(t *testing.T) {
	f := mustDefaultFont(t)
	req := testRequest("x")
	req.Density = 3 // clamped
	cloud, err := GenerateCloud(f, req)
	if err != nil {
		t.Fatal(err)
	}
	if cloud.Density != MaxDensity {
		t.Errorf("Density = %v, want %v", cloud.Density, MaxDensity)
	}
	if !cloud.Matches(req) {
		t.Error("cloud should match a request whose density clamps to the same value")
	}
	other := req
	other.Width = 800
	if cloud.Matches(other) {
		t.Error("cloud should not match a different canvas size")
	}
}

func TestGenerateCloudShapingError(t *testing.T) {
	f := mustDefaultFont(t)
	_, err := GenerateCloud(f, testRequest("中"))
	var shapeErr *ShapingError
	if !errors.As(err, &shapeErr) {
		t.Errorf("error = %v, want *ShapingError", err)
	}
}
