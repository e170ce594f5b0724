package glyphfield

import (
	"strings"
	"testing"
)

func TestRendererIdleFrame(t *testing.T) {
	s := newTestSession(t)
	s.Viewport.Scroll(400)
	rec := &recordingSurface{w: 800, h: 600}

	NewRenderer().Draw(rec, s, nil, Frame{Pointer: Vec2{10, 10}, NowMs: 16})

	if len(rec.ops) != 1 || rec.fills[0] != idleBackground {
		t.Errorf("idle frame ops = %v, want a single light fill", rec.ops)
	}
	if s.Trail().Len() != 0 {
		t.Error("idle frames must not advance the trail")
	}
}

func TestRendererActiveFrame(t *testing.T) {
	s := newTestSession(t)
	r := NewRenderer()
	rec := &recordingSurface{w: 800, h: 600}
	pointer := Vec2{-1000, -1000} // far away: Repulsion leaves points in place

	r.Draw(rec, s, nil, Frame{Pointer: pointer, NowMs: 0})

	if rec.ops[0] != "fill" || rec.fills[0] != activeBackground {
		t.Fatalf("first op = %v (%v), want dark fill", rec.ops[0], rec.fills)
	}
	if s.Trail().Len() != 1 {
		t.Errorf("trail Len = %d, want 1", s.Trail().Len())
	}

	trailRings := int(s.Trail().Diameter / 2)
	cloud := s.Cloud()
	wantCircles := trailRings + cloud.Len() + 1
	if len(rec.circles) != wantCircles {
		t.Fatalf("drew %d circles, want %d", len(rec.circles), wantCircles)
	}

	dots := rec.circles[trailRings : trailRings+cloud.Len()]
	for i, d := range dots {
		p := cloud.Points[i]
		if d.x != p.X || d.y != p.Y {
			t.Fatalf("dot %d at (%v, %v), want (%v, %v)", i, d.x, d.y, p.X, p.Y)
		}
		if d.r != pointRadius || d.c != placeholderColor {
			t.Fatalf("dot %d = r %v color %v, want placeholder dot", i, d.r, d.c)
		}
	}

	cursor := rec.circles[len(rec.circles)-1]
	if cursor.x != pointer.X || cursor.y != pointer.Y || cursor.r != cursorRadius || cursor.c != cursorColor {
		t.Errorf("cursor = %+v", cursor)
	}
	if rec.ops[len(rec.ops)-1] != "circle" {
		t.Error("cursor should be drawn last")
	}

	if len(rec.texts) != 1 {
		t.Fatalf("drew %d texts, want overlay only", len(rec.texts))
	}
	ov := rec.texts[0]
	if !strings.HasPrefix(ov.s, "Effect: Repulsion\n") || ov.x != overlayMargin || ov.y != overlayMargin || ov.c != overlayColor {
		t.Errorf("overlay = %+v", ov)
	}
	if r.stats.points != cloud.Len() || !r.stats.active {
		t.Errorf("stats = %+v", r.stats)
	}
}

func TestRendererTypedTextColor(t *testing.T) {
	s := newTestSession(t)
	s.Text.Content = "Go"
	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	r := NewRenderer()
	r.HideOverlay = true
	rec := &recordingSurface{w: 800, h: 600}
	r.Draw(rec, s, nil, Frame{Pointer: Vec2{-1000, -1000}})

	trailRings := int(s.Trail().Diameter / 2)
	if got := rec.circles[trailRings].c; got != textPointColor {
		t.Errorf("dot color = %v, want %v", got, textPointColor)
	}
	if len(rec.texts) != 0 {
		t.Error("overlay should be hidden")
	}
}

func TestRendererAppliesSpiral(t *testing.T) {
	s := newTestSession(t)
	s.Effect.EffectIndex = EffectSpiral
	rec := &recordingSurface{w: 800, h: 600}
	// Pointer at H/2: Spiral strength is zero.
	NewRenderer().Draw(rec, s, nil, Frame{Pointer: Vec2{5, 300}})

	trailRings := int(s.Trail().Diameter / 2)
	for i, p := range s.Cloud().Points {
		d := rec.circles[trailRings+i]
		if !approxEqual(d.x, p.X, 1e-9) || !approxEqual(d.y, p.Y, 1e-9) {
			t.Fatalf("dot %d moved to (%v, %v) from %v", i, d.x, d.y, p)
		}
	}
}

func TestRendererBanner(t *testing.T) {
	s := newTestSession(t)
	banner := NewEffectBanner(1)
	banner.Show("Wavy")
	rec := &recordingSurface{w: 800, h: 600}
	NewRenderer().Draw(rec, s, banner, Frame{Pointer: Vec2{-1000, -1000}})

	if len(rec.texts) != 2 {
		t.Fatalf("drew %d texts, want overlay and banner", len(rec.texts))
	}
	b := rec.texts[1]
	if b.s != "Wavy" || b.align != TextAlignCenter || b.x != 400 || b.y != 600-bannerBottomOffset {
		t.Errorf("banner = %+v", b)
	}
}
