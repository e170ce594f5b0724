package glyphfield

import "testing"

func TestInjectQueue(t *testing.T) {
	s := newTestSession(t)
	c := NewController()

	c.InjectText("hi")
	c.InjectKey(KeyCycle)
	c.InjectPointer(120, 80)
	if c.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", c.Pending())
	}

	// One event per frame.
	c.processInjectedInput(s)
	if s.Text.Content != "h" {
		t.Errorf("after frame 1 Content = %q, want h", s.Text.Content)
	}
	c.processInjectedInput(s)
	c.processInjectedInput(s)
	if s.Effect.EffectIndex != 1 {
		t.Errorf("EffectIndex = %d, want 1", s.Effect.EffectIndex)
	}
	c.processInjectedInput(s)
	if c.Pointer() != (Vec2{120, 80}) {
		t.Errorf("Pointer = %v, want (120, 80)", c.Pointer())
	}
	if c.processInjectedInput(s) {
		t.Error("empty queue should report nothing consumed")
	}
}

func TestInjectSweep(t *testing.T) {
	s := newTestSession(t)
	c := NewController()
	c.InjectSweep(0, 0, 100, 50, 5)
	if c.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", c.Pending())
	}
	var got []Vec2
	for c.processInjectedInput(s) {
		got = append(got, c.Pointer())
	}
	want := []Vec2{{0, 0}, {25, 12.5}, {50, 25}, {75, 37.5}, {100, 50}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d pointer = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInjectScroll(t *testing.T) {
	s := newTestSession(t)
	c := NewController()
	c.InjectScroll(350)
	c.processInjectedInput(s)
	if s.Viewport.ScrollY != 350 || s.Viewport.Active() {
		t.Errorf("ScrollY = %v active = %v, want 350 inactive", s.Viewport.ScrollY, s.Viewport.Active())
	}
}
