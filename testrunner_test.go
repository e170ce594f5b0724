package glyphfield

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "type", "text": "Hi"},
			{"action": "key", "key": "enter"},
			{"action": "move", "x": 100, "y": 200},
			{"action": "sweep", "fromX": 0, "fromY": 0, "toX": 50, "toY": 50, "frames": 3},
			{"action": "scroll", "dy": 400},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "type" || runner.steps[1].Text != "Hi" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].X != 100 || runner.steps[3].Y != 200 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[5].DY != 400 {
		t.Error("step 5 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "f13"}]}`},
		{"empty type", `{"steps": [{"action": "type"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Type(t *testing.T) {
	s := newTestSession(t)
	c := NewController()
	var shots Screenshots

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "type", "text": "AB"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(c, &shots)
	if c.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", c.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Pending injections hold the runner back.
	runner.step(c, &shots)
	if c.Pending() != 2 {
		t.Fatalf("runner advanced with %d events pending", c.Pending())
	}

	c.processInjectedInput(s)
	c.processInjectedInput(s)
	if s.Text.Content != "AB" {
		t.Errorf("Content = %q, want AB", s.Text.Content)
	}

	runner.step(c, &shots)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_WaitAndScreenshot(t *testing.T) {
	c := NewController()
	var shots Screenshots

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(c, &shots) // wait, frame 1
	runner.step(c, &shots) // frame 2
	runner.step(c, &shots) // frame 3
	if len(shots.Pending()) != 0 {
		t.Fatal("screenshot queued before the wait finished")
	}
	runner.step(c, &shots)
	if got := shots.Pending(); len(got) != 1 || got[0] != "done" {
		t.Errorf("pending screenshots = %v, want [done]", got)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_KeyAndScroll(t *testing.T) {
	s := newTestSession(t)
	c := NewController()
	var shots Screenshots

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "key", "key": "enter"},
		{"action": "scroll", "dy": 500},
		{"action": "key", "key": "enter"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.step(c, &shots)
		c.processInjectedInput(s)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	// The second ENTER arrives while scrolled away and is ignored.
	if s.Effect.EffectIndex != 1 {
		t.Errorf("EffectIndex = %d, want 1", s.Effect.EffectIndex)
	}
}
