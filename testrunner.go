package glyphfield

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in an input script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for an input script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON input script. Every step is validated up
// front so a bad script fails before the window opens.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "move", "sweep", "scroll", "wait":
		return nil
	case "type":
		if st.Text == "" {
			return errors.New("type: empty text")
		}
		return nil
	case "key":
		if _, ok := parseKeyKind(st.Key); !ok {
			return fmt.Errorf("key: unknown key %q", st.Key)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame, queueing input on c and captures
// on shots.
func (r *TestRunner) step(c *Controller, shots *Screenshots) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if c.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		shots.Queue(st.Label)
	case "type":
		c.InjectText(st.Text)
	case "key":
		kind, _ := parseKeyKind(st.Key)
		c.InjectKey(kind)
	case "move":
		c.InjectPointer(st.X, st.Y)
	case "sweep":
		c.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		c.InjectScroll(st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.Pending() == 0 {
		r.done = true
	}
}
