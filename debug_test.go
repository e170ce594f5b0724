package glyphfield

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugLoggerThrottles(t *testing.T) {
	buf := captureLogs(t)
	s := newTestSession(t)
	buf.Reset()

	var d debugLogger
	start := time.Unix(1000, 0)
	stats := frameStats{active: true, points: 12}
	d.log(start, stats, s)
	d.log(start.Add(100*time.Millisecond), stats, s)
	d.log(start.Add(500*time.Millisecond), stats, s)
	if n := strings.Count(buf.String(), "msg=frame"); n != 1 {
		t.Fatalf("logged %d frame lines within one interval, want 1", n)
	}
	d.log(start.Add(debugLogInterval), stats, s)
	out := buf.String()
	if n := strings.Count(out, "msg=frame"); n != 2 {
		t.Fatalf("logged %d frame lines, want 2", n)
	}
	if !strings.Contains(out, "frames=3") {
		t.Errorf("second summary should count 3 frames:\n%s", out)
	}
	if !strings.Contains(out, "points=12") {
		t.Errorf("missing point count:\n%s", out)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestRegenerateLogsFallback(t *testing.T) {
	buf := captureLogs(t)
	s := newTestSession(t)
	s.Text.Content = "中"
	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected a warning for the shaping fallback:\n%s", buf.String())
	}
}
