package components

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestEaseInOut(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 0.5, want: 0.5},
		{in: 1, want: 1},
		{in: 2, want: 1},
	}
	for _, tt := range tests {
		if got := EaseInOut(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseInOut(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		got := EaseInOut(float64(i) / 100)
		if got < prev {
			t.Fatalf("EaseInOut not monotonic at %d", i)
		}
		prev = got
	}
}

func TestSkillAnimation(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &SkillAnimation{Delay: 200 * time.Millisecond, Duration: time.Second}

	if a.Fraction(start) != 0 || a.Started() {
		t.Fatal("unstarted animation must be at zero")
	}

	a.Start(start)
	if got := a.Fraction(start.Add(100 * time.Millisecond)); got != 0 {
		t.Errorf("during delay got %v, want 0", got)
	}
	if got := a.Fraction(start.Add(700 * time.Millisecond)); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("halfway got %v, want 0.5", got)
	}
	if a.Done(start.Add(1100 * time.Millisecond)) {
		t.Error("Done() before delay+duration")
	}
	if got := a.Fraction(start.Add(1200 * time.Millisecond)); got != 1 {
		t.Errorf("at end got %v, want 1", got)
	}
	if !a.Done(start.Add(1200 * time.Millisecond)) {
		t.Error("Done() false at delay+duration")
	}
}

func TestSkillBarRender(t *testing.T) {
	bar := NewSkillBar("Go", 90, 10)

	bar.Fraction = 0
	if out := bar.Render(); !strings.Contains(out, "  0%") || strings.Contains(out, "█") {
		t.Errorf("empty bar = %q", out)
	}

	bar.Fraction = 1
	out := bar.Render()
	if !strings.Contains(out, " 90%") {
		t.Errorf("full bar = %q", out)
	}
	if got := strings.Count(out, "█"); got != 9 {
		t.Errorf("filled cells = %d, want 9", got)
	}
}

func TestSkillBarClampsTarget(t *testing.T) {
	if NewSkillBar("x", 150, 10).Target != 100 || NewSkillBar("x", -5, 10).Target != 0 {
		t.Error("target not clamped")
	}
}

func TestSpinnerCycles(t *testing.T) {
	s := NewSpinner("Sending...")
	first := s.Render()
	for range spinnerFrames {
		s.Tick()
	}
	if s.Render() != first {
		t.Errorf("spinner did not wrap: %q vs %q", s.Render(), first)
	}
	if !strings.HasSuffix(first, "Sending...") {
		t.Errorf("Render() = %q", first)
	}
}
