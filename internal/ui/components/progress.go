package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SkillBar renders one skill as a horizontal bar.
type SkillBar struct {
	Width      int
	Label      string
	LabelWidth int
	Target     int     // proficiency percentage
	Fraction   float64 // animation progress, 0..1

	FillStyle  lipgloss.Style
	TrackStyle lipgloss.Style
}

// NewSkillBar creates a bar with the given width and target percentage
func NewSkillBar(label string, target, width int) *SkillBar {
	return &SkillBar{
		Width:      width,
		Label:      label,
		Target:     clampPercent(target),
		FillStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
		TrackStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// Value returns the percentage currently displayed.
func (b *SkillBar) Value() float64 {
	return float64(b.Target) * clampUnit(b.Fraction)
}

// Render renders the bar
func (b *SkillBar) Render() string {
	value := b.Value()

	filledWidth := int(math.Round(float64(b.Width) * value / 100))
	if filledWidth > b.Width {
		filledWidth = b.Width
	}
	emptyWidth := b.Width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)
	bar := b.FillStyle.Render(filled) + b.TrackStyle.Render(empty)

	label := b.Label
	if b.LabelWidth > 0 {
		label = fmt.Sprintf("%-*s", b.LabelWidth, label)
	}
	return fmt.Sprintf("%s [%s] %3.0f%%", label, bar, value)
}

// SkillAnimation drives every skill bar together: a start delay, then an
// ease-in-out fill over Duration.
type SkillAnimation struct {
	Delay    time.Duration
	Duration time.Duration

	startedAt time.Time
	started   bool
}

// Start resets the animation to zero at now.
func (a *SkillAnimation) Start(now time.Time) {
	a.startedAt = now
	a.started = true
}

// Started reports whether Start has been called.
func (a *SkillAnimation) Started() bool {
	return a.started
}

// Fraction returns the eased progress at now.
func (a *SkillAnimation) Fraction(now time.Time) float64 {
	if !a.started {
		return 0
	}
	elapsed := now.Sub(a.startedAt) - a.Delay
	if elapsed <= 0 {
		return 0
	}
	if a.Duration <= 0 || elapsed >= a.Duration {
		return 1
	}
	return EaseInOut(float64(elapsed) / float64(a.Duration))
}

// Done reports whether the bars are full at now.
func (a *SkillAnimation) Done(now time.Time) bool {
	return a.started && now.Sub(a.startedAt) >= a.Delay+a.Duration
}

// EaseInOut is a cubic ease-in-out curve on [0,1].
func EaseInOut(t float64) float64 {
	t = clampUnit(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func clampUnit(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Spinner represents a spinning progress indicator
type Spinner struct {
	Frame int
	Label string
}

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// NewSpinner creates a new spinner
func NewSpinner(label string) *Spinner {
	return &Spinner{Label: label}
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(spinnerFrames)
}

// Render renders the spinner
func (s *Spinner) Render() string {
	char := string(spinnerFrames[s.Frame%len(spinnerFrames)])
	if s.Label != "" {
		return fmt.Sprintf("%s %s", char, s.Label)
	}
	return char
}
