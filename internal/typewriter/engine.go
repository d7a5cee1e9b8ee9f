// Package typewriter implements the hero text effect: it types a phrase one
// character at a time, pauses on the full phrase, deletes it, and moves on to the
// next phrase forever.
//
// The engine is a plain state machine. Step performs exactly one tick and reports
// how long the caller should wait before the next one, so any scheduler (Run with a
// Clock, a bubbletea tea.Tick loop, a test loop) can drive it.
package typewriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

var (
	// ErrNoPhrases is returned when the phrase list is empty. The engine never starts.
	ErrNoPhrases = errors.New("typewriter: phrase list is empty")
	// ErrEmptyPhrase is returned when a phrase in the list is blank.
	ErrEmptyPhrase = errors.New("typewriter: phrase is blank")
	// ErrNilSurface is returned when no surface is provided.
	ErrNilSurface = errors.New("typewriter: surface is nil")
)

// Mode is the direction the cursor moves on the next tick.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Timing holds the three delay knobs of the effect.
type Timing struct {
	TypeDelay   time.Duration `yaml:"type_delay" json:"type_delay"`
	DeleteDelay time.Duration `yaml:"delete_delay" json:"delete_delay"`
	Pause       time.Duration `yaml:"pause" json:"pause"`
}

// DefaultTiming returns the stock delays: 100ms typing, 50ms deleting, 1s pause.
func DefaultTiming() Timing {
	return Timing{
		TypeDelay:   100 * time.Millisecond,
		DeleteDelay: 50 * time.Millisecond,
		Pause:       time.Second,
	}
}

// Validate checks that every delay is positive.
func (t Timing) Validate() error {
	if t.TypeDelay <= 0 {
		return fmt.Errorf("type_delay must be positive, got %v", t.TypeDelay)
	}
	if t.DeleteDelay <= 0 {
		return fmt.Errorf("delete_delay must be positive, got %v", t.DeleteDelay)
	}
	if t.Pause <= 0 {
		return fmt.Errorf("pause must be positive, got %v", t.Pause)
	}
	return nil
}

// State is a snapshot of the engine's position.
type State struct {
	PhraseIndex int
	Cursor      int
	Mode        Mode
}

// Engine drives the typewriter cycle. Step must not be called concurrently;
// Stop and Stopped are safe from any goroutine.
type Engine struct {
	phrases [][]rune
	surface Surface
	timing  Timing

	state   State
	text    string
	stopped atomic.Bool
}

// New creates an engine positioned at the start of the first phrase.
func New(phrases []string, surface Surface, timing Timing) (*Engine, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	if err := timing.Validate(); err != nil {
		return nil, fmt.Errorf("typewriter: %w", err)
	}

	runes := make([][]rune, len(phrases))
	for i, phrase := range phrases {
		if strings.TrimSpace(phrase) == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyPhrase, i)
		}
		runes[i] = []rune(phrase)
	}

	return &Engine{
		phrases: runes,
		surface: surface,
		timing:  timing,
		state:   State{Mode: Typing},
	}, nil
}

// NewFromString parses a comma-separated phrase source and creates an engine.
func NewFromString(raw string, surface Surface, timing Timing) (*Engine, error) {
	return New(ParsePhrases(raw), surface, timing)
}

// Step performs one tick and returns the delay before the next tick.
func (e *Engine) Step() time.Duration {
	phrase := e.phrases[e.state.PhraseIndex]

	var delay time.Duration
	if e.state.Mode == Deleting {
		e.state.Cursor--
		delay = e.timing.DeleteDelay
	} else {
		e.state.Cursor++
		delay = e.timing.TypeDelay
	}
	e.render(string(phrase[:e.state.Cursor]))

	switch {
	case e.state.Mode == Typing && e.state.Cursor == len(phrase):
		e.state.Mode = Deleting
		delay = e.timing.Pause
	case e.state.Mode == Deleting && e.state.Cursor == 0:
		e.state.Mode = Typing
		e.state.PhraseIndex = (e.state.PhraseIndex + 1) % len(e.phrases)
	}

	return delay
}

func (e *Engine) render(text string) {
	e.text = text
	e.surface.SetText(text)
}

// Run steps the engine on the given clock until Stop is called or ctx ends.
// It returns nil after Stop and ctx.Err() when the context is done.
func (e *Engine) Run(ctx context.Context, clock Clock) error {
	if clock == nil {
		clock = RealClock{}
	}
	for {
		if e.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.Step()

		if e.stopped.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(delay):
		}
	}
}

// Stop prevents any further tick from being scheduled.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (e *Engine) Stopped() bool {
	return e.stopped.Load()
}

// State returns the current position.
func (e *Engine) State() State {
	return e.state
}

// Text returns the text most recently written to the surface.
func (e *Engine) Text() string {
	return e.text
}

// Phrases returns a copy of the phrase list.
func (e *Engine) Phrases() []string {
	out := make([]string, len(e.phrases))
	for i, phrase := range e.phrases {
		out[i] = string(phrase)
	}
	return out
}

// Timing returns the configured delays.
func (e *Engine) Timing() Timing {
	return e.timing
}
