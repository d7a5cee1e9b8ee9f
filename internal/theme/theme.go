// Package theme stores the light/dark preference across runs.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the page color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the store key holding the saved theme.
const Key = "theme"

// ErrInvalidTheme is returned for values other than light and dark.
var ErrInvalidTheme = errors.New("invalid theme")

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: light, dark)", ErrInvalidTheme, s)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Load returns the saved theme, or fallback when nothing valid is saved or the
// store cannot be read.
func Load(store Store, fallback Theme) Theme {
	if store == nil {
		return fallback
	}
	raw, ok, err := store.Get(Key)
	if err != nil || !ok {
		return fallback
	}
	t, err := Parse(raw)
	if err != nil {
		return fallback
	}
	return t
}

// Save persists t.
func Save(store Store, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := store.Set(Key, string(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle flips current and persists the result. The flipped theme is returned
// even when saving fails.
func Toggle(store Store, current Theme) (Theme, error) {
	next := current.Opposite()
	if store == nil {
		return next, nil
	}
	return next, Save(store, next)
}
