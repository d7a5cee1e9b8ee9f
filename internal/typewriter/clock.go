package typewriter

import "time"

// Clock schedules the next tick. Run waits on the returned channel.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock schedules ticks on wall-clock time.
type RealClock struct{}

// After returns a channel that fires once d has elapsed.
func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.NewTimer(d).C
}

// Surface is the single text target the engine owns and rewrites on every tick.
type Surface interface {
	SetText(text string)
}

// SurfaceFunc adapts a plain function to a Surface.
type SurfaceFunc func(text string)

// SetText calls f(text).
func (f SurfaceFunc) SetText(text string) {
	f(text)
}
