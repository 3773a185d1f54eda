// Package engine drives the fixed-tick visualizer loop: it owns the
// particle field, the attractor, the clock and the frame, pulls
// terminal events through a pump goroutine, and sequences render,
// input and integration once per tick.
package engine

import "time"

// TimeProvider abstracts the time source so the loop clock can run on
// mocked time under test
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider provides the real system time with monotonic clock readings
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a new monotonic time provider
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
