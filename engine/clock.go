package engine

import "time"

// Clock measures elapsed time between simulation steps. It never
// reports negative elapsed time; a time source stepping backwards
// reads as zero.
type Clock struct {
	provider TimeProvider
	last     time.Time
}

// NewClock creates a clock marked at the provider's current time.
func NewClock(provider TimeProvider) *Clock {
	return &Clock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Tick returns the seconds elapsed since the previous mark and moves
// the mark to now.
func (c *Clock) Tick() float64 {
	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Since returns the duration elapsed since the previous mark, floored
// at zero.
func (c *Clock) Since() time.Duration {
	d := c.provider.Now().Sub(c.last)
	if d < 0 {
		return 0
	}
	return d
}
