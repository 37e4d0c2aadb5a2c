package render

import "time"

// Clock paces frames to a fixed rate.
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewClock returns a clock ticking fps times per second.
// A non-positive fps disables pacing.
func NewClock(fps int) *Clock {
	c := &Clock{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		c.interval = time.Second / time.Duration(fps)
	}
	return c
}

// Tick blocks until at least one frame interval has passed since the previous tick.
func (c *Clock) Tick() {
	if c.interval <= 0 {
		return
	}
	now := c.now()
	if !c.last.IsZero() {
		if wait := c.interval - now.Sub(c.last); wait > 0 {
			c.sleep(wait)
			now = now.Add(wait)
		}
	}
	c.last = now
}
