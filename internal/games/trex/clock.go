package trex

// SimClock turns host frame times into simulation deltas, in milliseconds.
// The first delta after a resync is always zero.
type SimClock struct {
	Now         float64
	LastFrame   float64
	Delta       float64
	RunningTime float64
	synced      bool
}

// Advance moves the clock forward by dt milliseconds.
func (c *SimClock) Advance(dt float64) {
	if dt > 0 {
		c.Now += dt
	}
}

// Tick returns the time elapsed since the previous tick.
func (c *SimClock) Tick() float64 {
	if c.synced {
		c.Delta = c.Now - c.LastFrame
	} else {
		c.Delta = 0
		c.synced = true
	}
	c.LastFrame = c.Now
	return c.Delta
}

// Resync discards time that passed while no ticks were scheduled.
func (c *SimClock) Resync() {
	c.LastFrame = c.Now
	c.synced = true
}
