package trex

import "testing"

func TestSimClock(t *testing.T) {
	var c SimClock
	c.Advance(500)
	if d := c.Tick(); d != 0 {
		t.Errorf("first Tick() = %v, expected 0", d)
	}

	c.Advance(16)
	if d := c.Tick(); d != 16 {
		t.Errorf("Tick() = %v, expected 16", d)
	}

	c.Advance(-5)
	if d := c.Tick(); d != 0 {
		t.Errorf("Tick() after negative advance = %v, expected 0", d)
	}

	c.Advance(1000)
	c.Resync()
	if d := c.Tick(); d != 0 {
		t.Errorf("Tick() after Resync = %v, expected 0", d)
	}
}
