package trex

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Cloud is a decorative background cloud. It never collides.
type Cloud struct {
	XPos, YPos int
	Gap        int // distance the next cloud waits for
	Remove     bool
	width      int
}

func newCloud(cfg config.CloudConfig, containerWidth int, rng Random) *Cloud {
	c := &Cloud{XPos: containerWidth, width: cfg.Width}
	c.Gap = randomNum(rng, cfg.MinGap, cfg.MaxGap)
	c.YPos = randomNum(rng, cfg.MaxSkyLevel, cfg.MinSkyLevel)
	return c
}

// Update scrolls the cloud by a whole number of pixels, at least one while moving.
func (c *Cloud) Update(speed float64) {
	if c.Remove {
		return
	}
	c.XPos -= int(math.Ceil(speed))
	if !c.Visible() {
		c.Remove = true
	}
}

// Visible reports whether the cloud is still on the play field.
func (c *Cloud) Visible() bool {
	return c.XPos+c.width > 0
}
