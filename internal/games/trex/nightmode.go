package trex

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Star is a night sky star. Stars are re-placed every time night fully fades out.
type Star struct {
	X float64
	Y int
}

// NightMode draws the moon and stars and owns their fade.
type NightMode struct {
	cfg            config.NightModeConfig
	rng            Random
	XPos           float64
	YPos           int
	CurrentPhase   int
	Opacity        float64
	ContainerWidth int
	Stars          []Star
	DrawStars      bool
}

// NewNightMode creates a hidden night sky over a container of the given width.
func NewNightMode(cfg config.NightModeConfig, containerWidth int, rng Random) *NightMode {
	n := &NightMode{
		cfg:            cfg,
		rng:            rng,
		XPos:           float64(containerWidth - 50),
		YPos:           30,
		ContainerWidth: containerWidth,
	}
	n.placeStars()
	return n
}

// Update fades towards the activated state and drifts the moon and stars.
// A new moon phase starts each time a fade-in begins from fully dark.
func (n *NightMode) Update(activated bool) {
	if activated && n.Opacity == 0 {
		n.CurrentPhase = (n.CurrentPhase + 1) % len(n.cfg.Phases)
	}

	if activated {
		n.Opacity = core.ClampF(n.Opacity+n.cfg.FadeSpeed, 0, 1)
	} else if n.Opacity > 0 {
		n.Opacity = core.ClampF(n.Opacity-n.cfg.FadeSpeed, 0, 1)
	}

	if n.Opacity > 0 {
		n.XPos = n.updateXPos(n.XPos, n.cfg.MoonSpeed)
		if n.DrawStars {
			for i := range n.Stars {
				n.Stars[i].X = n.updateXPos(n.Stars[i].X, n.cfg.StarSpeed)
			}
		}
	} else {
		n.Opacity = 0
		n.placeStars()
	}
	n.DrawStars = true
}

// updateXPos drifts left and wraps to the right edge once off screen.
func (n *NightMode) updateXPos(pos, speed float64) float64 {
	if pos < -float64(n.cfg.Width) {
		return float64(n.ContainerWidth)
	}
	return pos - speed
}

// placeStars puts one star in each equal slice of the container.
func (n *NightMode) placeStars() {
	if n.cfg.NumStars <= 0 {
		n.Stars = nil
		return
	}
	segment := core.RoundHalfUp(float64(n.ContainerWidth) / float64(n.cfg.NumStars))
	n.Stars = make([]Star, n.cfg.NumStars)
	for i := range n.Stars {
		n.Stars[i].X = float64(randomNum(n.rng, segment*i, segment*(i+1)))
		n.Stars[i].Y = randomNum(n.rng, 0, n.cfg.StarMaxY)
	}
}

// MoonWidth returns the moon sprite width; the full moon phase is twice as wide.
func (n *NightMode) MoonWidth() int {
	if n.CurrentPhase == 3 {
		return n.cfg.Width * 2
	}
	return n.cfg.Width
}

// Resize changes the wrap width used by the moon and stars.
func (n *NightMode) Resize(containerWidth int) {
	n.ContainerWidth = containerWidth
}

// Reset returns to day with the first moon phase.
func (n *NightMode) Reset() {
	n.CurrentPhase = 0
	n.Opacity = 0
	n.Update(false)
}
