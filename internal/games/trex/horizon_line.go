package trex

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// HorizonLine is the ground: two segments that leapfrog each other.
// SourceX holds each segment's texture offset, 0 for flat or Width for bumpy.
type HorizonLine struct {
	cfg     config.HorizonLineConfig
	fps     float64
	rng     Random
	XPos    [2]int
	SourceX [2]int
}

// NewHorizonLine creates a flat segment followed by a bumpy one.
func NewHorizonLine(cfg config.HorizonLineConfig, fps float64, rng Random) *HorizonLine {
	l := &HorizonLine{cfg: cfg, fps: fps, rng: rng}
	l.SourceX = [2]int{0, cfg.Width}
	l.Reset()
	return l
}

// Update scrolls the ground by speed over dt milliseconds.
func (l *HorizonLine) Update(dt, speed float64) {
	increment := int(math.Floor(speed * (l.fps / 1000) * dt))
	if l.XPos[0] <= 0 {
		l.updateXPos(0, increment)
	} else {
		l.updateXPos(1, increment)
	}
}

// updateXPos moves the leading segment and keeps the other one glued to its
// right edge. A segment that fully leaves the screen jumps behind its partner
// with a freshly chosen texture.
func (l *HorizonLine) updateXPos(lead, increment int) {
	follow := 1 - lead
	w := l.cfg.Width

	l.XPos[lead] -= increment
	l.XPos[follow] = l.XPos[lead] + w

	if l.XPos[lead] <= -w {
		l.XPos[lead] += w * 2
		l.XPos[follow] = l.XPos[lead] - w
		l.SourceX[lead] = l.randomType()
	}
}

func (l *HorizonLine) randomType() int {
	if l.rng.Float64() > l.cfg.BumpThreshold {
		return l.cfg.Width
	}
	return 0
}

// Bumpy reports whether segment i uses the bumpy texture.
func (l *HorizonLine) Bumpy(i int) bool {
	return l.SourceX[i] != 0
}

// Reset puts both segments back at their starting positions.
func (l *HorizonLine) Reset() {
	l.XPos = [2]int{0, l.cfg.Width}
}
