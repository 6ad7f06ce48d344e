package trex

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Glyph indices in the text sprite beyond the digits.
const (
	glyphH     = 10
	glyphI     = 11
	glyphBlank = -1
)

// DistanceMeter turns distance ran into the score display and runs the
// milestone flash.
type DistanceMeter struct {
	cfg  config.DistanceMeterConfig
	X, Y int

	maxScoreUnits int
	maxScore      int

	Digits    []int
	HighScore []int // H, I, blank, then digits; empty until a run ends

	Achievement     bool
	flashTimer      float64
	flashIterations int
	lastMilestone   int
	// Paint is false while the flash hides the score.
	Paint bool

	canvasWidth int
}

// NewDistanceMeter creates a zeroed meter right-aligned in a canvas of the given width.
func NewDistanceMeter(cfg config.DistanceMeterConfig, canvasWidth int) *DistanceMeter {
	m := &DistanceMeter{cfg: cfg, Y: 5, Paint: true}
	m.maxScoreUnits = cfg.MaxDistanceUnits
	m.maxScore = maxFor(m.maxScoreUnits)
	m.Digits = m.pad(0)
	m.CalcXPos(canvasWidth)
	return m
}

// maxFor returns the largest number n digits can show.
func maxFor(units int) int {
	v, _ := strconv.Atoi(strings.Repeat("9", units))
	return v
}

// CalcXPos right-aligns the meter, leaving one digit of margin.
func (m *DistanceMeter) CalcXPos(canvasWidth int) {
	m.canvasWidth = canvasWidth
	m.X = canvasWidth - m.cfg.DestWidth*(m.maxScoreUnits+1)
}

// Units returns the current digit capacity.
func (m *DistanceMeter) Units() int {
	return m.maxScoreUnits
}

// ActualDistance converts pixels into score units.
func (m *DistanceMeter) ActualDistance(px float64) int {
	if px == 0 {
		return 0
	}
	return core.RoundHalfUp(px * m.cfg.Coefficient)
}

// Update refreshes the digits from the distance in pixels, or steps the
// flash while an achievement is showing. It reports whether a milestone was
// reached on this call.
func (m *DistanceMeter) Update(dt, distancePx float64) bool {
	paint := true
	reached := false

	if !m.Achievement {
		d := m.ActualDistance(distancePx)
		if d > m.maxScore {
			for d > m.maxScore {
				m.maxScoreUnits++
				m.maxScore = m.maxScore*10 + 9
			}
			m.CalcXPos(m.canvasWidth)
		}

		if d > 0 {
			// A tick may carry the score past a multiple without landing on it.
			if step := m.cfg.AchievementDistance; d/step > m.lastMilestone/step {
				m.Achievement = true
				m.flashTimer = 0
				m.lastMilestone = d / step * step
				reached = true
			}
			m.Digits = m.pad(d)
		} else {
			m.Digits = m.pad(0)
		}
	} else {
		if m.flashIterations < m.cfg.FlashIterations {
			m.flashTimer += dt
			if m.flashTimer < m.cfg.FlashDuration {
				paint = false
			} else if m.flashTimer > m.cfg.FlashDuration*2 {
				m.flashTimer = 0
				m.flashIterations++
			}
		} else {
			m.Achievement = false
			m.flashIterations = 0
			m.flashTimer = 0
		}
	}

	m.Paint = paint
	return reached
}

// pad returns v as digits, zero padded to the current capacity.
func (m *DistanceMeter) pad(v int) []int {
	s := strconv.Itoa(v)
	if n := m.maxScoreUnits - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	digits := make([]int, len(s))
	for i, r := range s {
		digits[i] = int(r - '0')
	}
	return digits
}

// SetHighScore stores the best distance in pixels as "HI" plus digits.
func (m *DistanceMeter) SetHighScore(distancePx float64) {
	d := m.ActualDistance(math.Ceil(distancePx))
	m.HighScore = append([]int{glyphH, glyphI, glyphBlank}, m.pad(d)...)
}

// HighScoreX returns where the high score starts, left of the current score.
func (m *DistanceMeter) HighScoreX() int {
	return m.X - m.maxScoreUnits*2*m.cfg.DigitWidth
}

// CancelAchievement stops a flash in progress.
func (m *DistanceMeter) CancelAchievement() {
	m.Achievement = false
	m.flashIterations = 0
	m.flashTimer = 0
}

// Reset shows zero again. The high score is kept.
func (m *DistanceMeter) Reset() {
	m.CancelAchievement()
	m.lastMilestone = 0
	m.Update(0, 0)
}
