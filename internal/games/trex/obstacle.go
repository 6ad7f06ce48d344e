package trex

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is one cactus group or pterodactyl scrolling towards the character.
type Obstacle struct {
	Type *config.ObstacleType

	XPos, YPos     int
	Size           int // 1..MaxObstacleLength sprites side by side
	Width          int
	Gap            int
	SpeedOffset    float64
	CollisionBoxes []core.Rect

	CurrentFrame     int
	timer            float64
	fps              float64
	Remove           bool
	FollowingCreated bool
}

// obstacleParams carries the runner settings an obstacle is built from.
type obstacleParams struct {
	containerWidth    int
	fps               float64
	gapCoefficient    float64
	maxGapCoefficient float64
	maxLength         int
}

// newObstacle builds an obstacle just past the right edge.
// Draws from rng in a fixed order: size, height, speed offset, gap.
func newObstacle(typ *config.ObstacleType, p obstacleParams, speed float64, rng Random) *Obstacle {
	o := &Obstacle{
		Type: typ,
		Size: randomNum(rng, 1, max(1, p.maxLength)),
		XPos: p.containerWidth + typ.Width,
		fps:  p.fps,
	}

	o.CollisionBoxes = append([]core.Rect(nil), typ.CollisionBoxes...)

	// Groups are only allowed once the run is fast enough.
	if o.Size > 1 && typ.MultipleSpeed > speed {
		o.Size = 1
	}
	o.Width = typ.Width * o.Size

	if len(typ.YPos) > 1 {
		o.YPos = typ.YPos[randomNum(rng, 0, len(typ.YPos)-1)]
	} else {
		o.YPos = typ.YPos[0]
	}

	// Stretch the middle box across the group and pin the last box to the right edge.
	if o.Size > 1 && len(o.CollisionBoxes) >= 3 {
		b := o.CollisionBoxes
		b[1].W = o.Width - b[0].W - b[2].W
		b[2].X = o.Width - b[2].W
	}

	if typ.SpeedOffset != 0 {
		if rng.Float64() > 0.5 {
			o.SpeedOffset = typ.SpeedOffset
		} else {
			o.SpeedOffset = -typ.SpeedOffset
		}
	}

	o.Gap = o.gap(p.gapCoefficient, p.maxGapCoefficient, speed, rng)
	return o
}

// gap picks the distance to leave before the next obstacle.
// The minimum widens as the run speeds up.
func (o *Obstacle) gap(coefficient, maxCoefficient, speed float64, rng Random) int {
	minGap := core.RoundHalfUp(float64(o.Width)*speed + o.Type.MinGap*coefficient)
	maxGap := core.RoundHalfUp(float64(minGap) * maxCoefficient)
	return randomNum(rng, minGap, maxGap)
}

// Update scrolls the obstacle and advances its animation.
func (o *Obstacle) Update(dt, speed float64) {
	if o.Remove {
		return
	}
	speed += o.SpeedOffset
	o.XPos -= int(math.Floor(speed * o.fps / 1000 * dt))

	if o.Type.NumFrames > 0 {
		o.timer += dt
		if o.timer >= o.Type.FrameRate {
			o.CurrentFrame++
			if o.CurrentFrame >= o.Type.NumFrames {
				o.CurrentFrame = 0
			}
			o.timer = 0
		}
	}

	if !o.Visible() {
		o.Remove = true
	}
}

// Visible reports whether any part of the obstacle is still on the play field.
func (o *Obstacle) Visible() bool {
	return o.XPos+o.Width > 0
}
