package trex

import "github.com/vovakirdan/tui-runner/internal/core"

// outerBoxes returns the coarse boxes of the character and the obstacle,
// inset by the one pixel of transparent padding around every sprite.
func outerBoxes(c *Character, o *Obstacle) (core.Rect, core.Rect) {
	char := core.NewRect(c.XPos, c.YPos, c.Width(), c.Height()).Inset(1)
	obs := core.NewRect(o.XPos, o.YPos, o.Type.Width*o.Size, o.Type.Height).Inset(1)
	return char, obs
}

// Collision is a pair of intersecting boxes in play field coordinates.
type Collision struct {
	Character core.Rect
	Obstacle  core.Rect
}

// CheckCollision tests the character against one obstacle. The outer boxes
// gate the pairwise test of every character box against every obstacle box.
func CheckCollision(c *Character, o *Obstacle) (Collision, bool) {
	if o == nil {
		return Collision{}, false
	}
	charBox, obsBox := outerBoxes(c, o)
	if !charBox.Intersects(obsBox) {
		return Collision{}, false
	}

	for _, cb := range c.CollisionBoxes() {
		adjChar := cb.Translate(charBox)
		for _, ob := range o.CollisionBoxes {
			adjObs := ob.Translate(obsBox)
			if adjChar.Intersects(adjObs) {
				return Collision{Character: adjChar, Obstacle: adjObs}, true
			}
		}
	}
	return Collision{}, false
}
