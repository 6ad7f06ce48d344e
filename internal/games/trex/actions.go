package trex

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// handleAction applies one input action. Actions that make no sense in the
// current phase are dropped.
func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionJumpPressed:
		g.onJumpPressed()
	case core.ActionDuckPressed:
		if g.playing && !g.crashed {
			if g.char.Jumping {
				g.char.SetSpeedDrop()
			} else if !g.char.Ducking {
				g.char.SetDuck(true)
			}
		}
	case core.ActionJumpReleased:
		g.onJumpReleased()
	case core.ActionDuckReleased:
		g.char.SpeedDrop = false
		g.char.SetDuck(false)
	case core.ActionRestart:
		g.Restart()
	case core.ActionPause:
		if !g.activated || g.crashed {
			return
		}
		if g.paused {
			g.Play()
		} else {
			g.Stop()
		}
	case core.ActionFocusLost:
		if g.autoPause {
			g.Stop()
		}
	case core.ActionFocusGained:
		if g.autoPause && g.paused && !g.crashed {
			g.char.Reset()
			g.Play()
		}
	}
}

func (g *Game) onJumpPressed() {
	if g.crashed {
		return
	}
	if !g.playing {
		g.playing = true
		g.paused = false
		g.clock.Resync()
		g.scheduled = true
	}
	if !g.char.Jumping && !g.char.Ducking {
		g.sound(core.CueButtonPress)
		g.char.StartJump(g.speed)
	}
}

func (g *Game) onJumpReleased() {
	switch {
	case g.scheduled:
		g.char.EndJump()
	case g.crashed:
		if g.crashElapsed >= g.cfg.Runner.GameOverClearTime {
			g.restart()
		}
	case g.paused:
		g.char.Reset()
		g.Play()
	}
}

// UpdateSetting changes a tunable while the game runs. It reports whether
// the setting was applied; unknown names and non-finite values are ignored.
func (g *Game) UpdateSetting(name string, v float64) bool {
	if !g.ready || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	switch name {
	case "GRAVITY":
		g.char.SetGravity(v)
	case "MIN_JUMP_HEIGHT":
		g.char.SetMinJumpHeight(int(v))
	case "SPEED_DROP_COEFFICIENT":
		g.char.SetSpeedDropCoefficient(v)
	case "INITIAL_JUMP_VELOCITY":
		g.char.SetJumpVelocity(v)
	case "SPEED":
		g.setSpeed(v)
	case "ACCELERATION":
		g.cfg.Runner.Acceleration = v
	case "MAX_SPEED":
		g.cfg.Runner.MaxSpeed = v
	case "GAP_COEFFICIENT":
		g.horizon.SetGapCoefficient(v)
	case "CLOUD_FREQUENCY":
		g.horizon.SetCloudFrequency(v)
	default:
		return false
	}
	return true
}
