package trex

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// scriptedRandom replays a fixed sequence of draws, cycling when exhausted.
type scriptedRandom struct {
	vals  []float64
	calls int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

func constRandom(v float64) *scriptedRandom {
	return &scriptedRandom{vals: []float64{v}}
}

func defaultConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// newTestCharacter places a character at its running position on a 150px canvas.
func newTestCharacter() *Character {
	cfg := defaultConfig()
	c := NewCharacter(cfg.Character, cfg.Runner.Height, cfg.Runner.BottomPad, constRandom(0.5))
	c.FinishIntro()
	return c
}

// obstacleAt builds a single obstacle of the given type without touching rng.
func obstacleAt(typ string, x, y int) *Obstacle {
	cfg := defaultConfig()
	for i := range cfg.Obstacles {
		t := &cfg.Obstacles[i]
		if t.Type == typ {
			return &Obstacle{
				Type:           t,
				XPos:           x,
				YPos:           y,
				Size:           1,
				Width:          t.Width,
				CollisionBoxes: append([]core.Rect(nil), t.CollisionBoxes...),
				fps:            cfg.Runner.FPS,
			}
		}
	}
	panic("unknown obstacle type " + typ)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func hasCue(events []core.Event, cue core.Cue) bool {
	for _, e := range events {
		if e.Kind == core.EventSound && e.Cue == cue {
			return true
		}
	}
	return false
}
