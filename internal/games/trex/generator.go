package trex

import "github.com/vovakirdan/tui-runner/internal/config"

// maxPickAttempts bounds the random draws before falling back to a scan.
const maxPickAttempts = 100

// Generator chooses obstacle types, refusing types that are too fast for the
// current speed or that would repeat more than the duplication bound allows.
type Generator struct {
	types   []config.ObstacleType
	maxDup  int
	rng     Random
	history []string // newest first, at most maxDup entries
}

// NewGenerator creates a generator over the obstacle table.
func NewGenerator(types []config.ObstacleType, maxDuplication int, rng Random) *Generator {
	return &Generator{
		types:  types,
		maxDup: max(1, maxDuplication),
		rng:    rng,
	}
}

// History returns the recent type names, newest first.
func (g *Generator) History() []string {
	return append([]string(nil), g.history...)
}

// IsDuplicate reports whether placing typ would exceed the duplication bound:
// true iff the last maxDup placements were all typ.
func (g *Generator) IsDuplicate(typ string) bool {
	if len(g.history) < g.maxDup {
		return false
	}
	for _, h := range g.history[:g.maxDup] {
		if h != typ {
			return false
		}
	}
	return true
}

func (g *Generator) acceptable(i int, speed float64, checkDup bool) bool {
	t := &g.types[i]
	if speed < t.MinSpeed {
		return false
	}
	return !checkDup || !g.IsDuplicate(t.Type)
}

// Pick returns the index of the next obstacle type, or false when no type
// can be placed at this speed. Random draws are retried a bounded number of
// times, then the table is scanned in order, first honouring both rules and
// then only the speed rule.
func (g *Generator) Pick(speed float64) (int, bool) {
	if len(g.types) == 0 {
		return 0, false
	}
	for range maxPickAttempts {
		i := randomNum(g.rng, 0, len(g.types)-1)
		if g.acceptable(i, speed, true) {
			return i, true
		}
	}
	for _, checkDup := range []bool{true, false} {
		for i := range g.types {
			if g.acceptable(i, speed, checkDup) {
				return i, true
			}
		}
	}
	return 0, false
}

// Record pushes a placed type onto the history.
func (g *Generator) Record(typ string) {
	g.history = append([]string{typ}, g.history...)
	if len(g.history) > g.maxDup {
		g.history = g.history[:g.maxDup]
	}
}

// Type returns the table entry at index i.
func (g *Generator) Type(i int) *config.ObstacleType {
	return &g.types[i]
}
