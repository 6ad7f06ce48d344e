package trex

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

type drawCall struct {
	sprite core.Sprite
	src    core.Rect
	dst    core.Rect
	alpha  float64
}

// recordingCanvas keeps every call made during one frame.
type recordingCanvas struct {
	cleared  int
	inverted bool
	draws    []drawCall
	strokes  []core.Rect
}

func (r *recordingCanvas) Clear() {
	r.cleared++
	r.draws = nil
	r.strokes = nil
}

func (r *recordingCanvas) DrawSprite(sp core.Sprite, src, dst core.Rect, alpha float64) {
	r.draws = append(r.draws, drawCall{sprite: sp, src: src, dst: dst, alpha: alpha})
}

func (r *recordingCanvas) StrokeRect(rect core.Rect, _ core.Color) {
	r.strokes = append(r.strokes, rect)
}

func (r *recordingCanvas) SetInverted(on bool) {
	r.inverted = on
}

func (r *recordingCanvas) count(kind core.SpriteKind) int {
	n := 0
	for _, d := range r.draws {
		if d.sprite.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingCanvas) first(kind core.SpriteKind) (drawCall, bool) {
	for _, d := range r.draws {
		if d.sprite.Kind == kind {
			return d, true
		}
	}
	return drawCall{}, false
}

func TestRenderWaitingFrame(t *testing.T) {
	g := newTestGame(t)
	c := &recordingCanvas{}
	g.Render(c)

	if c.cleared != 1 || c.inverted {
		t.Errorf("cleared/inverted = %d/%v, expected 1/false", c.cleared, c.inverted)
	}
	counts := map[core.SpriteKind]int{
		core.SpriteHorizon: 2,
		core.SpriteCloud:   1,
		core.SpriteText:    5,
		core.SpriteTrex:    1,
		core.SpriteMoon:    0,
		core.SpriteRestart: 0,
	}
	for kind, want := range counts {
		if got := c.count(kind); got != want {
			t.Errorf("%v draws = %d, expected %d", kind, got, want)
		}
	}

	trex, _ := c.first(core.SpriteTrex)
	if trex.src != core.NewRect(848, 2, 44, 47) {
		t.Errorf("trex src = %+v", trex.src)
	}
	if trex.dst != core.NewRect(0, 93, 44, 47) {
		t.Errorf("trex dst = %+v", trex.dst)
	}
	if len(c.strokes) != 0 {
		t.Errorf("strokes = %d without debug boxes", len(c.strokes))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	crash(t, g)

	c := &recordingCanvas{}
	g.Render(c)

	if c.count(core.SpriteRestart) != 1 {
		t.Errorf("restart draws = %d, expected 1", c.count(core.SpriteRestart))
	}
	// 5 digits, HI plus 5 digits, and the caption
	if got := c.count(core.SpriteText); got != 5+7+1 {
		t.Errorf("text draws = %d, expected 13", got)
	}
	for _, d := range c.draws {
		if d.sprite.Kind == core.SpriteText && d.dst.X < g.Meter().X && d.sprite.Index != glyphBlank && d.alpha != 0.8 {
			t.Errorf("high score glyph drawn with alpha %v, expected 0.8", d.alpha)
		}
	}
	if c.count(core.SpriteCactusSmall) < 1 {
		t.Error("crashed obstacle not drawn")
	}
}

func TestRenderObstacleSource(t *testing.T) {
	g := newTestGame(t)
	o := obstacleAt("CACTUS_SMALL", 200, 105)
	o.Size = 3
	g.horizon.Obstacles = []*Obstacle{o}

	c := &recordingCanvas{}
	g.Render(c)

	d, ok := c.first(core.SpriteCactusSmall)
	if !ok {
		t.Fatal("cactus not drawn")
	}
	// a group of three starts after the single and the pair: 17 + 34
	if d.src != core.NewRect(228+51, 2, 51, 35) {
		t.Errorf("src = %+v", d.src)
	}
	if d.dst != core.NewRect(200, 105, 51, 35) || d.sprite.Index != 3 {
		t.Errorf("dst = %+v index %d", d.dst, d.sprite.Index)
	}
}

func TestRenderHiDPIDoublesSource(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Runner.HiDPI = true
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	c := &recordingCanvas{}
	g.Render(c)

	d, _ := c.first(core.SpriteHorizon)
	if d.src != core.NewRect(2, 104, 1200, 24) {
		t.Errorf("horizon src = %+v", d.src)
	}
	if d.dst != core.NewRect(0, 127, 600, 12) {
		t.Errorf("horizon dst = %+v", d.dst)
	}
}

func TestRenderNightAndDebug(t *testing.T) {
	g := newTestGame(t)
	g.inverted = true
	g.horizon.Night.Update(true)
	g.SetDebugBoxes(true)

	c := &recordingCanvas{}
	g.Render(c)

	if !c.inverted {
		t.Error("canvas not inverted at night")
	}
	moon, ok := c.first(core.SpriteMoon)
	if !ok {
		t.Fatal("moon not drawn")
	}
	if moon.alpha != g.horizon.Night.Opacity || moon.sprite.Index != 1 {
		t.Errorf("moon alpha/phase = %v/%d", moon.alpha, moon.sprite.Index)
	}
	if c.count(core.SpriteStar) != 2 {
		t.Errorf("star draws = %d, expected 2", c.count(core.SpriteStar))
	}
	if len(c.strokes) != 6 {
		t.Errorf("strokes = %d, expected the 6 running boxes", len(c.strokes))
	}
}
