package trex

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultRunnerConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

func step(g *Game, ms int, actions ...core.Action) core.StepResult {
	return g.Step(time.Duration(ms)*time.Millisecond, core.NewInputFrame(actions...))
}

// startRun jumps once and waits for the intro to finish.
func startRun(t *testing.T, g *Game) {
	t.Helper()
	step(g, 0, core.ActionJumpPressed)
	for i := 0; i < 1000; i++ {
		if res := step(g, 16); hasEvent(res.Events, core.EventStarted) {
			return
		}
	}
	t.Fatal("run never started")
}

// crash puts a cactus in front of the character and steps into it.
func crash(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	g.clock.RunningTime = g.cfg.Runner.ClearTime + 1000
	g.horizon.Obstacles = []*Obstacle{obstacleAt("CACTUS_SMALL", 60, 105)}
	res := step(g, 16)
	if res.State.Phase != core.PhaseCrashed {
		t.Fatalf("Phase = %v, expected CRASHED", res.State.Phase)
	}
	return res
}

func TestStepBeforeResetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Step before Reset should panic")
		}
	}()
	New().Step(time.Millisecond, core.InputFrame{})
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "trex" || g.Title() != "T-Rex Runner" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("State before Reset = %+v, expected zero", g.State())
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.State()
	if s.Phase != core.PhaseWaiting {
		t.Errorf("Phase = %v, expected WAITING", s.Phase)
	}
	if s.Score != 0 || s.HighScore != 0 || s.Speed != 5 || s.PlayCount != 0 {
		t.Errorf("State = %+v", s)
	}
}

func TestFirstJumpPlaysIntro(t *testing.T) {
	g := newTestGame(t)

	// The jump that starts the game is still part of the wait.
	res := step(g, 0, core.ActionJumpPressed)
	if res.State.Phase != core.PhaseWaiting || !res.State.Running {
		t.Errorf("Phase/Running = %v/%v, expected WAITING/true", res.State.Phase, res.State.Running)
	}
	if !hasCue(res.Events, core.CueButtonPress) {
		t.Error("no BUTTON_PRESS cue on the first jump")
	}

	sawIntro := false
	started := false
	for i := 0; i < 1000 && !started; i++ {
		res = step(g, 16)
		switch res.State.Phase {
		case core.PhaseIntro:
			sawIntro = true
		case core.PhasePlaying:
			if !sawIntro {
				t.Fatalf("tick %d: PLAYING before the intro", i)
			}
		}
		started = hasEvent(res.Events, core.EventStarted)
	}
	if !sawIntro || !started {
		t.Fatalf("sawIntro = %v, started = %v, expected both", sawIntro, started)
	}
	if res.State.Phase != core.PhasePlaying || res.State.PlayCount != 1 {
		t.Errorf("Phase/PlayCount = %v/%d, expected PLAYING/1", res.State.Phase, res.State.PlayCount)
	}
	if g.Character().XPos != 50 {
		t.Errorf("character XPos = %d, expected 50", g.Character().XPos)
	}
}

func TestDistanceAndSpeedRamp(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	g.UpdateSetting("SPEED", 5)

	prev := g.State()
	for i, dt := range []int{16, 16, 16} {
		s := step(g, dt).State
		if s.Distance <= prev.Distance {
			t.Errorf("tick %d: Distance %v did not grow from %v", i, s.Distance, prev.Distance)
		}
		wantDist := prev.Distance + prev.Speed*float64(dt)/g.msPerFrame
		if math.Abs(s.Distance-wantDist) > 1e-9 {
			t.Errorf("tick %d: Distance = %v, expected %v", i, s.Distance, wantDist)
		}
		if math.Abs(s.Speed-(prev.Speed+0.001)) > 1e-9 {
			t.Errorf("tick %d: Speed = %v, expected %v", i, s.Speed, prev.Speed+0.001)
		}
		prev = s
	}
}

func TestSpeedClampedToMax(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	g.UpdateSetting("SPEED", 12.9995)
	for range 5 {
		step(g, 16)
	}
	if s := g.State().Speed; s != 13 {
		t.Errorf("Speed = %v, expected 13", s)
	}
}

func TestCrashKeepsHighScore(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	for range 100 {
		step(g, 16)
	}
	res := crash(t, g)

	if !hasCue(res.Events, core.CueHit) || !hasEvent(res.Events, core.EventCrashed) {
		t.Errorf("events = %v, expected HIT cue and crashed", res.Events)
	}
	s := res.State
	if !s.GameOver || s.Score == 0 || s.HighScore != s.Score {
		t.Errorf("State = %+v, expected game over with high score = score", s)
	}
	if g.Character().Status() != StatusCrashed {
		t.Errorf("character Status = %v, expected CRASHED", g.Character().Status())
	}

	// Jumping is ignored while crashed, and a quick release does not restart.
	step(g, 0, core.ActionJumpPressed)
	if res = step(g, 100, core.ActionJumpReleased); res.State.Phase != core.PhaseCrashed {
		t.Errorf("Phase = %v after an early release, expected CRASHED", res.State.Phase)
	}

	step(g, 700)
	res = step(g, 0, core.ActionJumpReleased)
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("Phase = %v after release past the clear time, expected PLAYING", res.State.Phase)
	}
	if !hasEvent(res.Events, core.EventRestarted) || !hasCue(res.Events, core.CueButtonPress) {
		t.Errorf("events = %v, expected restarted and BUTTON_PRESS", res.Events)
	}
	if res.State.Score != 0 || res.State.HighScore != s.HighScore || res.State.PlayCount != 2 {
		t.Errorf("State = %+v after restart", res.State)
	}
	if len(g.Horizon().Obstacles) != 0 {
		t.Errorf("obstacles = %d after restart, expected 0", len(g.Horizon().Obstacles))
	}
}

func TestRestartAction(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	// Restart outside of a crash does nothing.
	if res := step(g, 16, core.ActionRestart); hasEvent(res.Events, core.EventRestarted) {
		t.Error("restarted while playing")
	}

	crash(t, g)
	res := step(g, 0, core.ActionRestart)
	if res.State.Phase != core.PhasePlaying || !hasEvent(res.Events, core.EventRestarted) {
		t.Errorf("Phase = %v, events = %v, expected an immediate restart", res.State.Phase, res.Events)
	}
}

func TestPauseAndResume(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	res := step(g, 0, core.ActionPause)
	if res.State.Phase != core.PhasePaused || !hasEvent(res.Events, core.EventPaused) {
		t.Fatalf("Phase = %v, events = %v, expected PAUSED", res.State.Phase, res.Events)
	}
	d := res.State.Distance

	if res = step(g, 1000); res.State.Distance != d {
		t.Errorf("Distance moved from %v to %v while paused", d, res.State.Distance)
	}

	res = step(g, 0, core.ActionPause)
	if res.State.Phase != core.PhasePlaying || !hasEvent(res.Events, core.EventResumed) {
		t.Fatalf("Phase = %v, events = %v, expected PLAYING", res.State.Phase, res.Events)
	}
	// The paused second is not replayed.
	res = step(g, 16)
	if gained := res.State.Distance - d; gained <= 0 || gained > 10 {
		t.Errorf("Distance gained %v over one tick after resume", gained)
	}
}

func TestPauseMidJumpKeepsArc(t *testing.T) {
	// landAfter counts 16ms ticks from the jump to the landing, pausing for
	// half a second before tick pauseAt.
	landAfter := func(pauseAt int) int {
		g := newTestGame(t)
		startRun(t, g)
		step(g, 16, core.ActionJumpPressed)
		for i := 1; i < 500; i++ {
			if i == pauseAt {
				step(g, 0, core.ActionPause)
				step(g, 500)
				step(g, 0, core.ActionPause)
				if g.Character().Status() != StatusJumping {
					t.Errorf("Status after resume = %v, expected JUMPING", g.Character().Status())
				}
			}
			step(g, 16)
			if !g.Character().Jumping {
				return i
			}
		}
		return -1
	}

	plain := landAfter(-1)
	if plain <= 5 {
		t.Fatalf("plain jump landed after %d ticks", plain)
	}
	if paused := landAfter(5); paused != plain {
		t.Errorf("paused jump landed after %d ticks, expected %d", paused, plain)
	}
}

func TestPauseMidDuckKeepsDuck(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	step(g, 16, core.ActionDuckPressed)
	step(g, 0, core.ActionPause)
	step(g, 0, core.ActionPause)
	if c := g.Character(); !c.Ducking || c.Status() != StatusDucking {
		t.Fatalf("Ducking/Status after resume = %v/%v, expected true/DUCKING", c.Ducking, c.Status())
	}

	step(g, 16, core.ActionDuckReleased)
	if g.Character().Ducking {
		t.Fatal("Ducking = true after the duck release")
	}
	step(g, 16, core.ActionJumpPressed)
	if !g.Character().Jumping {
		t.Error("jump refused after a paused duck")
	}
}

func TestJumpReleaseResumesPause(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	g.Stop()
	if g.State().Phase != core.PhasePaused {
		t.Fatalf("Phase = %v, expected PAUSED", g.State().Phase)
	}
	if res := step(g, 0, core.ActionJumpReleased); res.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, expected PLAYING", res.State.Phase)
	}
}

func TestFocusAutoPause(t *testing.T) {
	g := newTestGame(t)

	// Before the run formally starts, focus changes are ignored.
	if res := step(g, 16, core.ActionFocusLost); res.State.Phase != core.PhaseWaiting {
		t.Errorf("Phase = %v, expected WAITING", res.State.Phase)
	}

	startRun(t, g)
	if res := step(g, 16, core.ActionFocusLost); res.State.Phase != core.PhasePaused {
		t.Errorf("Phase = %v after focus loss, expected PAUSED", res.State.Phase)
	}
	if res := step(g, 16, core.ActionFocusGained); res.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v after focus gain, expected PLAYING", res.State.Phase)
	}

	crash(t, g)
	if res := step(g, 16, core.ActionFocusGained); res.State.Phase != core.PhaseCrashed {
		t.Errorf("Phase = %v after focus gain while crashed, expected CRASHED", res.State.Phase)
	}
}

func TestDuckActions(t *testing.T) {
	g := newTestGame(t)

	// Ducking before the game runs is ignored.
	step(g, 16, core.ActionDuckPressed)
	if g.Character().Ducking {
		t.Error("ducking while waiting")
	}

	startRun(t, g)
	step(g, 16, core.ActionDuckPressed)
	if !g.Character().Ducking {
		t.Error("Ducking = false after duck press")
	}
	step(g, 16, core.ActionDuckReleased)
	if g.Character().Ducking {
		t.Error("Ducking = true after duck release")
	}

	step(g, 16, core.ActionJumpPressed)
	step(g, 16)
	step(g, 16, core.ActionDuckPressed)
	if !g.Character().SpeedDrop {
		t.Error("SpeedDrop = false after duck press mid-air")
	}
}

func TestUpdateSetting(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		name     string
		setting  string
		value    float64
		expected bool
	}{
		{"gravity", "GRAVITY", 0.8, true},
		{"jump velocity", "INITIAL_JUMP_VELOCITY", 12, true},
		{"min jump height", "MIN_JUMP_HEIGHT", 40, true},
		{"speed drop", "SPEED_DROP_COEFFICIENT", 2, true},
		{"speed", "SPEED", 6, true},
		{"gap", "GAP_COEFFICIENT", 0.8, true},
		{"unknown", "WARP_FACTOR", 9, false},
		{"nan", "GRAVITY", math.NaN(), false},
		{"infinite", "SPEED", math.Inf(1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.UpdateSetting(tc.setting, tc.value); got != tc.expected {
				t.Errorf("UpdateSetting(%s, %v) = %v, expected %v", tc.setting, tc.value, got, tc.expected)
			}
		})
	}

	c := g.Character()
	if c.cfg.Gravity != 0.8 || c.cfg.InitialJumpVelocity != -12 || c.cfg.DropVelocity != -6 {
		t.Errorf("character cfg = %+v", c.cfg)
	}
	if g.State().Speed != 6 {
		t.Errorf("Speed = %v, expected 6", g.State().Speed)
	}
}

func TestResize(t *testing.T) {
	g := newTestGame(t)
	g.Resize(300)
	g.UpdateSetting("SPEED", 5)
	if s := g.State().Speed; math.Abs(s-3) > 1e-9 {
		t.Errorf("Speed on a narrow field = %v, expected 3", s)
	}

	g.Resize(2000)
	if g.Width() != 600 {
		t.Errorf("Width = %d, expected 600", g.Width())
	}
	g.Resize(0)
	if g.Width() != 600 {
		t.Errorf("Width = %d after Resize(0), expected 600", g.Width())
	}

	startRun(t, g)
	g.Resize(500)
	if g.State().Phase != core.PhasePaused {
		t.Errorf("Phase = %v after resizing mid-run, expected PAUSED", g.State().Phase)
	}
	if g.Meter().X != 500-11*6 {
		t.Errorf("meter X = %d, expected %d", g.Meter().X, 500-11*6)
	}
}

func TestIdleLoopStopsAfterBlinks(t *testing.T) {
	g := newTestGame(t)
	for range 10000 {
		step(g, 16)
	}
	if g.scheduled {
		t.Error("idle loop still scheduled after the blink budget")
	}
	if g.Character().BlinkCount != g.cfg.Runner.MaxBlinkCount {
		t.Errorf("BlinkCount = %d, expected %d", g.Character().BlinkCount, g.cfg.Runner.MaxBlinkCount)
	}

	if res := step(g, 16, core.ActionJumpPressed); !res.State.Running {
		t.Errorf("Running = false after the first jump, state = %+v", res.State)
	}
}

func TestInvertCycle(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	g.distanceRan = 28000 // 700 units

	g.events = nil
	g.updateInvert(16)
	if !g.inverted || !hasEvent(g.events, core.EventInvert) {
		t.Fatalf("inverted = %v, events = %v, expected night", g.inverted, g.events)
	}

	g.updateInvert(g.cfg.Runner.InvertFadeDuration)
	if !g.inverted {
		t.Error("night ended before the fade duration")
	}
	g.updateInvert(16)
	if g.inverted || g.invertTimer != 0 {
		t.Errorf("inverted = %v, timer = %v, expected day", g.inverted, g.invertTimer)
	}
}

func TestInvertTriggersOnCrossing(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	// 699 units, then a tick that jumps straight to 702.
	g.distanceRan = 27960
	g.updateInvert(16)
	if g.inverted {
		t.Fatal("night before the invert distance")
	}
	g.distanceRan = 28080
	g.events = nil
	g.updateInvert(16)
	if !g.inverted || !hasEvent(g.events, core.EventInvert) {
		t.Fatalf("inverted = %v, events = %v, expected night after passing 700", g.inverted, g.events)
	}

	// Night ends and does not come back until the next multiple.
	g.updateInvert(g.cfg.Runner.InvertFadeDuration)
	g.updateInvert(16)
	g.distanceRan = 40000
	g.updateInvert(16)
	if g.inverted {
		t.Error("night again before 1400")
	}
	g.distanceRan = 56200
	g.updateInvert(16)
	if !g.inverted {
		t.Error("no night after passing 1400")
	}
}

func TestMilestonesAtLowTickRate(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)
	g.UpdateSetting("SPEED", 13)
	g.UpdateSetting("ACCELERATION", 0)

	milestones := 0
	for range 600 {
		// Keep the track clear so the run never ends.
		g.horizon.Obstacles = nil
		res := step(g, 50)
		for _, e := range res.Events {
			if e.Kind == core.EventMilestone {
				milestones++
			}
		}
	}

	score := g.State().Score
	if score < 500 {
		t.Fatalf("score = %d after 600 ticks, expected at least 500", score)
	}
	if expected := score / g.cfg.DistanceMeter.AchievementDistance; milestones != expected {
		t.Errorf("milestones = %d for score %d, expected %d", milestones, score, expected)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []core.GameState {
		g := newTestGame(t)
		var states []core.GameState
		for i := range 3000 {
			var actions []core.Action
			switch i % 45 {
			case 0:
				actions = append(actions, core.ActionJumpPressed)
			case 8:
				actions = append(actions, core.ActionJumpReleased)
			}
			states = append(states, step(g, 16, actions...).State)
		}
		return states
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: %+v != %+v", i, a[i], b[i])
		}
	}
}
