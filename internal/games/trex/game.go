// Package trex implements the side-scrolling T-rex runner: a character that
// jumps and ducks past procedurally generated obstacles on an endless horizon.
package trex

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as is.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game is the runner orchestrator. It owns the clock, the character, the
// horizon and the distance meter and drives them one tick at a time.
type Game struct {
	cfg     config.RunnerConfig
	fixed   bool // cfg supplied by the caller instead of loaded
	runtime core.RuntimeConfig
	rng     Random
	ready   bool

	width, height int
	msPerFrame    float64
	sheet         spriteSheet

	clock   SimClock
	char    *Character
	horizon *Horizon
	meter   *DistanceMeter

	speed        float64
	distanceRan  float64
	highestScore float64

	playing      bool
	paused       bool
	crashed      bool
	activated    bool
	playingIntro bool
	scheduled    bool
	autoPause    bool

	introElapsed float64
	crashElapsed float64
	playCount    int

	inverted      bool
	invertTrigger bool
	invertTimer   float64
	lastInvert    int // invert distance multiples already passed this run

	debugBoxes bool
	events     []core.Event
}

// New creates a runner that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a runner with an explicit configuration.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "T-Rex Runner"
}

// Reset builds a fresh session: new world, zero distance, no high score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.resetWith(runtime, rand.New(rand.NewSource(runtime.Seed)))
}

func (g *Game) resetWith(runtime core.RuntimeConfig, rng Random) {
	g.runtime = runtime
	g.rng = rng

	if !g.fixed {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRunnerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	r := g.cfg.Runner
	g.width = r.Width
	g.height = r.Height
	g.msPerFrame = 1000 / r.FPS
	g.sheet = newSpriteSheet(r.HiDPI)

	g.clock = SimClock{}
	g.char = NewCharacter(g.cfg.Character, r.Height, r.BottomPad, rng)
	g.horizon = NewHorizon(&g.cfg, g.width, rng)
	g.meter = NewDistanceMeter(g.cfg.DistanceMeter, g.width)

	g.distanceRan = 0
	g.highestScore = 0
	g.playing, g.paused, g.crashed = false, false, false
	g.activated, g.playingIntro, g.autoPause = false, false, false
	g.introElapsed, g.crashElapsed = 0, 0
	g.playCount = 0
	g.inverted, g.invertTrigger, g.invertTimer, g.lastInvert = false, false, 0, 0
	g.setSpeed(r.Speed)

	// The idle loop runs until the character has blinked enough.
	g.scheduled = true
	g.ready = true
}

// Step advances the host clock by dt, applies the input in order, then runs
// one simulation tick if one is scheduled.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if !g.ready {
		panic("trex: Step called before Reset")
	}
	g.events = nil

	ms := float64(dt) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	g.clock.Advance(ms)
	if g.crashed {
		g.crashElapsed += ms
	}

	for _, a := range in.Actions {
		g.handleAction(a)
	}

	if g.scheduled {
		g.update()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update is one tick: physics, horizon, collision, score and speed, then animation.
func (g *Game) update() {
	g.scheduled = false
	delta := g.clock.Tick()

	if g.playing {
		if g.char.Jumping {
			g.char.UpdateJump(delta)
		}

		g.clock.RunningTime += delta
		hasObstacles := g.clock.RunningTime > g.cfg.Runner.ClearTime

		// The first landed jump starts the intro.
		if g.char.JumpCount == 1 && !g.playingIntro {
			g.playIntro()
		}

		if g.playingIntro {
			g.horizon.Update(0, g.speed, hasObstacles, false)
		} else {
			if !g.activated {
				delta = 0
			}
			g.horizon.Update(delta, g.speed, hasObstacles, g.inverted)
		}

		collided := false
		if hasObstacles && len(g.horizon.Obstacles) > 0 {
			_, collided = CheckCollision(g.char, g.horizon.Obstacles[0])
		}

		if !collided {
			g.distanceRan += g.speed * delta / g.msPerFrame
			if g.speed < g.cfg.Runner.MaxSpeed {
				g.speed = math.Min(g.speed+g.cfg.Runner.Acceleration, g.cfg.Runner.MaxSpeed)
			}
		} else {
			g.gameOver()
		}

		if g.meter.Update(delta, math.Ceil(g.distanceRan)) {
			g.sound(core.CueScore)
			g.emit(core.Event{Kind: core.EventMilestone, Value: g.meter.ActualDistance(math.Ceil(g.distanceRan))})
		}

		g.updateInvert(delta)

		if g.playingIntro {
			g.introElapsed += delta
			if g.introElapsed >= g.cfg.Runner.IntroDuration {
				g.startGame()
			}
		}
	}

	if g.playing || (!g.activated && g.char.BlinkCount < g.cfg.Runner.MaxBlinkCount) {
		g.char.Update(delta)
		g.scheduled = true
	}
}

// updateInvert runs the day/night timer. Night starts whenever the score
// passes a multiple of the invert distance and lasts for the fade duration.
func (g *Game) updateInvert(delta float64) {
	switch {
	case g.invertTimer > g.cfg.Runner.InvertFadeDuration:
		g.invertTimer = 0
		g.invertTrigger = false
		g.invert(false)
	case g.invertTimer != 0:
		g.invertTimer += delta
	default:
		actual := g.meter.ActualDistance(math.Ceil(g.distanceRan))
		if bucket := actual / g.cfg.Runner.InvertDistance; bucket > g.lastInvert {
			g.lastInvert = bucket
			g.invertTrigger = true
			g.invertTimer += delta
			g.invert(false)
		}
	}
}

// invert applies the trigger to the colour state, or clears it on reset.
func (g *Game) invert(reset bool) {
	was := g.inverted
	if reset {
		g.inverted = false
		g.invertTimer = 0
		g.lastInvert = 0
	} else {
		g.inverted = g.invertTrigger
	}
	if g.inverted != was {
		v := 0
		if g.inverted {
			v = 1
		}
		g.emit(core.Event{Kind: core.EventInvert, Value: v})
	}
}

func (g *Game) playIntro() {
	if !g.activated && !g.crashed {
		g.playingIntro = true
		g.char.PlayingIntro = true
		g.introElapsed = 0
		g.playing = true
		g.activated = true
	} else if g.crashed {
		g.restart()
	}
}

// startGame ends the intro: the run formally begins and focus loss now pauses it.
func (g *Game) startGame() {
	g.clock.RunningTime = 0
	g.playingIntro = false
	g.char.FinishIntro()
	g.playCount++
	g.autoPause = true
	g.emit(core.Event{Kind: core.EventStarted, Value: g.playCount})
}

func (g *Game) gameOver() {
	g.sound(core.CueHit)
	g.stop()
	g.crashed = true
	g.crashElapsed = 0
	g.meter.CancelAchievement()
	g.char.Crash()

	if g.distanceRan > g.highestScore {
		g.highestScore = math.Ceil(g.distanceRan)
		g.meter.SetHighScore(g.highestScore)
	}
	g.emit(core.Event{Kind: core.EventCrashed, Value: g.meter.ActualDistance(math.Ceil(g.distanceRan))})
}

func (g *Game) stop() {
	g.playing = false
	g.paused = true
	g.scheduled = false
}

func (g *Game) play() {
	if g.crashed {
		return
	}
	g.playing = true
	g.paused = false
	g.char.Run()
	g.clock.Resync()
	g.scheduled = true
}

func (g *Game) restart() {
	if g.scheduled {
		return
	}
	g.playCount++
	g.clock.RunningTime = 0
	g.playing = true
	g.paused = false
	g.crashed = false
	g.distanceRan = 0
	g.setSpeed(g.cfg.Runner.Speed)
	g.clock.Resync()
	g.meter.Reset()
	g.horizon.Reset()
	g.char.Reset()
	g.sound(core.CueButtonPress)
	g.invert(true)
	g.scheduled = true
	g.emit(core.Event{Kind: core.EventRestarted, Value: g.playCount})
}

// setSpeed applies a new speed, slowed down on play fields narrower than the default.
func (g *Game) setSpeed(s float64) {
	if g.width < g.cfg.Runner.Width {
		mobile := s * float64(g.width) / float64(g.cfg.Runner.Width) * g.cfg.Runner.MobileSpeedCoefficient
		g.speed = math.Min(mobile, s)
		return
	}
	g.speed = s
}

func (g *Game) sound(c core.Cue) {
	g.emit(core.Event{Kind: core.EventSound, Cue: c})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Play resumes a paused run. It does nothing after a crash.
func (g *Game) Play() {
	if g.paused && !g.crashed {
		g.play()
		g.emit(core.Event{Kind: core.EventResumed})
	}
}

// Stop pauses the run.
func (g *Game) Stop() {
	if g.playing {
		g.stop()
		g.emit(core.Event{Kind: core.EventPaused})
	}
}

// Restart begins a new run after a crash. The high score is kept.
func (g *Game) Restart() {
	if g.crashed {
		g.restart()
	}
}

// Resize changes the play field width, clamped to the configured width.
// A run in progress is paused.
func (g *Game) Resize(widthPx int) {
	if widthPx <= 0 {
		return
	}
	g.width = min(widthPx, g.cfg.Runner.Width)
	g.meter.CalcXPos(g.width)
	g.horizon.Resize(g.width)
	if g.playing || g.crashed || g.paused {
		g.Stop()
	}
}

// SetDebugBoxes toggles drawing of collision boxes.
func (g *Game) SetDebugBoxes(on bool) {
	g.debugBoxes = on
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if !g.ready {
		return core.GameState{}
	}
	return core.GameState{
		Phase:     g.phase(),
		Score:     g.meter.ActualDistance(math.Ceil(g.distanceRan)),
		HighScore: g.meter.ActualDistance(g.highestScore),
		Distance:  g.distanceRan,
		Speed:     g.speed,
		Inverted:  g.inverted,
		PlayCount: g.playCount,
		GameOver:  g.crashed,
		Paused:    g.paused && !g.crashed,
		Running:   g.playing,
	}
}

func (g *Game) phase() core.Phase {
	switch {
	case g.crashed:
		return core.PhaseCrashed
	case g.paused:
		return core.PhasePaused
	case g.playingIntro:
		return core.PhaseIntro
	case g.playing && g.activated:
		return core.PhasePlaying
	default:
		return core.PhaseWaiting
	}
}

// Character exposes the runner avatar for inspection.
func (g *Game) Character() *Character {
	return g.char
}

// Horizon exposes the background and obstacles for inspection.
func (g *Game) Horizon() *Horizon {
	return g.horizon
}

// Meter exposes the distance meter for inspection.
func (g *Game) Meter() *DistanceMeter {
	return g.meter
}

// Width returns the current play field width in pixels.
func (g *Game) Width() int {
	return g.width
}

// Height returns the play field height in pixels.
func (g *Game) Height() int {
	return g.height
}

// Register the game with the registry
func init() {
	registry.Register("trex", func() registry.Game {
		return New()
	})
}
