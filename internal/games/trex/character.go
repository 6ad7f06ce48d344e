package trex

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Status is the animation state of the character.
type Status int

const (
	StatusWaiting Status = iota
	StatusRunning
	StatusJumping
	StatusDucking
	StatusCrashed
)

// String returns the upper-case status name.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusRunning:
		return "RUNNING"
	case StatusJumping:
		return "JUMPING"
	case StatusDucking:
		return "DUCKING"
	case StatusCrashed:
		return "CRASHED"
	default:
		return "UNKNOWN"
	}
}

// Character is the T-rex: jump physics, ducking and sprite animation.
// X is fixed once the intro finishes; Y grows downwards and never exceeds GroundY.
type Character struct {
	cfg config.CharacterConfig
	rng Random

	XPos, YPos    int
	GroundY       int
	minJumpHeight int
	Velocity      float64

	Jumping          bool
	Ducking          bool
	ReachedMinHeight bool
	SpeedDrop        bool
	PlayingIntro     bool
	JumpCount        int

	status       Status
	anim         config.Animation
	currentFrame int
	timer        float64

	blinkDelay   float64
	blinkElapsed float64
	BlinkCount   int
}

// NewCharacter places a waiting character on the ground of a canvas of the given height.
func NewCharacter(cfg config.CharacterConfig, canvasHeight, bottomPad int, rng Random) *Character {
	c := &Character{cfg: cfg, rng: rng}
	c.GroundY = canvasHeight - cfg.Height - bottomPad
	c.YPos = c.GroundY
	c.minJumpHeight = c.GroundY - cfg.MinJumpHeight
	c.setStatus(StatusWaiting)
	return c
}

// Status returns the current animation state.
func (c *Character) Status() Status {
	return c.status
}

// animation returns the frame table of a status.
func (c *Character) animation(s Status) config.Animation {
	a := c.cfg.Animations
	switch s {
	case StatusRunning:
		return a.Running
	case StatusJumping:
		return a.Jumping
	case StatusDucking:
		return a.Ducking
	case StatusCrashed:
		return a.Crashed
	default:
		return a.Waiting
	}
}

func (c *Character) setStatus(s Status) {
	c.status = s
	c.currentFrame = 0
	c.anim = c.animation(s)
	if s == StatusWaiting {
		c.blinkElapsed = 0
		c.setBlinkDelay()
	}
}

func (c *Character) setBlinkDelay() {
	c.blinkDelay = math.Ceil(c.rng.Float64() * c.cfg.BlinkTiming)
}

// Update advances the animation timer, the intro slide and the idle blink.
func (c *Character) Update(dt float64) {
	c.timer += dt

	if c.PlayingIntro && c.XPos < c.cfg.StartXPos {
		step := core.RoundHalfUp(float64(c.cfg.StartXPos) / c.cfg.IntroDuration * dt)
		c.XPos = min(c.XPos+step, c.cfg.StartXPos)
	}

	if c.status == StatusWaiting {
		c.blink(dt)
	}

	if c.timer >= c.anim.MsPerFrame {
		c.currentFrame++
		if c.currentFrame >= len(c.anim.Frames) {
			c.currentFrame = 0
		}
		c.timer = 0
	}

	// A fast fall with duck still held turns into a duck on the ground.
	if c.SpeedDrop && !c.Jumping && c.YPos == c.GroundY {
		c.SpeedDrop = false
		c.SetDuck(true)
	}
}

func (c *Character) blink(dt float64) {
	c.blinkElapsed += dt
	if c.blinkElapsed >= c.blinkDelay && c.currentFrame == 1 {
		c.setBlinkDelay()
		c.blinkElapsed = 0
		c.BlinkCount++
	}
}

// Blinking reports whether the idle blink animation is showing.
func (c *Character) Blinking() bool {
	return c.status == StatusWaiting && c.blinkElapsed >= c.blinkDelay
}

// SpriteOffset returns the x offset of the frame to draw.
func (c *Character) SpriteOffset() int {
	if c.status == StatusWaiting && !c.Blinking() {
		return 0
	}
	return c.anim.Frames[c.currentFrame]
}

// Width returns the sprite width for the current pose.
func (c *Character) Width() int {
	if c.Ducking && c.status != StatusCrashed {
		return c.cfg.WidthDuck
	}
	return c.cfg.Width
}

// Height returns the sprite height. The ducking sprite keeps the full height.
func (c *Character) Height() int {
	return c.cfg.Height
}

// CollisionBoxes returns the owner-relative hit boxes for the current pose.
func (c *Character) CollisionBoxes() []core.Rect {
	if c.Ducking {
		return c.cfg.CollisionBoxes.Ducking
	}
	return c.cfg.CollisionBoxes.Running
}

// StartJump launches a jump; faster runs jump harder. Ignored mid-air.
func (c *Character) StartJump(speed float64) {
	if c.Jumping {
		return
	}
	c.setStatus(StatusJumping)
	c.Velocity = c.cfg.InitialJumpVelocity - speed/10
	c.Jumping = true
	c.ReachedMinHeight = false
	c.SpeedDrop = false
}

// EndJump caps the upward velocity once the minimum height is reached.
func (c *Character) EndJump() {
	if c.ReachedMinHeight && c.Velocity < c.cfg.DropVelocity {
		c.Velocity = c.cfg.DropVelocity
	}
}

// UpdateJump integrates the jump arc over dt milliseconds.
func (c *Character) UpdateJump(dt float64) {
	framesElapsed := dt / c.animation(c.status).MsPerFrame

	if c.SpeedDrop {
		c.YPos += core.RoundHalfUp(c.Velocity * c.cfg.SpeedDropCoefficient * framesElapsed)
	} else {
		c.YPos += core.RoundHalfUp(c.Velocity * framesElapsed)
	}
	c.Velocity += c.cfg.Gravity * framesElapsed

	if c.YPos < c.minJumpHeight || c.SpeedDrop {
		c.ReachedMinHeight = true
	}
	if c.YPos < c.cfg.MaxJumpHeight || c.SpeedDrop {
		c.EndJump()
	}
	if c.YPos > c.GroundY {
		c.land()
	}
}

// land puts the character back on the ground after a jump.
// The speed drop flag survives so Update can turn it into a duck.
func (c *Character) land() {
	drop := c.SpeedDrop
	c.YPos = c.GroundY
	c.Velocity = 0
	c.Jumping = false
	c.Ducking = false
	c.ReachedMinHeight = false
	c.setStatus(StatusRunning)
	c.SpeedDrop = drop
	c.JumpCount++
}

// SetSpeedDrop cancels the jump with an instant fast fall.
func (c *Character) SetSpeedDrop() {
	c.SpeedDrop = true
	c.Velocity = 1
}

// SetDuck enters or leaves the ducking pose. Ducking is refused mid-air.
func (c *Character) SetDuck(on bool) {
	switch {
	case on && c.status != StatusDucking && !c.Jumping:
		c.setStatus(StatusDucking)
		c.Ducking = true
	case !on && c.status == StatusDucking:
		c.setStatus(StatusRunning)
		c.Ducking = false
	}
}

// Crash switches to the crashed pose.
func (c *Character) Crash() {
	c.timer += 100
	c.setStatus(StatusCrashed)
}

// Run leaves the crashed or waiting pose. A character caught mid-jump or
// ducking keeps that pose so jump timing and duck release still work.
func (c *Character) Run() {
	switch {
	case c.Jumping:
		c.setStatus(StatusJumping)
	case c.Ducking:
		c.setStatus(StatusDucking)
	default:
		c.setStatus(StatusRunning)
	}
}

// Reset returns the character to a running stance on the ground.
func (c *Character) Reset() {
	c.YPos = c.GroundY
	c.Velocity = 0
	c.Jumping = false
	c.Ducking = false
	c.ReachedMinHeight = false
	c.setStatus(StatusRunning)
	c.SpeedDrop = false
	c.JumpCount = 0
}

// SetJumpVelocity sets the launch speed; the drop velocity follows at half.
func (c *Character) SetJumpVelocity(v float64) {
	c.cfg.InitialJumpVelocity = -v
	c.cfg.DropVelocity = -v / 2
}

// SetGravity changes the downward acceleration per frame.
func (c *Character) SetGravity(g float64) {
	c.cfg.Gravity = g
}

// SetMinJumpHeight changes how high a jump must rise before it can be cut short.
func (c *Character) SetMinJumpHeight(h int) {
	c.cfg.MinJumpHeight = h
	c.minJumpHeight = c.GroundY - h
}

// SetSpeedDropCoefficient changes the fast fall multiplier.
func (c *Character) SetSpeedDropCoefficient(v float64) {
	c.cfg.SpeedDropCoefficient = v
}

// FinishIntro snaps the character to its running position.
func (c *Character) FinishIntro() {
	c.PlayingIntro = false
	c.XPos = c.cfg.StartXPos
}
