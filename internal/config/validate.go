package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Validate reports the first setting that would leave the runner unplayable.
func (c RunnerConfig) Validate() error {
	r := c.Runner
	switch {
	case r.FPS <= 0:
		return errors.New("runner.fps must be positive")
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("runner dimensions must be positive, got %dx%d", r.Width, r.Height)
	case r.Speed <= 0 || r.Speed > r.MaxSpeed:
		return fmt.Errorf("runner.speed must be in (0, max_speed], got %v", r.Speed)
	case r.Acceleration < 0:
		return errors.New("runner.acceleration must not be negative")
	case r.MaxObstacleLength < 1:
		return errors.New("runner.max_obstacle_length must be at least 1")
	case r.MaxObstacleDuplication < 1:
		return errors.New("runner.max_obstacle_duplication must be at least 1")
	case r.MaxGapCoefficient < 1:
		return errors.New("runner.max_gap_coefficient must be at least 1")
	case r.InvertDistance <= 0:
		return errors.New("runner.invert_distance must be positive")
	}

	if err := c.Character.validate(); err != nil {
		return fmt.Errorf("character: %w", err)
	}

	if len(c.Obstacles) == 0 {
		return errors.New("obstacles: table is empty")
	}
	eligible := false
	for i, o := range c.Obstacles {
		if err := o.validate(); err != nil {
			return fmt.Errorf("obstacles[%d] %s: %w", i, o.Type, err)
		}
		if o.MinSpeed <= r.Speed {
			eligible = true
		}
	}
	if !eligible {
		return fmt.Errorf("obstacles: no type can spawn at initial speed %v", r.Speed)
	}

	switch {
	case c.Horizon.Width <= 0 || c.Horizon.Height <= 0:
		return errors.New("horizon dimensions must be positive")
	case c.Cloud.MinGap > c.Cloud.MaxGap:
		return errors.New("cloud.min_gap exceeds cloud.max_gap")
	case c.Cloud.MaxSkyLevel > c.Cloud.MinSkyLevel:
		return errors.New("cloud.max_sky_level must be above cloud.min_sky_level")
	case len(c.NightMode.Phases) == 0:
		return errors.New("night_mode.phases is empty")
	case c.NightMode.FadeSpeed <= 0:
		return errors.New("night_mode.fade_speed must be positive")
	case c.DistanceMeter.MaxDistanceUnits < 1:
		return errors.New("distance_meter.max_distance_units must be at least 1")
	case c.DistanceMeter.AchievementDistance <= 0:
		return errors.New("distance_meter.achievement_distance must be positive")
	case c.DistanceMeter.Coefficient <= 0:
		return errors.New("distance_meter.coefficient must be positive")
	}
	return nil
}

func (c CharacterConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.WidthDuck <= 0 || c.HeightDuck <= 0 {
		return errors.New("sprite dimensions must be positive")
	}
	if c.Gravity <= 0 {
		return errors.New("gravity must be positive")
	}
	if c.InitialJumpVelocity >= 0 {
		return errors.New("initial_jump_velocity must be negative (upwards)")
	}
	anims := map[string]Animation{
		"waiting": c.Animations.Waiting,
		"running": c.Animations.Running,
		"crashed": c.Animations.Crashed,
		"jumping": c.Animations.Jumping,
		"ducking": c.Animations.Ducking,
	}
	for name, a := range anims {
		if len(a.Frames) == 0 || a.MsPerFrame <= 0 {
			return fmt.Errorf("animation %s needs frames and a positive ms_per_frame", name)
		}
	}
	if len(c.CollisionBoxes.Running) == 0 || len(c.CollisionBoxes.Ducking) == 0 {
		return errors.New("collision boxes are required for running and ducking")
	}
	if err := boxesWithin(c.CollisionBoxes.Running, c.Width, c.Height); err != nil {
		return fmt.Errorf("running %w", err)
	}
	return boxesWithin(c.CollisionBoxes.Ducking, c.WidthDuck, c.Height)
}

func (o ObstacleType) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return errors.New("dimensions must be positive")
	case len(o.YPos) == 0:
		return errors.New("y_pos is empty")
	case len(o.CollisionBoxes) == 0:
		return errors.New("collision_boxes is empty")
	case o.NumFrames > 1 && o.FrameRate <= 0:
		return errors.New("animated obstacles need a positive frame_rate_ms")
	case math.IsNaN(o.MinSpeed) || math.IsNaN(o.MultipleSpeed):
		return errors.New("speeds must be numbers")
	}
	return boxesWithin(o.CollisionBoxes, o.Width, o.Height)
}

func boxesWithin(boxes []core.Rect, w, h int) error {
	for i, b := range boxes {
		if b.W <= 0 || b.H <= 0 || b.X < 0 || b.Y < 0 || b.Right() > w || b.Bottom() > h {
			return fmt.Errorf("collision box %d %+v does not fit %dx%d", i, b, w, h)
		}
	}
	return nil
}
