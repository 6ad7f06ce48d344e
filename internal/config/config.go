// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

import "github.com/vovakirdan/tui-runner/internal/core"

// RunnerConfig contains every tunable constant of the runner.
// Times are in milliseconds, distances in logical pixels.
type RunnerConfig struct {
	Runner        RunnerSettings      `yaml:"runner"`
	Character     CharacterConfig     `yaml:"character"`
	Obstacles     []ObstacleType      `yaml:"obstacles"`
	Horizon       HorizonLineConfig   `yaml:"horizon"`
	Cloud         CloudConfig         `yaml:"cloud"`
	NightMode     NightModeConfig     `yaml:"night_mode"`
	DistanceMeter DistanceMeterConfig `yaml:"distance_meter"`
	GameOver      GameOverConfig      `yaml:"game_over"`
}

// RunnerSettings holds the orchestrator constants.
type RunnerSettings struct {
	FPS                    float64 `yaml:"fps"`
	Width                  int     `yaml:"width"`
	Height                 int     `yaml:"height"`
	Speed                  float64 `yaml:"speed"`
	MaxSpeed               float64 `yaml:"max_speed"`
	Acceleration           float64 `yaml:"acceleration"`
	BottomPad              int     `yaml:"bottom_pad"`
	ClearTime              float64 `yaml:"clear_time_ms"`
	GameOverClearTime      float64 `yaml:"gameover_clear_time_ms"`
	GapCoefficient         float64 `yaml:"gap_coefficient"`
	MaxGapCoefficient      float64 `yaml:"max_gap_coefficient"`
	InvertFadeDuration     float64 `yaml:"invert_fade_duration_ms"`
	InvertDistance         int     `yaml:"invert_distance"`
	MaxBlinkCount          int     `yaml:"max_blink_count"`
	MaxObstacleLength      int     `yaml:"max_obstacle_length"`
	MaxObstacleDuplication int     `yaml:"max_obstacle_duplication"`
	MobileSpeedCoefficient float64 `yaml:"mobile_speed_coefficient"`
	IntroDuration          float64 `yaml:"intro_duration_ms"`
	HiDPI                  bool    `yaml:"hidpi"`
}

// Animation is a frame list with a fixed duration per frame.
// Frames are x offsets into the character sprite.
type Animation struct {
	Frames     []int   `yaml:"frames"`
	MsPerFrame float64 `yaml:"ms_per_frame"`
}

// CharacterAnimations holds one animation per character status.
type CharacterAnimations struct {
	Waiting Animation `yaml:"waiting"`
	Running Animation `yaml:"running"`
	Crashed Animation `yaml:"crashed"`
	Jumping Animation `yaml:"jumping"`
	Ducking Animation `yaml:"ducking"`
}

// CharacterCollisionBoxes are owner-relative hit boxes.
type CharacterCollisionBoxes struct {
	Ducking []core.Rect `yaml:"ducking"`
	Running []core.Rect `yaml:"running"`
}

// CharacterConfig defines physics and sprite geometry for the T-rex.
type CharacterConfig struct {
	DropVelocity         float64                 `yaml:"drop_velocity"`
	Gravity              float64                 `yaml:"gravity"`
	Height               int                     `yaml:"height"`
	HeightDuck           int                     `yaml:"height_duck"`
	InitialJumpVelocity  float64                 `yaml:"initial_jump_velocity"`
	IntroDuration        float64                 `yaml:"intro_duration_ms"`
	MaxJumpHeight        int                     `yaml:"max_jump_height"`
	MinJumpHeight        int                     `yaml:"min_jump_height"`
	SpeedDropCoefficient float64                 `yaml:"speed_drop_coefficient"`
	StartXPos            int                     `yaml:"start_x_pos"`
	Width                int                     `yaml:"width"`
	WidthDuck            int                     `yaml:"width_duck"`
	BlinkTiming          float64                 `yaml:"blink_timing_ms"`
	Animations           CharacterAnimations     `yaml:"animations"`
	CollisionBoxes       CharacterCollisionBoxes `yaml:"collision_boxes"`
}

// ObstacleType is one entry of the obstacle table.
type ObstacleType struct {
	Type           string      `yaml:"type"`
	Width          int         `yaml:"width"`
	Height         int         `yaml:"height"`
	YPos           []int       `yaml:"y_pos"`
	MultipleSpeed  float64     `yaml:"multiple_speed"`
	MinGap         float64     `yaml:"min_gap"`
	MinSpeed       float64     `yaml:"min_speed"`
	CollisionBoxes []core.Rect `yaml:"collision_boxes"`
	NumFrames      int         `yaml:"num_frames"`
	FrameRate      float64     `yaml:"frame_rate_ms"`
	SpeedOffset    float64     `yaml:"speed_offset"`
}

// HorizonLineConfig defines the scrolling ground.
type HorizonLineConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	YPos          int     `yaml:"y_pos"`
	BumpThreshold float64 `yaml:"bump_threshold"`
}

// CloudConfig defines background clouds.
type CloudConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Frequency   float64 `yaml:"frequency"`
	MaxClouds   int     `yaml:"max_clouds"`
	MinGap      int     `yaml:"min_gap"`
	MaxGap      int     `yaml:"max_gap"`
	MaxSkyLevel int     `yaml:"max_sky_level"`
	MinSkyLevel int     `yaml:"min_sky_level"`
}

// NightModeConfig defines the moon and stars.
type NightModeConfig struct {
	FadeSpeed float64 `yaml:"fade_speed"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MoonSpeed float64 `yaml:"moon_speed"`
	NumStars  int     `yaml:"num_stars"`
	StarSize  int     `yaml:"star_size"`
	StarSpeed float64 `yaml:"star_speed"`
	StarMaxY  int     `yaml:"star_max_y"`
	Phases    []int   `yaml:"phases"`
}

// DistanceMeterConfig defines the score display.
type DistanceMeterConfig struct {
	MaxDistanceUnits    int     `yaml:"max_distance_units"`
	AchievementDistance int     `yaml:"achievement_distance"`
	Coefficient         float64 `yaml:"coefficient"`
	FlashDuration       float64 `yaml:"flash_duration_ms"`
	FlashIterations     int     `yaml:"flash_iterations"`
	DigitWidth          int     `yaml:"digit_width"`
	DigitHeight         int     `yaml:"digit_height"`
	DestWidth           int     `yaml:"dest_width"`
}

// GameOverConfig defines the game over panel geometry.
type GameOverConfig struct {
	TextX         int `yaml:"text_x"`
	TextY         int `yaml:"text_y"`
	TextWidth     int `yaml:"text_width"`
	TextHeight    int `yaml:"text_height"`
	RestartWidth  int `yaml:"restart_width"`
	RestartHeight int `yaml:"restart_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
