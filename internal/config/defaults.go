package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed defaults/trex.yaml
var defaultRunnerYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Runner: RunnerSettings{
			FPS:                    80,
			Width:                  600,
			Height:                 150,
			Speed:                  5,
			MaxSpeed:               13,
			Acceleration:           0.001,
			BottomPad:              10,
			ClearTime:              3000,
			GameOverClearTime:      750,
			GapCoefficient:         0.6,
			MaxGapCoefficient:      1.5,
			InvertFadeDuration:     12000,
			InvertDistance:         700,
			MaxBlinkCount:          3,
			MaxObstacleLength:      3,
			MaxObstacleDuplication: 2,
			MobileSpeedCoefficient: 1.2,
			IntroDuration:          400,
		},
		Character: CharacterConfig{
			DropVelocity:         -5,
			Gravity:              0.6,
			Height:               47,
			HeightDuck:           25,
			InitialJumpVelocity:  -10,
			IntroDuration:        1500,
			MaxJumpHeight:        30,
			MinJumpHeight:        30,
			SpeedDropCoefficient: 3,
			StartXPos:            50,
			Width:                44,
			WidthDuck:            59,
			BlinkTiming:          7000,
			Animations: CharacterAnimations{
				Waiting: Animation{Frames: []int{44, 0}, MsPerFrame: 1000.0 / 3},
				Running: Animation{Frames: []int{88, 132}, MsPerFrame: 1000.0 / 12},
				Crashed: Animation{Frames: []int{220}, MsPerFrame: 1000.0 / 60},
				Jumping: Animation{Frames: []int{0}, MsPerFrame: 1000.0 / 60},
				Ducking: Animation{Frames: []int{264, 323}, MsPerFrame: 1000.0 / 8},
			},
			CollisionBoxes: CharacterCollisionBoxes{
				Ducking: []core.Rect{
					{X: 1, Y: 18, W: 55, H: 25},
				},
				Running: []core.Rect{
					{X: 22, Y: 0, W: 17, H: 16},
					{X: 1, Y: 18, W: 30, H: 9},
					{X: 10, Y: 35, W: 14, H: 8},
					{X: 1, Y: 24, W: 29, H: 5},
					{X: 5, Y: 30, W: 21, H: 4},
					{X: 9, Y: 34, W: 15, H: 4},
				},
			},
		},
		Obstacles: []ObstacleType{
			{
				Type:          "CACTUS_SMALL",
				Width:         17,
				Height:        35,
				YPos:          []int{105},
				MultipleSpeed: 4,
				MinGap:        120,
				CollisionBoxes: []core.Rect{
					{X: 0, Y: 7, W: 5, H: 27},
					{X: 4, Y: 0, W: 6, H: 34},
					{X: 10, Y: 4, W: 7, H: 14},
				},
			},
			{
				Type:          "CACTUS_LARGE",
				Width:         25,
				Height:        50,
				YPos:          []int{90},
				MultipleSpeed: 7,
				MinGap:        120,
				CollisionBoxes: []core.Rect{
					{X: 0, Y: 12, W: 7, H: 38},
					{X: 8, Y: 0, W: 7, H: 49},
					{X: 13, Y: 10, W: 10, H: 38},
				},
			},
			{
				Type:          "PTERODACTYL",
				Width:         46,
				Height:        40,
				YPos:          []int{100, 75, 50},
				MultipleSpeed: 999,
				MinGap:        150,
				MinSpeed:      8.5,
				CollisionBoxes: []core.Rect{
					{X: 15, Y: 15, W: 16, H: 5},
					{X: 18, Y: 21, W: 24, H: 6},
					{X: 2, Y: 14, W: 4, H: 3},
					{X: 6, Y: 10, W: 4, H: 7},
					{X: 10, Y: 8, W: 6, H: 9},
				},
				NumFrames:   2,
				FrameRate:   1000.0 / 6,
				SpeedOffset: 0.8,
			},
		},
		Horizon: HorizonLineConfig{
			Width:         600,
			Height:        12,
			YPos:          127,
			BumpThreshold: 0.5,
		},
		Cloud: CloudConfig{
			Width:       46,
			Height:      14,
			Speed:       0.2,
			Frequency:   0.5,
			MaxClouds:   6,
			MinGap:      100,
			MaxGap:      400,
			MaxSkyLevel: 30,
			MinSkyLevel: 71,
		},
		NightMode: NightModeConfig{
			FadeSpeed: 0.035,
			Width:     20,
			Height:    40,
			MoonSpeed: 0.25,
			NumStars:  2,
			StarSize:  9,
			StarSpeed: 0.3,
			StarMaxY:  70,
			Phases:    []int{140, 120, 100, 60, 40, 20, 0},
		},
		DistanceMeter: DistanceMeterConfig{
			MaxDistanceUnits:    5,
			AchievementDistance: 100,
			Coefficient:         0.025,
			FlashDuration:       250,
			FlashIterations:     3,
			DigitWidth:          10,
			DigitHeight:         13,
			DestWidth:           11,
		},
		GameOver: GameOverConfig{
			TextX:         0,
			TextY:         13,
			TextWidth:     191,
			TextHeight:    11,
			RestartWidth:  36,
			RestartHeight: 32,
		},
	}
}
