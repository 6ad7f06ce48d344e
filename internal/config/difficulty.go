package config

import "github.com/vovakirdan/tui-runner/internal/core"

// presetScale describes how a preset bends the base speed curve.
type presetScale struct {
	speed        float64 // multiplier on the initial speed
	acceleration float64 // multiplier on the per-tick acceleration
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, acceleration: 0.5},
	DifficultyNormal: {speed: 1.0, acceleration: 1.0},
	DifficultyHard:   {speed: 1.3, acceleration: 1.5},
	DifficultyFixed:  {speed: 1.0, acceleration: 0},
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config unchanged. Speed never exceeds MaxSpeed.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Runner.Speed = core.ClampF(cfg.Runner.Speed*scale.speed, 0, cfg.Runner.MaxSpeed)
	cfg.Runner.Acceleration *= scale.acceleration
}
