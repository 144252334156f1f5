package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/audio.yaml
var defaultAudioYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Mirrors defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       15,
			BottomOffset: 40,
			Speed:        8,
			MinWidth:     60,
			MaxWidth:     150,
			ResizeStep:   30,
			HoldTicks:    6, // ~100ms at 60fps
		},
		Ball: BallConfig{
			Radius:         8,
			Speed:          5,
			LaunchSpread:   60,
			MaxBounceAngle: 60,
		},
		Bricks: BricksConfig{
			Columns:      8,
			BaseRows:     5,
			MaxRows:      16,
			Height:       20,
			Gap:          5,
			SideMargin:   10,
			TopOffset:    50,
			PointsPerRow: 10,
			Colors:       []string{"#ff0066", "#ff6600", "#ffcc00", "#00ff66", "#0066ff", "#6600ff"},
		},
		Particles: ParticlesConfig{
			Count:   15,
			Spread:  6,
			Gravity: 0.2,
			Decay:   0.02,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultAudioConfig returns the default audio configuration.
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		BufferMillis: 33,
		MusicVolume:  0.3,
		SFXVolume:    0.5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "breakout":
		return defaultBreakoutYAML
	case "audio":
		return defaultAudioYAML
	default:
		return nil
	}
}
