// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Geometry and speeds are in logical canvas units (pixels per tick).
type BreakoutConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the logical playfield size. The renderer scales it to the terminal.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from canvas bottom to paddle top
	Speed        float64 `yaml:"speed"`
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	ResizeStep   float64 `yaml:"resize_step"`
	HoldTicks    int     `yaml:"hold_ticks"` // Ticks a single key press keeps the paddle moving
}

// BallConfig defines the ball geometry and speed.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	LaunchSpread   float64 `yaml:"launch_spread"`    // Total launch cone in degrees, centered on straight up
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Paddle edge deflection in degrees
}

// BricksConfig defines the brick wall layout.
type BricksConfig struct {
	Columns      int      `yaml:"columns"`
	BaseRows     int      `yaml:"base_rows"` // Rows = base_rows + level
	MaxRows      int      `yaml:"max_rows"`
	Height       float64  `yaml:"height"`
	Gap          float64  `yaml:"gap"`
	SideMargin   float64  `yaml:"side_margin"`
	TopOffset    float64  `yaml:"top_offset"`
	PointsPerRow int      `yaml:"points_per_row"`
	Colors       []string `yaml:"colors"`
}

// ParticlesConfig defines brick explosion particles.
type ParticlesConfig struct {
	Count   int     `yaml:"count"`
	Spread  float64 `yaml:"spread"` // Velocity range per axis, centered on zero
	Gravity float64 `yaml:"gravity"`
	Decay   float64 `yaml:"decay"` // Life lost per tick (life starts at 1)
}

// GameplayConfig defines rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// AudioConfig contains configuration for the procedural audio layer.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	BufferMillis int     `yaml:"buffer_millis"`
	MusicVolume  float64 `yaml:"music_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
