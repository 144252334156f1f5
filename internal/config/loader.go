package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := load("breakout.yaml", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid breakout config: %w", err)
	}
	return cfg, nil
}

// LoadAudio loads audio configuration.
// Search order: customPath -> ~/.arcade/configs/audio.yaml -> ./configs/audio.yaml -> embedded default
func LoadAudio(customPath string) (AudioConfig, error) {
	cfg, err := load("audio.yaml", customPath, defaultAudioYAML, DefaultAudioConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid audio config: %w", err)
	}
	return cfg, nil
}

// load implements the shared search order. Files found on the implicit search
// paths are skipped silently when unreadable; an explicit path must succeed.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	// Start from defaults so partial files only override what they mention
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		attempt := fallback()
		if err := yaml.Unmarshal(data, &attempt); err == nil {
			return attempt, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable field.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, errors.New("canvas dimensions must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Canvas.Width {
		errs = append(errs, fmt.Errorf("paddle width %.0f out of range", c.Paddle.Width))
	}
	if c.Paddle.MinWidth > c.Paddle.MaxWidth {
		errs = append(errs, errors.New("paddle min_width exceeds max_width"))
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball radius and speed must be positive"))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.BaseRows < 0 {
		errs = append(errs, errors.New("bricks need at least one column"))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks need at least one color"))
	}
	if c.Particles.Decay <= 0 {
		errs = append(errs, errors.New("particle decay must be positive"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	return errors.Join(errs...)
}

// Validate checks audio settings.
func (c AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate %d must be positive", c.SampleRate)
	}
	if c.BufferMillis <= 0 {
		return fmt.Errorf("buffer_millis %d must be positive", c.BufferMillis)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 || c.SFXVolume < 0 || c.SFXVolume > 1 {
		return errors.New("volumes must be within [0, 1]")
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 6
	}
}
