package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadKokaton loads Fight Kokaton configuration.
// Search order: customPath -> ~/.kokaton/configs/kokaton.yaml -> ./configs/kokaton.yaml -> embedded default
// Files only need to list the keys they override; everything else keeps its default.
func LoadKokaton(customPath string) (KokatonConfig, error) {
	cfg := DefaultKokatonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kokaton.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultKokatonConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/kokaton.yaml"); err == nil {
		candidate := DefaultKokatonConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultKokatonYAML, &cfg); err != nil {
		return DefaultKokatonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kokaton", "configs", filename)
}

// Validate checks that the config describes a playable session.
func (c KokatonConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Bird.StartX < 0 || c.Bird.StartX > c.Viewport.Width || c.Bird.StartY < 0 || c.Bird.StartY > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("bird start (%d, %d) is outside the viewport", c.Bird.StartX, c.Bird.StartY))
	}
	if c.Bird.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bird speed must be positive, got %d", c.Bird.Speed))
	}
	if c.Bird.Scale <= 0 {
		errs = append(errs, fmt.Errorf("bird scale must be positive, got %g", c.Bird.Scale))
	}
	if c.Bombs.Count < 0 {
		errs = append(errs, fmt.Errorf("bomb count must not be negative, got %d", c.Bombs.Count))
	}
	if c.Bombs.MinRadius <= 0 || c.Bombs.MaxRadius < c.Bombs.MinRadius {
		errs = append(errs, fmt.Errorf("bomb radius range [%d, %d] is invalid", c.Bombs.MinRadius, c.Bombs.MaxRadius))
	}
	if c.Bombs.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bomb speed must be positive, got %d", c.Bombs.Speed))
	}
	if c.Beam.Speed <= 0 {
		errs = append(errs, fmt.Errorf("beam speed must be positive, got %d", c.Beam.Speed))
	}
	if c.Explosion.Life <= 0 {
		errs = append(errs, fmt.Errorf("explosion life must be positive, got %d", c.Explosion.Life))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Timing.FPS))
	}
	if c.Timing.DefeatPauseMS < 0 {
		errs = append(errs, fmt.Errorf("defeat pause must not be negative, got %d", c.Timing.DefeatPauseMS))
	}

	return errors.Join(errs...)
}

// DefeatPause returns the pause after the losing frame as a duration.
func (t TimingConfig) DefeatPause() time.Duration {
	return time.Duration(t.DefeatPauseMS) * time.Millisecond
}

// FrameInterval returns the target duration of one frame.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.FPS)
}
