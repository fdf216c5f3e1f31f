// Package config provides YAML-based game configuration loading for the
// kokaton arcade. A loaded config is treated as immutable for the whole
// session and shared by pointer between components.
package config

// KokatonConfig contains all configuration for the Fight Kokaton game.
type KokatonConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Bird      BirdConfig      `yaml:"bird"`
	Bombs     BombsConfig     `yaml:"bombs"`
	Beam      BeamConfig      `yaml:"beam"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Timing    TimingConfig    `yaml:"timing"`
	Assets    AssetsConfig    `yaml:"assets"`
	HUD       HUDConfig       `yaml:"hud"`
}

// ViewportConfig defines the world size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig defines player parameters.
type BirdConfig struct {
	StartX int     `yaml:"start_x"` // Initial center X
	StartY int     `yaml:"start_y"` // Initial center Y
	Speed  int     `yaml:"speed"`   // Pixels per tick on each axis
	Scale  float64 `yaml:"scale"`   // Zoom applied to the bird images
}

// BombsConfig defines obstacle parameters.
type BombsConfig struct {
	Count     int `yaml:"count"`
	MinRadius int `yaml:"min_radius"`
	MaxRadius int `yaml:"max_radius"`
	Speed     int `yaml:"speed"` // Pixels per tick on each axis
}

// BeamConfig defines projectile parameters.
type BeamConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick on each axis
}

// ExplosionConfig defines effect parameters.
type ExplosionConfig struct {
	Life int `yaml:"life"` // Frames an explosion stays alive
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS           int `yaml:"fps"`
	DefeatPauseMS int `yaml:"defeat_pause_ms"` // Pause after the losing frame
	KeyHoldTicks  int `yaml:"key_hold_ticks"`  // Ticks a terminal key counts as held after its last press
}

// AssetsConfig names the image files, relative to the asset root.
type AssetsConfig struct {
	Background string `yaml:"background"`
	Bird       string `yaml:"bird"`
	Victory    string `yaml:"victory"`
	Defeat     string `yaml:"defeat"`
	Beam       string `yaml:"beam"`
	Explosion  string `yaml:"explosion"`
}

// HUDConfig defines the score label.
type HUDConfig struct {
	ScoreLabel string  `yaml:"score_label"`
	ScoreX     int     `yaml:"score_x"` // Label center X
	ScoreY     int     `yaml:"score_y"` // Label center Y
	FontScale  float64 `yaml:"font_scale"`
}
