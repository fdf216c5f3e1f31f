package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML KokatonConfig
	if err := yaml.Unmarshal(GetDefaultYAML("kokaton"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultKokatonConfig()) {
		t.Errorf("embedded YAML differs from DefaultKokatonConfig():\nyaml: %+v\ncode: %+v", fromYAML, DefaultKokatonConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultKokatonConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadKokatonCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bombs:\n  count: 9\ntiming:\n  fps: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKokaton(path)
	if err != nil {
		t.Fatalf("LoadKokaton() error = %v", err)
	}

	if cfg.Bombs.Count != 9 {
		t.Errorf("Bombs.Count = %d, expected 9", cfg.Bombs.Count)
	}
	if cfg.Timing.FPS != 30 {
		t.Errorf("Timing.FPS = %d, expected 30", cfg.Timing.FPS)
	}
	// Untouched keys keep their defaults
	if cfg.Viewport.Width != 1600 || cfg.Bombs.MaxRadius != 100 {
		t.Errorf("defaults lost: viewport=%d max_radius=%d", cfg.Viewport.Width, cfg.Bombs.MaxRadius)
	}
}

func TestLoadKokatonCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKokaton(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("bombs: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKokaton(broken); err == nil {
		t.Error("unparseable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("beam:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadKokaton(invalid)
	if err == nil || !strings.Contains(err.Error(), "beam speed") {
		t.Errorf("invalid custom config should mention beam speed, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *KokatonConfig)
		wantErr string
	}{
		{"zero viewport", func(c *KokatonConfig) { c.Viewport.Width = 0 }, "viewport"},
		{"bird outside", func(c *KokatonConfig) { c.Bird.StartX = 5000 }, "outside the viewport"},
		{"negative bombs", func(c *KokatonConfig) { c.Bombs.Count = -1 }, "bomb count"},
		{"inverted radius", func(c *KokatonConfig) { c.Bombs.MinRadius = 50; c.Bombs.MaxRadius = 10 }, "radius range"},
		{"zero life", func(c *KokatonConfig) { c.Explosion.Life = 0 }, "explosion life"},
		{"zero fps", func(c *KokatonConfig) { c.Timing.FPS = 0 }, "fps"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKokatonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}

	// Zero bombs is a legal (if boring) session
	cfg := DefaultKokatonConfig()
	cfg.Bombs.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero bombs should validate, got %v", err)
	}
}

func TestTimingDurations(t *testing.T) {
	timing := DefaultKokatonConfig().Timing
	if got := timing.FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval() = %v, expected 20ms", got)
	}
	if got := timing.DefeatPause(); got != time.Second {
		t.Errorf("DefeatPause() = %v, expected 1s", got)
	}
	if got := (TimingConfig{}).FrameInterval(); got != 0 {
		t.Errorf("FrameInterval() with zero fps = %v, expected 0", got)
	}
}
