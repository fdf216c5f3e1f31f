package config

import (
	_ "embed"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default Fight Kokaton configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		Viewport: ViewportConfig{
			Width:  1600,
			Height: 900,
		},
		Bird: BirdConfig{
			StartX: 900,
			StartY: 400,
			Speed:  5,
			Scale:  2.0,
		},
		Bombs: BombsConfig{
			Count:     5,
			MinRadius: 10,
			MaxRadius: 100,
			Speed:     5,
		},
		Beam: BeamConfig{
			Speed: 5,
		},
		Explosion: ExplosionConfig{
			Life: 30,
		},
		Timing: TimingConfig{
			FPS:           50,
			DefeatPauseMS: 1000,
			KeyHoldTicks:  12,
		},
		Assets: AssetsConfig{
			Background: "fig/bg.png",
			Bird:       "fig/3.png",
			Victory:    "fig/6.png",
			Defeat:     "fig/8.png",
			Beam:       "fig/beam.png",
			Explosion:  "fig/explosion.png",
		},
		HUD: HUDConfig{
			ScoreLabel: "Score: ",
			ScoreX:     100,
			ScoreY:     850,
			FontScale:  3.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kokaton":
		return defaultKokatonYAML
	default:
		return nil
	}
}
