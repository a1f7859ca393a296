package config

import (
	_ "embed"
)

//go:embed defaults/lanerush.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// Kept in sync with defaults/lanerush.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  360,
			Height: 640,
		},
		Lanes: LanesConfig{
			Count: 3,
		},
		Car: CarConfig{
			Width:        40,
			Height:       70,
			BottomOffset: 100,
		},
		Obstacles: ObstaclesConfig{
			Width:           40,
			Height:          70,
			SpawnIntervalMs: 1000,
			PerSpawn:        1,
		},
		Coins: CoinsConfig{
			Enabled:         true,
			Radius:          12,
			SpawnIntervalMs: 3500,
			Bonus:           5,
		},
		Speed: SpeedConfig{
			Base:           3.0,
			RampIntervalMs: 5000,
			RampAmount:     0.5,
		},
		Escalation: EscalationConfig{
			ScoreThreshold: 60,
			LaneCount:      4,
			PerSpawn:       2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
