// Package config provides YAML-based game configuration loading and
// difficulty presets for lanerush.
package config

import "fmt"

// Config contains all tunables for the lanerush simulation.
type Config struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Lanes      LanesConfig      `yaml:"lanes"`
	Car        CarConfig        `yaml:"car"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Coins      CoinsConfig      `yaml:"coins"`
	Speed      SpeedConfig      `yaml:"speed"`
	Escalation EscalationConfig `yaml:"escalation"`
}

// CanvasConfig defines the virtual canvas the simulation runs on.
// Canvas units are independent of terminal size; the platform projects
// them to cells at render time.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LanesConfig defines the initial lane layout.
type LanesConfig struct {
	Count int `yaml:"count"`
}

// CarConfig defines the player car dimensions and vertical placement.
type CarConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from canvas bottom to car center
}

// ObstaclesConfig defines obstacle dimensions and spawn cadence.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	PerSpawn        int     `yaml:"per_spawn"`
}

// CoinsConfig defines the optional coin pickups.
type CoinsConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Radius          float64 `yaml:"radius"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	Bonus           int     `yaml:"bonus"`
}

// SpeedConfig defines the base scroll speed and its ramp.
// Speed is measured in canvas units per tick.
type SpeedConfig struct {
	Base           float64 `yaml:"base"`
	RampIntervalMs int     `yaml:"ramp_interval_ms"`
	RampAmount     float64 `yaml:"ramp_amount"`
}

// EscalationConfig defines the one-shot structural difficulty increase.
type EscalationConfig struct {
	ScoreThreshold int `yaml:"score_threshold"`
	LaneCount      int `yaml:"lane_count"`
	PerSpawn       int `yaml:"per_spawn"`
}

// Validate checks the config for values that would produce undefined
// geometry or a stuck simulation. Called by the loader so a bad config
// fails at startup instead of mid-run.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas dimensions must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Lanes.Count < 1 {
		return fmt.Errorf("config: lane count must be at least 1, got %d", c.Lanes.Count)
	}
	if c.Car.Width <= 0 || c.Car.Height <= 0 {
		return fmt.Errorf("config: car dimensions must be positive, got %gx%g", c.Car.Width, c.Car.Height)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("config: obstacle dimensions must be positive, got %gx%g", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		return fmt.Errorf("config: obstacle spawn interval must be positive, got %d", c.Obstacles.SpawnIntervalMs)
	}
	if c.Obstacles.PerSpawn < 1 {
		return fmt.Errorf("config: obstacles per spawn must be at least 1, got %d", c.Obstacles.PerSpawn)
	}
	if c.Coins.Enabled {
		if c.Coins.Radius <= 0 {
			return fmt.Errorf("config: coin radius must be positive, got %g", c.Coins.Radius)
		}
		if c.Coins.SpawnIntervalMs <= 0 {
			return fmt.Errorf("config: coin spawn interval must be positive, got %d", c.Coins.SpawnIntervalMs)
		}
	}
	if c.Speed.Base <= 0 {
		return fmt.Errorf("config: base speed must be positive, got %g", c.Speed.Base)
	}
	if c.Speed.RampIntervalMs <= 0 && c.Speed.RampAmount > 0 {
		return fmt.Errorf("config: speed ramp interval must be positive, got %d", c.Speed.RampIntervalMs)
	}
	if c.Escalation.LaneCount < c.Lanes.Count {
		return fmt.Errorf("config: escalation lane count %d is below initial lane count %d",
			c.Escalation.LaneCount, c.Lanes.Count)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a named difficulty preset.
// "fixed" keeps the starting pace for the whole run by disabling the
// speed ramp; unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 2.5
		cfg.Obstacles.SpawnIntervalMs = 1300
	case DifficultyNormal:
		// Defaults are the normal difficulty.
	case DifficultyHard:
		cfg.Speed.Base = 3.5
		cfg.Obstacles.SpawnIntervalMs = 800
	case DifficultyFixed:
		cfg.Speed.RampAmount = 0
	}
}
