package game

import (
	"math/rand"

	"lanerush/internal/config"
	"lanerush/internal/core"
)

// obstacleColors is the palette spawned obstacles cycle through. Purely
// cosmetic; the simulation never reads it.
var obstacleColors = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// Spawner emits obstacles and coins on independent time gates. All
// randomness flows through one seeded rand.Rand so a run is reproducible
// from its seed.
type Spawner struct {
	rng     *rand.Rand
	obsCfg  config.ObstaclesConfig
	coinCfg config.CoinsConfig

	lastObstacleSpawn int64
	lastCoinSpawn     int64
}

// NewSpawner creates a spawner seeded for a single run.
func NewSpawner(seed int64, obs config.ObstaclesConfig, coins config.CoinsConfig) *Spawner {
	s := &Spawner{obsCfg: obs, coinCfg: coins}
	s.Reset(seed)
	return s
}

// Reset rewinds both spawn timers and reseeds the RNG for a new run.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastObstacleSpawn = 0
	s.lastCoinSpawn = 0
}

// MaybeSpawn returns a batch of new obstacles if the spawn interval has
// elapsed, nil otherwise. A batch holds min(perSpawn, laneCount)
// obstacles on distinct lanes, so no lane ever gets two obstacles from
// the same batch.
func (s *Spawner) MaybeSpawn(now int64, perSpawn, laneCount int, centers []float64) []Obstacle {
	if now-s.lastObstacleSpawn < int64(s.obsCfg.SpawnIntervalMs) {
		return nil
	}
	s.lastObstacleSpawn = now

	n := core.Min(perSpawn, laneCount)
	lanes := s.rng.Perm(laneCount)[:n]

	batch := make([]Obstacle, 0, n)
	for _, lane := range lanes {
		batch = append(batch, Obstacle{
			Lane:  lane,
			X:     centers[lane],
			Y:     -s.obsCfg.Height,
			W:     s.obsCfg.Width,
			H:     s.obsCfg.Height,
			Color: obstacleColors[s.rng.Intn(len(obstacleColors))],
		})
	}
	return batch
}

// MaybeSpawnCoin returns a new coin in a random lane if coins are enabled
// and the coin interval has elapsed, nil otherwise.
func (s *Spawner) MaybeSpawnCoin(now int64, centers []float64) *Coin {
	if !s.coinCfg.Enabled {
		return nil
	}
	if now-s.lastCoinSpawn < int64(s.coinCfg.SpawnIntervalMs) {
		return nil
	}
	s.lastCoinSpawn = now

	lane := s.rng.Intn(len(centers))
	return &Coin{
		Lane: lane,
		X:    centers[lane],
		Y:    -s.coinCfg.Radius,
		R:    s.coinCfg.Radius,
	}
}
