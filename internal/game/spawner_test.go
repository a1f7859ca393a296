package game

import (
	"testing"

	"lanerush/internal/config"
)

func testSpawner(seed int64) *Spawner {
	cfg := config.Default()
	return NewSpawner(seed, cfg.Obstacles, cfg.Coins)
}

func TestSpawnBatchLanesAreDistinct(t *testing.T) {
	centers3 := LaneCenters(3, 360)
	centers4 := LaneCenters(4, 360)

	for seed := int64(0); seed < 50; seed++ {
		s := testSpawner(seed)
		now := int64(0)

		for i := 0; i < 20; i++ {
			now += int64(config.Default().Obstacles.SpawnIntervalMs)

			var batch []Obstacle
			if i%2 == 0 {
				batch = s.MaybeSpawn(now, 2, 4, centers4)
			} else {
				batch = s.MaybeSpawn(now, 1, 3, centers3)
			}
			if len(batch) == 0 {
				t.Fatalf("seed %d: no batch after interval elapsed", seed)
			}

			seen := make(map[int]bool)
			for _, o := range batch {
				if seen[o.Lane] {
					t.Fatalf("seed %d: duplicate lane %d in one batch", seed, o.Lane)
				}
				seen[o.Lane] = true
			}
		}
	}
}

func TestSpawnCountClampedToLaneCount(t *testing.T) {
	s := testSpawner(1)
	centers := LaneCenters(3, 360)

	batch := s.MaybeSpawn(1000, 10, 3, centers)
	if len(batch) != 3 {
		t.Errorf("batch size = %d, expected clamp to laneCount 3", len(batch))
	}
}

func TestSpawnTimerGate(t *testing.T) {
	s := testSpawner(1)
	centers := LaneCenters(3, 360)
	interval := int64(config.Default().Obstacles.SpawnIntervalMs)

	if got := s.MaybeSpawn(interval-1, 1, 3, centers); got != nil {
		t.Error("spawned before the interval elapsed")
	}
	if got := s.MaybeSpawn(interval, 1, 3, centers); len(got) != 1 {
		t.Fatalf("expected 1 obstacle at the interval, got %d", len(got))
	}
	// Timer resets on fire
	if got := s.MaybeSpawn(interval+1, 1, 3, centers); got != nil {
		t.Error("spawned again immediately after firing")
	}
	if got := s.MaybeSpawn(2*interval, 1, 3, centers); len(got) != 1 {
		t.Error("expected a batch one full interval after the previous fire")
	}
}

func TestSpawnedObstacleShape(t *testing.T) {
	cfg := config.Default()
	s := testSpawner(9)
	centers := LaneCenters(3, cfg.Canvas.Width)

	batch := s.MaybeSpawn(int64(cfg.Obstacles.SpawnIntervalMs), 1, 3, centers)
	if len(batch) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(batch))
	}

	o := batch[0]
	if o.Y != -cfg.Obstacles.Height {
		t.Errorf("spawn y = %g, expected fully above the top edge at %g", o.Y, -cfg.Obstacles.Height)
	}
	if o.Scored {
		t.Error("fresh obstacle must not be marked scored")
	}
	if o.X != centers[o.Lane] {
		t.Errorf("spawn x = %g, expected its lane center %g", o.X, centers[o.Lane])
	}
}

func TestCoinSpawnDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Coins.Enabled = false
	s := NewSpawner(1, cfg.Obstacles, cfg.Coins)

	if coin := s.MaybeSpawnCoin(100000, LaneCenters(3, 360)); coin != nil {
		t.Error("disabled coins must never spawn")
	}
}

func TestCoinSpawnTimer(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(1, cfg.Obstacles, cfg.Coins)
	centers := LaneCenters(3, cfg.Canvas.Width)
	interval := int64(cfg.Coins.SpawnIntervalMs)

	if c := s.MaybeSpawnCoin(interval-1, centers); c != nil {
		t.Error("coin spawned before its interval elapsed")
	}
	c := s.MaybeSpawnCoin(interval, centers)
	if c == nil {
		t.Fatal("expected a coin at the interval")
	}
	if c.Lane < 0 || c.Lane >= 3 || c.X != centers[c.Lane] {
		t.Errorf("coin lane/x = %d/%g, expected a valid lane center", c.Lane, c.X)
	}
	if s.MaybeSpawnCoin(interval+1, centers) != nil {
		t.Error("coin spawned again immediately after firing")
	}
}
