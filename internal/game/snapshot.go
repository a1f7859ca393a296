package game

// ObstacleSnapshot is one obstacle's observable state.
type ObstacleSnapshot struct {
	Lane   int
	X, Y   float64
	Scored bool
}

// CoinSnapshot is one coin's observable state.
type CoinSnapshot struct {
	Lane int
	X, Y float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           int64
	Score          int
	Speed          float64
	LaneCount      int
	PerSpawn       int
	ExtraLaneAdded bool
	GameOver       bool
	Paused         bool
	CarLane        int
	CarX           float64
	Obstacles      []ObstacleSnapshot
	Coins          []CoinSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleSnapshot, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = ObstacleSnapshot{Lane: o.Lane, X: o.X, Y: o.Y, Scored: o.Scored}
	}
	coins := make([]CoinSnapshot, len(g.coins))
	for i, c := range g.coins {
		coins[i] = CoinSnapshot{Lane: c.Lane, X: c.X, Y: c.Y}
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Speed:          g.difficulty.Speed(),
		LaneCount:      g.laneCount,
		PerSpawn:       g.perSpawn,
		ExtraLaneAdded: g.difficulty.Escalated(),
		GameOver:       g.gameOver,
		Paused:         g.paused,
		CarLane:        g.car.Lane,
		CarX:           g.car.X,
		Obstacles:      obstacles,
		Coins:          coins,
	}
}
