// Package game implements Lane Rush, a lane-dodging endless runner.
// The player shifts a car between vertical lanes while oncoming traffic
// scrolls down at ever-increasing speed; each dodged vehicle scores a
// point, one collision ends the run.
//
// The simulation runs on a fixed virtual canvas in float units and is a
// pure deterministic state machine: same seed and same input sequence
// produce the same run. Rendering projects the canvas onto the cell
// screen; all timing derives from the tick counter, never wall clock.
package game

import (
	"lanerush/internal/config"
	"lanerush/internal/core"
)

// Visual characters for rendering
const (
	CarChar      = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
	DividerChar  = '┆'
)

// Game owns all mutable state of one run. It is single-threaded: the
// platform calls Step exactly once per tick and Render after it, never
// concurrently.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.Config

	laneCount int
	perSpawn  int
	centers   []float64

	car       Car
	obstacles []Obstacle
	coins     []Coin

	spawner    *Spawner
	difficulty *DifficultyController

	score     int
	highScore int
	gameOver  bool
	paused    bool
	tick      int64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Lane Rush game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lanerush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Rush"
}

// SetHighScore hands the game the best score loaded from storage, for
// display only. The platform owns persistence.
func (g *Game) SetHighScore(hs int) {
	g.highScore = hs
}

// Reset initializes or restarts the game. A restart discards the entire
// run atomically: lane count back to the configured base, timers and
// entities cleared, speed back to base. The high score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.laneCount = cfg.Lanes.Count
	g.perSpawn = cfg.Obstacles.PerSpawn
	g.centers = LaneCenters(g.laneCount, cfg.Canvas.Width)

	startLane := g.laneCount / 2
	g.car = Car{
		Lane: startLane,
		X:    g.centers[startLane],
		Y:    cfg.Canvas.Height - cfg.Car.BottomOffset,
		W:    cfg.Car.Width,
		H:    cfg.Car.Height,
	}

	g.obstacles = g.obstacles[:0]
	g.coins = g.coins[:0]

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, cfg.Obstacles, cfg.Coins)
	} else {
		g.spawner.obsCfg = cfg.Obstacles
		g.spawner.coinCfg = cfg.Coins
		g.spawner.Reset(runtime.Seed)
	}

	if g.difficulty == nil {
		g.difficulty = NewDifficultyController(cfg.Speed, cfg.Escalation)
	} else {
		g.difficulty.speedCfg = cfg.Speed
		g.difficulty.escCfg = cfg.Escalation
		g.difficulty.Reset()
	}

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tick = 0
}

// now returns the run clock in milliseconds, derived from the tick
// counter so pausing stops every timer and runs replay deterministically.
func (g *Game) now() int64 {
	return g.tick * 1000 / int64(g.runtime.TickRate)
}

// Step advances the game by one tick. The phase order inside a step is a
// hard invariant: input, spawn, difficulty, motion, scoring, coin pickup,
// pruning, collision. Scoring runs before the collision test so an
// obstacle can never score and collide in the same frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	now := g.now()

	if in.Has(core.ActionShiftLeft) {
		g.shiftLane(-1)
	}
	if in.Has(core.ActionShiftRight) {
		g.shiftLane(1)
	}

	g.obstacles = append(g.obstacles, g.spawner.MaybeSpawn(now, g.perSpawn, g.laneCount, g.centers)...)
	if coin := g.spawner.MaybeSpawnCoin(now, g.centers); coin != nil {
		g.coins = append(g.coins, *coin)
	}

	if g.difficulty.Tick(now, g.score) {
		g.escalate()
	}

	speed := g.difficulty.Speed()
	for i := range g.obstacles {
		g.obstacles[i].Y += speed
	}
	for i := range g.coins {
		g.coins[i].Y += speed
	}

	carRect := g.car.Rect()
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if !o.Scored && o.Y-o.H/2 > g.car.Y+g.car.H/2 {
			o.Scored = true
			g.score++
		}
	}

	kept := g.coins[:0]
	for _, c := range g.coins {
		if core.CircleIntersectsRect(c.X, c.Y, c.R, carRect) {
			g.score += g.cfg.Coins.Bonus
			continue
		}
		if c.Y-c.R < g.cfg.Canvas.Height {
			kept = append(kept, c)
		}
	}
	g.coins = kept

	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Y-o.H < g.cfg.Canvas.Height {
			live = append(live, o)
		}
	}
	g.obstacles = live

	for _, o := range g.obstacles {
		if carRect.Intersects(o.Rect()) {
			g.gameOver = true
			if g.score > g.highScore {
				g.highScore = g.score
			}
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// shiftLane moves the car one lane left (-1) or right (+1), clamped to
// the valid range. A shift past the edge is a no-op.
func (g *Game) shiftLane(dir int) {
	lane := core.Clamp(g.car.Lane+dir, 0, g.laneCount-1)
	if lane == g.car.Lane {
		return
	}
	g.car.Lane = lane
	g.car.X = g.centers[lane]
}

// escalate applies the one-shot structural difficulty increase: more
// lanes, denser spawns. Every entity keeps its lane index but gets its x
// reassigned to that lane's new center; the car's lane is clamped into
// the new range.
func (g *Game) escalate() {
	esc := g.difficulty.Escalation()
	g.laneCount = esc.LaneCount
	g.perSpawn = esc.PerSpawn
	g.centers = LaneCenters(g.laneCount, g.cfg.Canvas.Width)

	for i := range g.obstacles {
		g.obstacles[i].X = g.centers[g.obstacles[i].Lane]
	}
	for i := range g.coins {
		g.coins[i].X = g.centers[g.coins[i].Lane]
	}

	g.car.Lane = core.Min(g.car.Lane, g.laneCount-1)
	g.car.X = g.centers[g.car.Lane]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
