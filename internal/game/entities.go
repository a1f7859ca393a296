package game

import "lanerush/internal/core"

// Car is the player's vehicle. It sits at a fixed vertical position near
// the bottom of the canvas and only moves horizontally, between lane
// centers. X/Y are the rectangle center.
type Car struct {
	Lane int
	X, Y float64
	W, H float64
}

// Rect returns the car's collision rectangle.
func (c Car) Rect() core.Rect {
	return core.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Obstacle is an oncoming vehicle. It spawns above the top edge and
// advances down the canvas each tick. Scored flips exactly once, when the
// obstacle's bottom edge passes the car's top edge without a collision.
type Obstacle struct {
	Lane   int
	X, Y   float64
	W, H   float64
	Scored bool
	Color  core.Color
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Coin is a bonus pickup. It scrolls with the obstacles and awards extra
// score when the car touches it.
type Coin struct {
	Lane int
	X, Y float64
	R    float64
}
