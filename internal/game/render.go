package game

import (
	"fmt"
	"math"

	"lanerush/internal/core"
)

// Render draws the current game state to the screen. The virtual canvas
// is projected onto the cell grid using the screen's current size, so a
// terminal resize only changes the projection, never the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	p := projection{
		sx: float64(dst.Width()) / g.cfg.Canvas.Width,
		sy: float64(dst.Height()) / g.cfg.Canvas.Height,
	}

	g.drawLaneDividers(dst, p)

	for _, o := range g.obstacles {
		drawRect(dst, p, o.Rect(), ObstacleChar, o.Color)
	}
	for _, c := range g.coins {
		dst.SetCell(p.x(c.X), p.y(c.Y), CoinChar, core.ColorYellow)
	}
	drawRect(dst, p, g.car.Rect(), CarChar, core.ColorGreen)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// projection maps virtual canvas coordinates onto screen cells.
type projection struct {
	sx, sy float64
}

func (p projection) x(x float64) int {
	return int(math.Round(x * p.sx))
}

func (p projection) y(y float64) int {
	return int(math.Round(y * p.sy))
}

// drawRect fills the screen cells covered by a canvas rectangle. Every
// entity gets at least one cell so nothing vanishes on tiny terminals.
func drawRect(dst *core.Screen, p projection, r core.Rect, ch rune, col core.Color) {
	x0 := p.x(r.Left())
	y0 := p.y(r.Top())
	w := core.Max(p.x(r.Right())-x0, 1)
	h := core.Max(p.y(r.Bottom())-y0, 1)
	dst.FillRect(x0, y0, w, h, ch, col)
}

// drawLaneDividers marks the interior lane boundaries.
func (g *Game) drawLaneDividers(dst *core.Screen, p projection) {
	laneWidth := g.cfg.Canvas.Width / float64(g.laneCount)
	for i := 1; i < g.laneCount; i++ {
		dst.DrawVLineColored(p.x(laneWidth*float64(i)), 0, dst.Height(), DividerChar, core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	right := fmt.Sprintf(" Best: %d  Spd: %.1f ", g.highScore, g.difficulty.Speed())
	dst.DrawText(dst.Width()-len(right)-2, 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
