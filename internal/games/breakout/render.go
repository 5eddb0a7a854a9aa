package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Canvas is a 2D drawing surface in canvas pixel coordinates.
// Hosts implement it on top of their own graphics: a terminal cell grid or
// an ebiten image.
type Canvas interface {
	// ClearRect erases the given area to the background.
	ClearRect(x, y, w, h float64)
	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float64, c core.Color)
	// FillArc paints the sector of the circle at (cx, cy) between two angles
	// in radians, measured clockwise from the positive x axis.
	FillArc(cx, cy, r, start, end float64, c core.Color)
	// FillPath paints a closed polygon.
	FillPath(points []core.Point, c core.Color)
	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64, c core.Color)
}

// HUD placement, matching the classic layout.
const (
	hudRightInset = 200
	hudBaseline   = 30
)

// ScoreText returns the HUD line for a score and level.
func ScoreText(score, level int) string {
	return fmt.Sprintf("Score: %d | Level: %d", score, level)
}

// Draw renders the whole session: balls, paddle, HUD and bricks, in that order.
func Draw(s *Session, c Canvas) {
	c.ClearRect(0, 0, s.width, s.height)

	for _, b := range s.balls {
		c.FillArc(b.X, b.Y, b.Size, 0, 2*math.Pi, core.ColorSecondary)
	}

	p := s.paddle
	c.FillRect(p.X, p.Y, p.W, p.H, core.ColorPrimary)

	c.FillText(ScoreText(s.score, s.level), s.width-hudRightInset, hudBaseline, core.ColorText)

	for _, row := range s.bricks {
		for i := range row {
			drawBrick(c, &row[i])
		}
	}
}

// drawBrick draws a visible brick. Special bricks are gold; the shaped types
// use their own color regardless.
func drawBrick(c Canvas, b *Brick) {
	if !b.Visible {
		return
	}

	fill := core.ColorPrimary
	if b.Special {
		fill = core.ColorGold
	}

	switch b.Type {
	case BrickHeart:
		// Two lobes above the brick's top edge, closed into the center.
		cx := b.X + b.W/2
		c.FillArc(cx-10, b.Y+10, 10, math.Pi, 2*math.Pi, core.ColorRed)
		c.FillArc(cx+10, b.Y+10, 10, math.Pi, 2*math.Pi, core.ColorRed)
		c.FillPath([]core.Point{
			{X: cx - 20, Y: b.Y + 10},
			{X: cx, Y: b.Y},
			{X: cx + 20, Y: b.Y + 10},
		}, core.ColorRed)
	case BrickCar:
		c.FillRect(b.X, b.Y, b.W, b.H, core.ColorBlue)
	case BrickAirplane:
		c.FillPath([]core.Point{
			{X: b.X + b.W/2, Y: b.Y},
			{X: b.X + b.W, Y: b.Y + b.H},
			{X: b.X, Y: b.Y + b.H},
		}, core.ColorGray)
	default:
		c.FillRect(b.X, b.Y, b.W, b.H, fill)
	}
}
