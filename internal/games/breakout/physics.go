package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// Collision tests below use strict inequalities and require the ball's full
// horizontal extent inside the target. Fast balls can tunnel through thin
// targets; that is part of the game's feel and is not corrected.

// ReflectWalls bounces the ball off the side and top walls of a w×h canvas.
// Position is not corrected, so a ball may sit past a wall for a frame.
// The bottom wall never reflects.
func ReflectWalls(ball *Ball, w float64) {
	if ball.Right() > w || ball.Left() < 0 {
		ball.BounceX()
	}
	if ball.Top() < 0 {
		ball.BounceY()
	}
}

// HitsPaddle reports whether the ball is over the paddle and its bottom edge
// is past the paddle's top edge. Direction of travel is not considered.
func HitsPaddle(ball *Ball, paddle *Paddle) bool {
	return paddle.Rect().SpansInside(ball.Left(), ball.Right()) &&
		ball.Bottom() > paddle.Y
}

// BouncePaddle sends the ball upward at its own speed.
func BouncePaddle(ball *Ball) {
	ball.DY = -ball.Speed
}

// HitsBrick reports whether a visible brick contains the ball horizontally
// and overlaps it vertically.
func HitsBrick(ball *Ball, brick *Brick) bool {
	if !brick.Visible {
		return false
	}
	r := brick.Rect()
	return r.SpansInside(ball.Left(), ball.Right()) &&
		r.OverlapsVertically(ball.Top(), ball.Bottom())
}

// FellOff reports whether the ball's bottom edge passed the canvas bottom.
func FellOff(ball *Ball, h float64) bool {
	return ball.Bottom() > h
}

// MovePaddle advances the paddle by its velocity and clamps it to the canvas.
func MovePaddle(paddle *Paddle, w float64) {
	paddle.X += paddle.DX
	paddle.X = core.ClampF(paddle.X, 0, w-paddle.W)
}
