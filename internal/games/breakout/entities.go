// Package breakout implements the brickfall simulation: a Breakout-style game
// where a paddle deflects one or more balls into a growing grid of bricks.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// Ball is a single ball in play. X and Y are the center.
type Ball struct {
	X, Y   float64
	Size   float64 // Radius
	Speed  float64 // Upward speed after a paddle bounce
	DX, DY float64 // Velocity per frame
}

// Left returns the x-coordinate of the ball's left extent.
func (b *Ball) Left() float64 { return b.X - b.Size }

// Right returns the x-coordinate of the ball's right extent.
func (b *Ball) Right() float64 { return b.X + b.Size }

// Top returns the y-coordinate of the ball's top extent.
func (b *Ball) Top() float64 { return b.Y - b.Size }

// Bottom returns the y-coordinate of the ball's bottom extent.
func (b *Ball) Bottom() float64 { return b.Y + b.Size }

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// BallOption overrides a field of a ball built by MakeBall.
type BallOption func(*Ball)

// At places the ball center at (x, y).
func At(x, y float64) BallOption {
	return func(b *Ball) {
		b.X, b.Y = x, y
	}
}

// WithVelocity sets the ball velocity.
func WithVelocity(dx, dy float64) BallOption {
	return func(b *Ball) {
		b.DX, b.DY = dx, dy
	}
}

// MakeBall returns a new ball copied from the configured prototype with the
// given overrides applied. The prototype sits at the given canvas center.
func MakeBall(proto config.BallConfig, center core.Point, opts ...BallOption) Ball {
	b := Ball{
		X:     center.X,
		Y:     center.Y,
		Size:  proto.Size,
		Speed: proto.Speed,
		DX:    proto.DX,
		DY:    proto.DY,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Paddle is the player's paddle. X is the left edge, Y the top edge.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Magnitude of DX while a direction is held
	DX    float64 // Current horizontal velocity
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Direction is a horizontal paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// BrickType is a cosmetic brick variant. It affects drawing only.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickAirplane
	BrickCar
	BrickHeart
)

// String returns the config name of the type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "normal"
	case BrickAirplane:
		return "airplane"
	case BrickCar:
		return "car"
	case BrickHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// ParseBrickType converts a config name to a BrickType.
func ParseBrickType(name string) (BrickType, error) {
	switch name {
	case "normal":
		return BrickNormal, nil
	case "airplane":
		return BrickAirplane, nil
	case "car":
		return BrickCar, nil
	case "heart":
		return BrickHeart, nil
	default:
		return BrickNormal, fmt.Errorf("breakout: unknown brick type %q", name)
	}
}

// Brick is a single brick in the grid. X and Y are the top-left corner.
type Brick struct {
	X, Y     float64
	W, H     float64
	Visible  bool
	HitCount int
	Special  bool // Releases two extra balls when destroyed
	Type     BrickType
}

// Rect returns the brick's bounding box.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}
