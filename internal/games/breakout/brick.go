package breakout

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Brick is a single destructible block in the wall.
type Brick struct {
	X, Y      float64
	Width     float64
	Height    float64
	Color     core.Color
	Points    int
	Destroyed bool
}

// Rect returns the brick bounds.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// CheckCollision tests the ball's bounding box against the brick.
// On a hit the ball is reflected along the axis of least penetration
// and the brick is destroyed. Destroyed bricks never collide.
func (b *Brick) CheckCollision(ball *Ball) bool {
	if b.Destroyed {
		return false
	}
	if !ball.Bounds().Intersects(b.Rect()) {
		return false
	}

	overlapLeft := ball.X + ball.Radius - b.X
	overlapRight := b.X + b.Width - (ball.X - ball.Radius)
	overlapTop := ball.Y + ball.Radius - b.Y
	overlapBottom := b.Y + b.Height - (ball.Y - ball.Radius)

	minOverlap := math.Min(math.Min(overlapLeft, overlapRight), math.Min(overlapTop, overlapBottom))

	if minOverlap == overlapLeft || minOverlap == overlapRight {
		ball.DX = -ball.DX
	} else {
		ball.DY = -ball.DY
	}

	b.Destroyed = true
	return true
}
