package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Contact reports what the ball touched during one update.
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactPaddle
)

// Has reports whether c includes the given contact.
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// Ball is the bouncing ball. While not launched it rides on the paddle.
type Ball struct {
	X, Y      float64 // Center
	DX, DY    float64 // Velocity per tick
	Radius    float64
	Speed     float64 // Speed used for launch and paddle bounces
	BaseSpeed float64 // Speed restored on Reset
	Launched  bool

	paddle       *Paddle
	canvasW      float64
	canvasH      float64
	launchSpread float64 // radians, full cone
	maxBounce    float64 // radians
}

// NewBall creates a ball resting on the paddle.
func NewBall(cfg config.BallConfig, paddle *Paddle, canvasW, canvasH float64) *Ball {
	b := &Ball{
		Radius:       cfg.Radius,
		BaseSpeed:    cfg.Speed,
		paddle:       paddle,
		canvasW:      canvasW,
		canvasH:      canvasH,
		launchSpread: cfg.LaunchSpread * math.Pi / 180,
		maxBounce:    cfg.MaxBounceAngle * math.Pi / 180,
	}
	b.Reset()
	return b
}

// Reset parks the ball on the paddle with zero velocity.
func (b *Ball) Reset() {
	b.followPaddle()
	b.DX = 0
	b.DY = 0
	b.Launched = false
	b.Speed = b.BaseSpeed
}

// Launch sends the ball upward at a random angle within the launch cone.
// Returns false if the ball was already in flight.
func (b *Ball) Launch(rng *rand.Rand) bool {
	if b.Launched {
		return false
	}
	b.Launched = true
	angle := (rng.Float64() - 0.5) * b.launchSpread
	b.DX = b.Speed * math.Sin(angle)
	b.DY = -b.Speed * math.Cos(angle)
	return true
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// Update advances the ball one tick and resolves wall and paddle contacts.
func (b *Ball) Update() Contact {
	if !b.Launched {
		b.followPaddle()
		return 0
	}

	b.X += b.DX
	b.Y += b.DY

	var contact Contact

	// Side walls; the ball is pushed back inside so it cannot stick to a wall
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
		contact |= ContactWall
	} else if b.X+b.Radius > b.canvasW {
		b.X = b.canvasW - b.Radius
		b.DX = -math.Abs(b.DX)
		contact |= ContactWall
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
		contact |= ContactWall
	}

	if b.hitsPaddle() {
		b.bounceOffPaddle()
		contact |= ContactPaddle
	}

	return contact
}

// hitsPaddle requires the ball's center to be strictly within the paddle span.
func (b *Ball) hitsPaddle() bool {
	p := b.paddle
	return b.Y+b.Radius > p.Y &&
		b.Y-b.Radius < p.Y+p.Height &&
		b.X > p.X &&
		b.X < p.X+p.Width
}

// bounceOffPaddle reflects the ball at an angle proportional to the hit offset
// from the paddle center: the edges deflect by maxBounce, the center goes straight up.
func (b *Ball) bounceOffPaddle() {
	p := b.paddle
	hitPos := (b.X - p.CenterX()) / (p.Width / 2)
	angle := hitPos * b.maxBounce

	b.DX = b.Speed * math.Sin(angle)
	b.DY = -b.Speed * math.Cos(angle)
	b.Y = p.Y - b.Radius
}

// IsOut reports whether the ball has fallen completely below the canvas.
func (b *Ball) IsOut() bool {
	return b.Y-b.Radius > b.canvasH
}

func (b *Ball) followPaddle() {
	b.X = b.paddle.CenterX()
	b.Y = b.paddle.Y - b.Radius - 2
}
