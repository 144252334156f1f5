package breakout

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Paddle is the player-controlled bar at the bottom of the canvas.
type Paddle struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64
	DX     float64 // Current horizontal velocity per tick

	minWidth   float64
	maxWidth   float64
	resizeStep float64
	canvasW    float64
}

// NewPaddle creates a paddle centered horizontally near the bottom of the canvas.
func NewPaddle(cfg config.PaddleConfig, canvasW, canvasH float64) *Paddle {
	return &Paddle{
		X:          canvasW/2 - cfg.Width/2,
		Y:          canvasH - cfg.BottomOffset,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Speed:      cfg.Speed,
		minWidth:   cfg.MinWidth,
		maxWidth:   cfg.MaxWidth,
		resizeStep: cfg.ResizeStep,
		canvasW:    canvasW,
	}
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Update moves the paddle by its velocity and keeps it inside the canvas.
func (p *Paddle) Update() {
	p.X += p.DX
	p.clamp()
}

// MoveLeft starts moving left at full speed.
func (p *Paddle) MoveLeft() {
	p.DX = -p.Speed
}

// MoveRight starts moving right at full speed.
func (p *Paddle) MoveRight() {
	p.DX = p.Speed
}

// Stop halts horizontal movement.
func (p *Paddle) Stop() {
	p.DX = 0
}

// Expand widens the paddle by one step, up to the maximum width.
func (p *Paddle) Expand() {
	p.Width = min(p.maxWidth, p.Width+p.resizeStep)
	p.clamp()
}

// Shrink narrows the paddle by one step, down to the minimum width.
func (p *Paddle) Shrink() {
	p.Width = max(p.minWidth, p.Width-p.resizeStep)
	p.clamp()
}

// FollowPointer centers the paddle under the logical x coordinate.
func (p *Paddle) FollowPointer(x float64) {
	p.X = x - p.Width/2
	p.clamp()
}

func (p *Paddle) clamp() {
	p.X = core.ClampF(p.X, 0, p.canvasW-p.Width)
}
