package breakout

import "math"

// Snapshot contains the observable game state for replay comparison and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	State       string
	Score       int
	Lives       int
	Level       int
	PaddleX     float64
	PaddleWidth float64
	BallX       float64
	BallY       float64
	BallDX      float64
	BallDY      float64
	Launched    bool

	// Destroyed flags in wall order (row-major)
	BrickData []bool

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = b.Destroyed
	}

	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:         g.state,
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.level,
		PaddleX:       g.paddle.X,
		PaddleWidth:   g.paddle.Width,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallDX:        g.ball.DX,
		BallDY:        g.ball.DY,
		Launched:      g.ball.Launched,
		BrickData:     bricks,
		ParticleCount: g.particles.Len(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.PaddleX, snap.PaddleWidth, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(f)
	}

	if snap.Launched {
		h = h*31 + 1
	}
	for _, destroyed := range snap.BrickData {
		h *= 31
		if destroyed {
			h++
		}
	}

	return h
}
