package breakout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

const eps = 1e-9

func newTestPaddle() *Paddle {
	return NewPaddle(config.DefaultBreakoutConfig().Paddle, 800, 600)
}

func newTestBall(p *Paddle) *Ball {
	return NewBall(config.DefaultBreakoutConfig().Ball, p, 800, 600)
}

func TestPaddleMovementAndClamp(t *testing.T) {
	p := newTestPaddle()

	if p.X != 350 || p.Y != 560 {
		t.Fatalf("paddle should start centered at (350, 560), got (%v, %v)", p.X, p.Y)
	}

	p.MoveLeft()
	p.Update()
	if p.X != 342 {
		t.Errorf("after one left step X = %v, expected 342", p.X)
	}

	for range 100 {
		p.Update()
	}
	if p.X != 0 {
		t.Errorf("paddle should clamp at left edge, got %v", p.X)
	}

	p.MoveRight()
	for range 200 {
		p.Update()
	}
	if p.X != 700 {
		t.Errorf("paddle should clamp at right edge, got %v", p.X)
	}

	p.Stop()
	p.Update()
	if p.DX != 0 || p.X != 700 {
		t.Errorf("stopped paddle should not move, DX=%v X=%v", p.DX, p.X)
	}
}

func TestPaddleExpandShrink(t *testing.T) {
	p := newTestPaddle()

	p.Expand()
	if p.Width != 130 {
		t.Errorf("Expand: width = %v, expected 130", p.Width)
	}
	p.Expand()
	p.Expand()
	if p.Width != 150 {
		t.Errorf("Expand should cap at 150, got %v", p.Width)
	}

	for range 5 {
		p.Shrink()
	}
	if p.Width != 60 {
		t.Errorf("Shrink should floor at 60, got %v", p.Width)
	}

	// Growing against the right wall keeps the paddle inside
	p = newTestPaddle()
	p.X = 700
	p.Expand()
	if p.X+p.Width > 800 {
		t.Errorf("expanded paddle leaves canvas: X=%v W=%v", p.X, p.Width)
	}
}

func TestPaddleFollowPointer(t *testing.T) {
	p := newTestPaddle()

	tests := []struct {
		x, expected float64
	}{
		{400, 350},
		{5, 0},
		{795, 700},
	}
	for _, tc := range tests {
		p.FollowPointer(tc.x)
		if p.X != tc.expected {
			t.Errorf("FollowPointer(%v): X = %v, expected %v", tc.x, p.X, tc.expected)
		}
	}
}

func TestBallRestsOnPaddle(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(p)

	if b.X != 400 || b.Y != 550 || b.Launched || b.DX != 0 || b.DY != 0 {
		t.Fatalf("ball should rest on paddle, got %+v", b)
	}

	p.X = 100
	if c := b.Update(); c != 0 {
		t.Errorf("resting ball should report no contact, got %v", c)
	}
	if b.X != 150 {
		t.Errorf("resting ball should follow paddle, X = %v", b.X)
	}
}

func TestBallLaunch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 50 {
		p := newTestPaddle()
		b := newTestBall(p)
		if !b.Launch(rng) {
			t.Fatal("first Launch should succeed")
		}
		if b.Launch(rng) {
			t.Fatal("second Launch should be ignored")
		}

		if speed := math.Hypot(b.DX, b.DY); math.Abs(speed-5) > eps {
			t.Errorf("launch %d: speed = %v, expected 5", i, speed)
		}
		if b.DY >= 0 {
			t.Errorf("launch %d: ball should move up, DY = %v", i, b.DY)
		}
		if math.Abs(b.DX) > 5*math.Sin(math.Pi/6)+eps {
			t.Errorf("launch %d: angle outside ±30°, DX = %v", i, b.DX)
		}
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantX, wantY   float64
		wantDX, wantDY float64
	}{
		{"left wall", 10, 300, -5, 0, 8, 300, 5, 0},
		{"right wall", 790, 300, 5, 0, 792, 300, -5, 0},
		{"ceiling", 400, 10, 0, -5, 400, 8, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(newTestPaddle())
			b.Launched = true
			b.X, b.Y, b.DX, b.DY = tc.x, tc.y, tc.dx, tc.dy

			c := b.Update()
			if !c.Has(ContactWall) {
				t.Error("expected wall contact")
			}
			if b.X != tc.wantX || b.Y != tc.wantY || b.DX != tc.wantDX || b.DY != tc.wantDY {
				t.Errorf("got pos (%v, %v) vel (%v, %v)", b.X, b.Y, b.DX, b.DY)
			}
		})
	}
}

func TestBallPaddleBounceAngles(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		sideDX int // expected sign of DX
	}{
		{"center goes straight up", 400, 0},
		{"right half deflects right", 440, 1},
		{"left half deflects left", 360, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(newTestPaddle())
			b.Launched = true
			b.Speed = 5
			b.X, b.Y, b.DX, b.DY = tc.x, 550, 0, 5

			c := b.Update()
			if !c.Has(ContactPaddle) {
				t.Fatal("expected paddle contact")
			}
			if b.DY >= 0 {
				t.Errorf("ball should bounce upward, DY = %v", b.DY)
			}
			if b.Y != 552 {
				t.Errorf("ball should sit on the paddle, Y = %v", b.Y)
			}
			if speed := math.Hypot(b.DX, b.DY); math.Abs(speed-5) > eps {
				t.Errorf("bounce speed = %v, expected 5", speed)
			}

			switch {
			case tc.sideDX == 0 && b.DX != 0:
				t.Errorf("center hit DX = %v, expected 0", b.DX)
			case tc.sideDX > 0 && b.DX <= 0:
				t.Errorf("right hit DX = %v, expected > 0", b.DX)
			case tc.sideDX < 0 && b.DX >= 0:
				t.Errorf("left hit DX = %v, expected < 0", b.DX)
			}
		})
	}
}

func TestBallPaddleEdgeAngleLimit(t *testing.T) {
	b := newTestBall(newTestPaddle())
	b.Launched = true
	b.Speed = 5
	// Just inside the right edge: close to the 60° maximum
	b.X, b.Y, b.DX, b.DY = 449.99, 550, 0, 5

	b.Update()
	angle := math.Atan2(b.DX, -b.DY)
	if angle > math.Pi/3+eps || angle < math.Pi/3-0.01 {
		t.Errorf("edge bounce angle = %v rad, expected about π/3", angle)
	}
}

func TestBallMissesPaddleOutsideSpan(t *testing.T) {
	b := newTestBall(newTestPaddle())
	b.Launched = true
	// Center exactly on the paddle's left edge is not a hit
	b.X, b.Y, b.DX, b.DY = 350, 550, 0, 5

	if c := b.Update(); c.Has(ContactPaddle) {
		t.Error("ball centered on the paddle edge should not bounce")
	}
	if b.DY != 5 {
		t.Errorf("ball should keep falling, DY = %v", b.DY)
	}
}

func TestBallIsOut(t *testing.T) {
	b := newTestBall(newTestPaddle())
	b.Y = 608
	if b.IsOut() {
		t.Error("ball touching the bottom edge is not out yet")
	}
	b.Y = 608.5
	if !b.IsOut() {
		t.Error("ball fully below the canvas should be out")
	}
}

func TestBrickCollisionSides(t *testing.T) {
	newBrick := func() *Brick {
		return &Brick{X: 100, Y: 100, Width: 50, Height: 20, Points: 10}
	}
	newBall := func(x, y, dx, dy float64) *Ball {
		b := newTestBall(newTestPaddle())
		b.X, b.Y, b.DX, b.DY = x, y, dx, dy
		return b
	}

	t.Run("top face flips DY", func(t *testing.T) {
		br, b := newBrick(), newBall(125, 94, 1, 5)
		if !br.CheckCollision(b) {
			t.Fatal("expected collision")
		}
		if b.DY != -5 || b.DX != 1 {
			t.Errorf("velocity = (%v, %v), expected (1, -5)", b.DX, b.DY)
		}
		if !br.Destroyed {
			t.Error("brick should be destroyed")
		}
	})

	t.Run("left face flips DX", func(t *testing.T) {
		br, b := newBrick(), newBall(94, 110, 5, 1)
		if !br.CheckCollision(b) {
			t.Fatal("expected collision")
		}
		if b.DX != -5 || b.DY != 1 {
			t.Errorf("velocity = (%v, %v), expected (-5, 1)", b.DX, b.DY)
		}
	})

	t.Run("touching edge is not a hit", func(t *testing.T) {
		br, b := newBrick(), newBall(125, 92, 0, 5)
		if br.CheckCollision(b) {
			t.Error("touching ball should not collide")
		}
	})

	t.Run("destroyed brick never collides", func(t *testing.T) {
		br, b := newBrick(), newBall(125, 110, 0, 5)
		br.Destroyed = true
		if br.CheckCollision(b) {
			t.Error("destroyed brick should not collide")
		}
		if b.DY != 5 {
			t.Error("ball velocity should be untouched")
		}
	})
}

func TestParticleLifecycle(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Particles
	ps := NewParticleSystem(cfg, rand.New(rand.NewPCG(7, 7)))

	ps.CreateExplosion(100, 100, core.ColorPink)
	if ps.Len() != 15 {
		t.Fatalf("explosion should spawn 15 particles, got %d", ps.Len())
	}
	for _, p := range ps.Particles {
		if math.Abs(p.VX) >= 3 || math.Abs(p.VY) >= 3 {
			t.Errorf("particle velocity out of range: (%v, %v)", p.VX, p.VY)
		}
		if p.Life != 1 || p.Color != core.ColorPink {
			t.Errorf("particle spawned with %+v", p)
		}
	}

	before := ps.Particles[0]
	ps.Update()
	after := ps.Particles[0]
	if math.Abs(after.VY-(before.VY+0.2)) > eps {
		t.Errorf("gravity not applied: %v -> %v", before.VY, after.VY)
	}
	if math.Abs(after.X-(before.X+before.VX)) > eps {
		t.Errorf("particle did not move: %v -> %v", before.X, after.X)
	}

	for range 48 {
		ps.Update()
	}
	if ps.Len() != 15 {
		t.Errorf("particles should survive 49 ticks, got %d", ps.Len())
	}

	ps.Update()
	ps.Update()
	if ps.Len() != 0 {
		t.Errorf("particles should expire after 51 ticks, got %d", ps.Len())
	}
}

func TestParticleGlyphFades(t *testing.T) {
	if particleGlyph(0.9) != '*' || particleGlyph(0.5) != '+' || particleGlyph(0.1) != '·' {
		t.Error("particle glyph should fade with life")
	}
}
