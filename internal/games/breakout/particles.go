package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Particle is a single spark of a brick explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 when spawned, removed at 0
	Color  core.Color
}

// ParticleSystem owns all live particles.
type ParticleSystem struct {
	Particles []Particle

	cfg config.ParticlesConfig
	rng *rand.Rand
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, 0, cfg.Count*4),
		cfg:       cfg,
		rng:       rng,
	}
}

// CreateExplosion emits a burst of particles at (x, y).
func (ps *ParticleSystem) CreateExplosion(x, y float64, color core.Color) {
	for range ps.cfg.Count {
		ps.Particles = append(ps.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (ps.rng.Float64() - 0.5) * ps.cfg.Spread,
			VY:    (ps.rng.Float64() - 0.5) * ps.cfg.Spread,
			Life:  1,
			Color: color,
		})
	}
}

// Update moves particles, applies gravity and fades them out.
func (ps *ParticleSystem) Update() {
	alive := ps.Particles[:0]
	for _, p := range ps.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.cfg.Gravity
		p.Life -= ps.cfg.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.Particles = alive
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.Particles)
}

// particleGlyph picks a glyph that fades with remaining life.
func particleGlyph(life float64) rune {
	switch {
	case life > 0.66:
		return '*'
	case life > 0.33:
		return '+'
	default:
		return '·'
	}
}
