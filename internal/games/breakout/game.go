// Package breakout implements a Breakout brick breaker with particle effects.
//
// Physics run in logical canvas units (800x600 by default) and are scaled to
// the terminal only when rendering, so gameplay does not depend on window size.
package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Game states
const (
	StateTitle         = "title"    // Intro overlay, waiting for the first launch
	StateServe         = "serve"    // Ball on paddle, waiting for launch
	StatePlaying       = "playing"  // Ball in play
	StatePaused        = "paused"   // Game paused
	StateLevelComplete = "complete" // All bricks destroyed, waiting to continue
	StateGameOver      = "gameover" // No lives left
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Breakout game logic.
type Game struct {
	// Game objects
	paddle    *Paddle
	ball      *Ball
	bricks    []*Brick
	particles *ParticleSystem

	// Game state
	state     string
	resumeTo  string // State restored when unpausing
	score     int
	lives     int
	level     int
	tickCount int
	combo     int // Bricks broken since the ball last touched the paddle
	moveHold  int // Ticks left before a key-driven paddle move stops

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	events     []core.Event

	layout layout
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading configuration files.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes the game and shows the title overlay.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg.Bricks.Columns == 0 {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewPCG(uint64(runtime.Seed), uint64(runtime.Seed)^0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits reinterpretation

	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
	g.paddle = NewPaddle(g.cfg.Paddle, w, h)
	g.ball = NewBall(g.cfg.Ball, g.paddle, w, h)
	g.particles = NewParticleSystem(g.cfg.Particles, g.rng)
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, w, h)

	g.tickCount = 0
	g.restart()
	g.state = StateTitle
}

// Resize recomputes the screen mapping; the simulation is unaffected.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = newLayout(width, height, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
}

// restart resets score, lives and level and rebuilds the wall.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.combo = 0
	g.moveHold = 0
	g.paddle.Stop()
	g.particles.Clear()
	g.applyLevelSpeed()
	g.ball.Reset()
	g.initBricks()
	g.state = StateServe
}

// nextLevel advances to the next, taller wall.
func (g *Game) nextLevel() {
	g.level++
	g.combo = 0
	g.applyLevelSpeed()
	g.ball.Reset()
	g.initBricks()
	g.state = StateServe
}

// applyLevelSpeed lets the difficulty manager scale ball speed per level.
func (g *Game) applyLevelSpeed() {
	g.ball.BaseSpeed = g.difficulty.Speed(g.cfg.Ball.Speed, config.Progress{
		Level: g.level,
		Score: g.score,
		Ticks: g.tickCount,
	})
}

// BrickRows returns the number of brick rows for a level.
// The wall grows by one row per level up to the configured maximum.
func BrickRows(cfg config.BricksConfig, level int) int {
	rows := cfg.BaseRows + level
	if cfg.MaxRows > 0 && rows > cfg.MaxRows {
		rows = cfg.MaxRows
	}
	return rows
}

// initBricks lays out the wall for the current level. Upper rows are worth more.
func (g *Game) initBricks() {
	bc := g.cfg.Bricks
	rows := BrickRows(bc, g.level)
	cols := bc.Columns
	brickWidth := (g.cfg.Canvas.Width-2*bc.SideMargin)/float64(cols) - bc.Gap

	g.bricks = make([]*Brick, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			g.bricks = append(g.bricks, &Brick{
				X:      float64(col)*(brickWidth+bc.Gap) + bc.SideMargin,
				Y:      float64(row)*(bc.Height+bc.Gap) + bc.TopOffset,
				Width:  brickWidth,
				Height: bc.Height,
				Color:  core.Color(bc.Colors[row%len(bc.Colors)]),
				Points: (rows - row) * bc.PointsPerRow,
			})
		}
	}
}

// RemainingBricks returns the number of bricks not yet destroyed.
func (g *Game) RemainingBricks() int {
	count := 0
	for _, b := range g.bricks {
		if !b.Destroyed {
			count++
		}
	}
	return count
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.layout.tooSmall {
		return g.result()
	}

	g.handleInput(in)

	if g.state != StateServe && g.state != StatePlaying {
		return g.result()
	}

	g.tickCount++
	g.update()

	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) emit(t core.EventType, count int) {
	g.events = append(g.events, core.Event{Type: t, Count: count})
}

// handleInput applies the frame's actions according to the current state.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.restart()
		g.emit(core.EventGameStarted, 0)
		return
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if in.Has(core.ActionLaunch) {
		switch g.state {
		case StateTitle:
			g.state = StateServe
			g.emit(core.EventGameStarted, 0)
			g.launch()
		case StateServe:
			g.launch()
		case StateLevelComplete:
			g.nextLevel()
		}
	}

	if in.HasPointer() {
		g.handlePointer(in.Pointer)
	}

	if g.state != StateServe && g.state != StatePlaying {
		return
	}

	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.paddle.MoveLeft()
		g.moveHold = g.cfg.Paddle.HoldTicks
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.paddle.MoveRight()
		g.moveHold = g.cfg.Paddle.HoldTicks
	}
}

// handlePointer centers the paddle under a pressed or dragged pointer.
// A press on the title screen starts the game without launching.
func (g *Game) handlePointer(p core.Pointer) {
	switch p.Phase {
	case core.PointerPress, core.PointerDrag:
		if g.state == StateTitle && p.Phase == core.PointerPress {
			g.state = StateServe
			g.emit(core.EventGameStarted, 0)
		}
		if g.state == StateServe || g.state == StatePlaying {
			g.moveHold = 0
			g.paddle.Stop()
			g.paddle.FollowPointer(g.layout.logicalX(p.X))
		}
	case core.PointerRelease:
		g.paddle.Stop()
	}
}

func (g *Game) togglePause() {
	switch g.state {
	case StateServe, StatePlaying:
		g.resumeTo = g.state
		g.state = StatePaused
		g.emit(core.EventPaused, 0)
	case StatePaused:
		g.state = g.resumeTo
		g.emit(core.EventResumed, 0)
	}
}

func (g *Game) launch() {
	if g.ball.Launch(g.rng) {
		g.state = StatePlaying
	}
}

// update runs one simulation tick: paddle, ball, particles, bricks, then
// ball loss and the level-clear check.
func (g *Game) update() {
	if g.moveHold > 0 {
		g.moveHold--
		if g.moveHold == 0 {
			g.paddle.Stop()
		}
	}

	g.paddle.Update()

	contact := g.ball.Update()
	if contact.Has(ContactWall) {
		g.emit(core.EventWallBounce, 0)
	}
	if contact.Has(ContactPaddle) {
		g.combo = 0
		g.emit(core.EventPaddleHit, 0)
	}

	g.particles.Update()

	for _, brick := range g.bricks {
		if brick.CheckCollision(g.ball) {
			g.score += brick.Points
			g.combo++
			g.particles.CreateExplosion(brick.X+brick.Width/2, brick.Y+brick.Height/2, brick.Color)
			g.emit(core.EventBrickBroken, g.combo)
		}
	}

	if g.ball.IsOut() {
		g.lives--
		g.combo = 0
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			g.emit(core.EventGameOver, g.score)
			return
		}
		g.emit(core.EventLifeLost, g.lives)
		g.ball.Reset()
		g.state = StateServe
	}

	if g.RemainingBricks() == 0 {
		g.state = StateLevelComplete
		g.emit(core.EventLevelComplete, g.level)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Running:  g.state == StateServe || g.state == StatePlaying,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current 1-based level.
func (g *Game) Level() int { return g.level }

// Phase returns the internal state name.
func (g *Game) Phase() string { return g.state }

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
