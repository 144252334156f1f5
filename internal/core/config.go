package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Running  bool // Whether the simulation is advancing (ball in play or serving)
}

// EventType identifies something noteworthy that happened during a tick.
// The platform turns events into sounds; games never touch audio directly.
type EventType int

const (
	EventGameStarted EventType = iota
	EventPaddleHit
	EventWallBounce
	EventBrickBroken
	EventLifeLost
	EventLevelComplete
	EventGameOver
	EventPaused
	EventResumed
)

// String returns a human-readable name for the event.
func (e EventType) String() string {
	switch e {
	case EventGameStarted:
		return "GameStarted"
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventBrickBroken:
		return "BrickBroken"
	case EventLifeLost:
		return "LifeLost"
	case EventLevelComplete:
		return "LevelComplete"
	case EventGameOver:
		return "GameOver"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by Step.
type Event struct {
	Type  EventType
	Count int // Event-specific magnitude (e.g. bricks broken since last paddle hit)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
