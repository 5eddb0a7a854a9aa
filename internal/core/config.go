package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the host surface and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width in characters (terminal hosts)
	ScreenH  int   // Host surface height in characters (terminal hosts)
	WindowW  int   // Host window width in pixels, drives the canvas size
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// KeyRelease is set by hosts that report key release events. Terminal
	// hosts leave it unset and the game emulates release instead.
	KeyRelease bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		WindowW:  820,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int // Current score
	Level int // Current level, starting at 1
	Balls int // Balls in play
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBrickHit       EventKind = iota // A brick absorbed a hit
	EventBrickDestroyed                  // A brick reached its hit limit
	EventBallsSpawned                    // A special brick released extra balls
	EventBallLost                        // A ball fell below the playfield
	EventLevelUp                         // Every brick was cleared
	EventGameReset                       // Every ball was lost; Score/Level hold the final values
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventBallsSpawned:
		return "balls_spawned"
	case EventBallLost:
		return "ball_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// Event is a single tick event.
type Event struct {
	Kind  EventKind
	Score int // Score when the event fired
	Level int // Level when the event fired
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
