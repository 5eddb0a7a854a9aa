// Package registry maps game IDs to factories so the hosts can build a fresh
// game per run without importing its package. Brickfall registers a single
// game, "breakout", from its init; the terminal, SSH and score commands look
// it up by that ID, which is also the key scores are stored under.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Game is what a host drives once per tick. Implementations hold simulation
// state only; input mapping, timing and drawing belong to the host.
type Game interface {
	// ID is the registry key and the game column of the scores table.
	ID() string

	// Title is shown in window titles and the scoreboard header.
	Title() string

	// Reset starts a new run sized from cfg.WindowW and seeded from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of host actions and advances the simulation.
	// Events in the result report hits, released balls, level-ups and resets.
	Step(in core.InputFrame) core.StepResult

	// Render scales the playfield onto a character screen.
	Render(dst *core.Screen)

	// State returns score, level and ball count after the last Step.
	State() core.GameState
}

// Factory builds a game ready for Reset.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register binds id to f. It is called from init, so a second registration
// of the same id is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new game for id. Every SSH session and terminal run gets
// its own instance.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered. The SSH server checks it before
// accepting connections.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
