// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the platform can
// create them by ID without importing the game packages directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold pure logic and never touch the terminal; the
// platform maps keys to actions, paces ticks and paints the screen.
type Game interface {
	// ID returns the identifier used on the command line and in score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset prepares a fresh game. Called once at start and again when the
	// player returns from the menu. cfg carries the seed and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the actions
	// held during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current score, progress and flags.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
