// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "fourwins").
	// Used for CLI commands and match history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when starting a new round.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Summary describes the current round for the match history.
	Summary() core.MatchSummary
}

// Options carries per-session settings into a factory.
type Options struct {
	Config     config.FourWinsConfig
	Difficulty config.DifficultyPreset
}

// DefaultOptions returns options built from the hardcoded defaults.
func DefaultOptions() Options {
	return Options{
		Config:     config.DefaultFourWinsConfig(),
		Difficulty: config.DifficultyNormal,
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(opts Options) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
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
	titles[id] = f(DefaultOptions()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(opts), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the registered title for id, or id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
