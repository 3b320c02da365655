// Package registry keeps the game modes the platform can launch. Modes
// register themselves from init functions, so the CLI and the SSH server
// discover them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is a mode the platform can drive. Implementations hold pure game
// logic; the platform owns timing, key mapping and terminal output.
type Game interface {
	// ID is the identifier used on the command line, e.g. "classic".
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a new round. It is called once before the first Step
	// and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst, which is cleared first.
	Render(dst *core.Screen)

	// State returns the status after the last Step.
	State() core.GameState
}

// Settings are the CLI and server options handed to a game before Reset.
type Settings struct {
	ConfigPath string // empty means the default search path
	Difficulty string // preset name; empty means normal
	Logger     *log.Logger
}

// Configurable is implemented by games that accept Settings. Configure is
// called once, before the first Reset.
type Configurable interface {
	Configure(s Settings) error
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateConfigured instantiates a game and configures it with s if it
// accepts settings.
func CreateConfigured(id string, s Settings) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(s); err != nil {
			return nil, fmt.Errorf("registry: configure %q: %w", id, err)
		}
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
