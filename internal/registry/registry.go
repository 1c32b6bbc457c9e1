// Package registry maps mode IDs to game factories. Modes register
// themselves from init, so the CLI and the SSH server can start any of them
// by name without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/island-of-structure/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic: the
// platform owns the terminal, the clock and key mapping.
type Game interface {
	// ID is the mode name used on the command line and as the score board.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts the mode from scratch. It is called before the first
	// Step and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick, applying the frame's presses in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and game-over status.
	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
