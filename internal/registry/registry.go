// Package registry provides a global registry of opponent controllers.
// Controllers register themselves in init() functions, allowing the
// platform to list and instantiate them by name from configuration.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Controller decides the opponent paddle's vertical velocity each tick.
// Implementations must be pure: the same inputs always give the same output.
type Controller interface {
	// ID returns a unique identifier used in config files and CLI flags.
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Velocity returns the paddle's vertical velocity for this tick.
	Velocity(ballY, paddleY float64) float64
}

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID    string
	Title string
}

// Factory creates a controller moving at the given speed.
type Factory func(speed float64) Controller

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a controller factory to the registry.
// Panics if a controller with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: opponent %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(1).Title()
}

// List returns information about all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a controller by its ID.
// Returns an error if the ID is not registered.
func Create(id string, speed float64) (Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown opponent %q", id)
	}

	return f(speed), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
