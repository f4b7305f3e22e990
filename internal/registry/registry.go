// Package registry provides a global registry of actor factories.
// Actor packages register themselves in init() functions, allowing level
// packs to name actors without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
)

// Factory creates an actor in the tile at pos. Actors that need randomness
// draw it from rng so a seeded run stays deterministic.
type Factory func(pos core.Vector, rng *rand.Rand) (level.Actor, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an actor factory to the registry.
// Typically called from an actor package's init() function.
// Panics if a factory with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: actor %q already registered", name))
	}

	factories[name] = f
}

// List returns the names of all registered actors, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

// Exists checks if an actor with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Bind returns a level.Factory for the named actor that draws randomness
// from rng. Construction errors make the factory yield nil, which the
// parser skips.
func Bind(name string, rng *rand.Rand) (level.Factory, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown actor %q", name)
	}

	return func(pos core.Vector) level.Actor {
		a, err := f(pos, rng)
		if err != nil {
			return nil
		}
		return a
	}, nil
}

// Dictionary resolves a symbol legend into a parser dictionary.
func Dictionary(legend map[rune]string, rng *rand.Rand) (level.Dictionary, error) {
	dict := make(level.Dictionary, len(legend))
	for sym, name := range legend {
		f, err := Bind(name, rng)
		if err != nil {
			return nil, fmt.Errorf("registry: symbol %q: %w", sym, err)
		}
		dict[sym] = f
	}
	return dict, nil
}
