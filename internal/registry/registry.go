// Package registry provides a global registry for execution strategy
// factories. The built-in strategies register themselves at package init,
// allowing the CLI and platform layers to resolve a strategy by ID without
// hardcoded switch statements.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gravswarm/internal/sim"
)

// Options carries construction parameters a strategy may use.
type Options struct {
	// Workers is the goroutine count for concurrent strategies.
	// Zero means one worker per CPU.
	Workers int
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func(opts Options) sim.Strategy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

func init() {
	Register("sequential", "Evaluate all ships in index order on one goroutine",
		func(Options) sim.Strategy { return sim.NewSequential() })
	Register("parallel", "Partition ships across worker goroutines with a tick barrier",
		func(opts Options) sim.Strategy { return sim.NewParallel(opts.Workers) })
}

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (sim.Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(opts), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
