package rules

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTarget is returned by Get for names nothing registered.
var ErrUnknownTarget = errors.New("unknown target")

// registry maps target names to constructors. Lookups hand out a fresh
// Target per call.
var (
	registryMu sync.RWMutex
	registry   = map[string]func() Target{}
)

// Register adds a target constructor to the global registry.
// Called from init() in each target package.
func Register(name string, constructor func() Target) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("rules: duplicate target registration: %s", name))
	}
	registry[name] = constructor
}

// Get returns a new instance of the named target.
func Get(name string) (Target, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("rules: %w: %s", ErrUnknownTarget, name)
	}
	return ctor(), nil
}

// All returns sorted names of all registered targets.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
