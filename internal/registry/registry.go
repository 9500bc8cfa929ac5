// Package registry provides a small typed registry for pluggable factories.
// Packages register entries in init() functions, allowing the loader to
// discover implementations (such as level file formats) without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered entry.
type Info struct {
	ID    string
	Title string
}

// Registry maps string IDs to values of type F.
type Registry[F any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]F
	titles  map[string]string
}

// New creates an empty registry. kind names the entries in error messages.
func New[F any](kind string) *Registry[F] {
	return &Registry[F]{
		kind:    kind,
		entries: make(map[string]F),
		titles:  make(map[string]string),
	}
}

// Register adds an entry to the registry.
// Typically called from an init() function.
// Panics if an entry with the same ID is already registered.
func (r *Registry[F]) Register(id, title string, f F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, id))
	}
	r.entries[id] = f
	r.titles[id] = title
}

// List returns information about all registered entries, sorted by ID.
func (r *Registry[F]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.entries))
	for id := range r.entries {
		result = append(result, Info{ID: id, Title: r.titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the entry registered under id.
// Returns an error if the ID is not registered.
func (r *Registry[F]) Lookup(id string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.entries[id]
	if !ok {
		var zero F
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, id)
	}
	return f, nil
}

// Exists checks if an entry with the given ID is registered.
func (r *Registry[F]) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}
