package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory constructs a default instance of the registered type.
type Factory[T any] func() (T, error)

// Registry manages named factory closures.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Register rejects empty names, nil factories, and duplicates;
//   New reports unknown names with ErrNotRegistered.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory under name. Names are trimmed of surrounding
// whitespace and must be unique.
func (r *Registry[T]) Register(name string, factory Factory[T]) error {
	name = strings.TrimSpace(name)
	if name == "" || factory == nil {
		return ErrInvalidRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.factories[name] = factory
	return nil
}

// New constructs an instance of the type registered under name.
func (r *Registry[T]) New(name string) (T, error) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	return factory()
}

// List returns registered names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
