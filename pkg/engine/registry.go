package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/cascade/pkg/errors"
)

// Registry is a thread-safe set of engines keyed by name
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// DefaultRegistry returns a new registry holding the built-in engines
func DefaultRegistry() *Registry {
	r := NewRegistry()
	MustRegister(r, NewGoTemplate())
	return r
}

// Register adds an engine under its name
func (r *Registry) Register(e Engine) error {
	if e == nil || e.Name() == "" {
		return errors.New(errors.ErrInvalidInput, "engine name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[e.Name()]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "engine '%s' is already registered", e.Name())
	}

	r.engines[e.Name()] = e
	return nil
}

// Get retrieves an engine by name
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.engines[name]
	if !exists {
		return nil, errors.Newf(errors.ErrEngineNotFound, "template engine '%s' is not registered", name).
			WithDetail("available", r.namesLocked())
	}
	return e, nil
}

// Has checks if an engine is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.engines[name]
	return exists
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustRegister registers an engine and panics if registration fails
// This is useful where registration errors are programming errors
func MustRegister(r *Registry, e Engine) {
	if err := r.Register(e); err != nil {
		panic(fmt.Sprintf("failed to register engine: %v", err))
	}
}
