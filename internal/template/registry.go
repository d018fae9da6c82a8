package template

import (
	"fmt"
	"sync"
)

// Object is one compiled element of a template. Eval appends the object's
// current text (and any style changes) to the pass output.
type Object interface {
	Eval(out *Output)
}

// Factory builds a template object from its raw argument string.
// The registry is passed through so factories can compile nested templates.
type Factory func(reg *Registry, args string) (Object, error)

// Registry maps variable names to object factories.
// It is safe for concurrent lookup; registration normally happens once
// at startup and on config reload.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given variable name.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVariable, name)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory for a variable name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered variable names, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
