// Package profile - profile registry
package profile

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered profiles by name
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]*Profile),
	}
}

// Register validates and adds a profile. Registering an existing name fails;
// profiles are immutable once published.
func (r *Registry) Register(p *Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[p.Name]; exists {
		return fmt.Errorf("profile %q is already registered", p.Name)
	}
	r.profiles[p.Name] = p
	return nil
}

// Get returns a profile by name
func (r *Registry) Get(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// Names returns the registered profile names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry is the process-wide registry
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry
func Default() *Registry {
	return defaultRegistry
}

// Register adds a profile to the default registry
func Register(p *Profile) error {
	return defaultRegistry.Register(p)
}

// Get returns a profile from the default registry
func Get(name string) (*Profile, bool) {
	return defaultRegistry.Get(name)
}

// Names lists the default registry's profile names
func Names() []string {
	return defaultRegistry.Names()
}

// MustRegister panics if registration fails. Used for built-in profiles,
// which must be valid at process start.
func MustRegister(p *Profile) {
	if err := Register(p); err != nil {
		panic(err)
	}
}
