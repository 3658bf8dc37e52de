package tour

import (
	"fmt"
	"sync"

	"langtour/internal/logging"
)

// Registry holds the available sections and preserves registration order,
// which is the order a full tour runs in. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sections map[string]*Section
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]*Section),
	}
}

// Register adds a section. Duplicate names are rejected.
func (r *Registry) Register(s *Section) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid section: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[s.Name]; exists {
		return fmt.Errorf("%w: %s", ErrSectionAlreadyRegistered, s.Name)
	}

	r.sections[s.Name] = s
	r.order = append(r.order, s.Name)

	logging.RegistryDebug("registered section %s (topic=%s)", s.Name, s.Topic)
	return nil
}

// MustRegister registers a section and panics on error.
// Use for static registration when building the default registry.
func (r *Registry) MustRegister(s *Section) {
	if err := r.Register(s); err != nil {
		panic(fmt.Sprintf("failed to register section %s: %v", s.Name, err))
	}
}

// Get returns a section by name.
func (r *Registry) Get(name string) (*Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	return s, nil
}

// Has reports whether a section is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sections[name]
	return ok
}

// Names returns all section names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ByTopic returns the sections of one topic in registration order.
func (r *Registry) ByTopic(topic Topic) []*Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Section
	for _, name := range r.order {
		if s := r.sections[name]; s.Topic == topic {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered sections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sections)
}
