package topo

import (
	"slices"
)

// Factory builds a fresh Topology on every call.
type Factory func() (*Topology, error)

// Registry maps topology names to factories. The runner creates one at
// startup, fills it, and only reads it afterwards.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return &DuplicateTopologyError{Name: name}
	}
	r.factories[name] = f
	return nil
}

func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Build looks up and runs the named factory.
func (r *Registry) Build(name string) (*Topology, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, &UnknownTopologyError{Name: name}
	}
	return f()
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
