package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rios0rios0/reqdiff/domain"
)

var errUnknownOutput = errors.New("unknown output format")

// Registry manages all registered diff result renderers.
type Registry struct {
	renderers map[string]domain.Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]domain.Renderer),
	}
}

// Register adds a renderer under its name.
func (r *Registry) Register(renderer domain.Renderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer with the given name.
func (r *Registry) Get(name string) (domain.Renderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownOutput, name)
	}
	return renderer, nil
}

// Names returns the sorted list of registered output format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
