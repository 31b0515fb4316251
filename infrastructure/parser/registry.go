package parser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rios0rios0/reqdiff/domain"
)

var errUnknownFormat = errors.New("unknown manifest format")

// Registry manages all registered manifest format parsers.
type Registry struct {
	parsers map[string]domain.Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]domain.Parser),
	}
}

// Register adds a parser under its name.
func (r *Registry) Register(p domain.Parser) {
	r.parsers[p.Name()] = p
}

// Get returns the parser with the given name.
func (r *Registry) Get(name string) (domain.Parser, error) {
	p, ok := r.parsers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, name)
	}
	return p, nil
}

// Detect returns the first parser whose format matches the filename, walking
// parsers in name order so detection stays deterministic.
func (r *Registry) Detect(filename string) (domain.Parser, bool) {
	for _, name := range r.Names() {
		if r.parsers[name].Detect(filename) {
			return r.parsers[name], true
		}
	}
	return nil, false
}

// Names returns the sorted list of registered format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
