package tool

import (
	"fmt"
	"strings"
)

// NormalizeName folds a tool name into its canonical identifier form:
// lowercase with spaces and hyphens replaced by underscores. It is a pure
// function, idempotent, and applied consistently at registration and lookup
// so "Internet Search Tool", "internet-search-tool" and "internet_search_tool"
// all resolve to the same entry.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Registry maps normalized tool names to Tool implementations.
//
// A Registry is populated at construction time and never mutated afterwards,
// which makes it safe to share read-only across any number of concurrent
// agent runs without locking.
type Registry struct {
	tools map[string]Tool
	order []string // registration order, for stable prompt + listing output
}

// NewRegistry builds a Registry from the given tools. Two tools whose names
// normalize to the same identifier are a configuration error.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if err := r.register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(t Tool) error {
	name := NormalizeName(t.Name())
	if name == "" {
		return fmt.Errorf("tool registration: empty name")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool registration: duplicate name %q", name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Lookup resolves a (possibly unnormalized) name to its tool.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[NormalizeName(name)]
	return t, ok
}

// Names returns the registered identifiers in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// Describe concatenates every tool's prompt description, separated by blank
// lines, in registration order.
func (r *Registry) Describe() string {
	parts := make([]string, 0, len(r.order))
	for _, name := range r.order {
		parts = append(parts, Describe(r.tools[name]))
	}
	return strings.Join(parts, "\n\n")
}
