// Package preset provides named scene generators and a registry that cycles
// through them.
package preset

import (
	"vecview/viewer/scene"
)

// Generator replaces the contents of a collection with a scene.
//
// Generate must reset the collection (entries and labels) before adding its
// own vectors.
type Generator interface {
	Name() string
	Generate(c *scene.Collection)
}

// Registry is an ordered list of generators with a current position that
// wraps in both directions. It always holds at least the Empty generator.
type Registry struct {
	target  *scene.Collection
	gens    []Generator
	current int
}

// NewRegistry builds a registry that applies generators to target. An Empty
// generator is prepended if gens does not contain one.
func NewRegistry(target *scene.Collection, gens ...Generator) *Registry {
	hasEmpty := false
	for _, g := range gens {
		if _, ok := g.(Empty); ok {
			hasEmpty = true
			break
		}
	}
	if !hasEmpty {
		gens = append([]Generator{Empty{}}, gens...)
	}
	return &Registry{target: target, gens: gens}
}

func (r *Registry) Len() int { return len(r.gens) }

// Current returns the index and name of the last applied generator.
func (r *Registry) Current() (int, string) {
	return r.current, r.gens[r.current].Name()
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.gens))
	for i, g := range r.gens {
		out[i] = g.Name()
	}
	return out
}

// Find returns the index of the generator with the given name.
func (r *Registry) Find(name string) (int, bool) {
	for i, g := range r.gens {
		if g.Name() == name {
			return i, true
		}
	}
	return 0, false
}

// Apply wraps i modulo Len, runs that generator and makes it current.
func (r *Registry) Apply(i int) (int, string) {
	n := len(r.gens)
	i %= n
	if i < 0 {
		i += n
	}
	r.current = i
	r.gens[i].Generate(r.target)
	return r.Current()
}

func (r *Registry) Next() (int, string) { return r.Apply(r.current + 1) }
func (r *Registry) Prev() (int, string) { return r.Apply(r.current - 1) }
