package peano

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// Env maps names to unevaluated expressions. It is a chain of immutable
// layers; Extend returns a new layer and never touches the receiver. A nil
// *Env is the empty environment.
type Env struct {
	parent *Env
	vars   map[string]Expr
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: map[string]Expr{}}
}

// Extend layers bindings over env. Later bindings shadow earlier ones with
// the same name.
func (env *Env) Extend(bindings []Binding) *Env {
	vars := make(map[string]Expr, len(bindings))
	for _, b := range bindings {
		vars[b.Name] = b.Value
	}
	return &Env{
		parent: env,
		vars:   vars,
	}
}

// Parent returns the layer env was extended from, or nil.
func (env *Env) Parent() *Env {
	if env == nil {
		return nil
	}
	return env.parent
}

// Get finds the innermost binding for name.
func (env *Env) Get(name string) (Expr, bool) {
	for e := env; e != nil; e = e.parent {
		if val, ok := e.vars[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Lookup is Get, failing with ErrUnboundName.
func (env *Env) Lookup(name string) (Expr, error) {
	val, found := env.Get(name)
	if !found {
		return nil, errors.Wrapf(ErrUnboundName, "%q", name)
	}
	return val, nil
}

// Names returns every visible name, sorted.
func (env *Env) Names() []string {
	seen := map[string]struct{}{}
	for e := env; e != nil; e = e.parent {
		for name := range e.vars {
			seen[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
