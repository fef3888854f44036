package runtime

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
)

// Environment is a lexical scope: a binding table plus an optional
// enclosing scope to fall back to. Update defines or overwrites a binding
// in the current scope, exactly the contract the rest of this package
// relies on; recursive `define` needs it to create the name before
// evaluating its value.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Update defines or overwrites name in this scope, shadowing any outer
// binding of the same name. It always succeeds, overwriting a prior local
// definition.
func (e *Environment) Update(name string, val Value) {
	e.store[name] = val
}

// Lookup resolves name by walking outward from this scope. The returned
// error is an *UnboundIdentifierError when the name is not found anywhere
// in the chain.
func (e *Environment) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, nil
		}
	}
	return nil, &UnboundIdentifierError{Name: name}
}

// Has reports whether name is bound in this scope or an enclosing one.
func (e *Environment) Has(name string) bool {
	_, err := e.Lookup(name)
	return err == nil
}

// Outer returns the enclosing scope, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// AddPrimitives bulk-defines a table of primitives into this environment,
// used once at startup by internal/primitives.Install.
func (e *Environment) AddPrimitives(prims map[string]*Primitive) {
	for name, p := range prims {
		e.store[name] = p
	}
}

// Names returns every name bound directly in this scope (not its
// ancestors), naturally sorted so any listing of them is stable. The
// `botlang version` command uses it to count the installed primitives.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// UnboundIdentifierError reports a lookup of a name with no binding in the
// chain.
type UnboundIdentifierError struct {
	Name string
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier: %s", e.Name)
}
