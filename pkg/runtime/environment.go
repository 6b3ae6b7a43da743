package runtime

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Environment provides lexical scoping for runtime values. Environments are
// immutable: Extend layers a fresh frame over the receiver and the receiver
// stays valid, so a closure's captured environment can never be changed out
// from under it. Frames share their parents structurally; the sharing is
// read-only and therefore unobservable.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Parent exposes the enclosing environment (nil at top level).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Extend returns a new environment with a single additional binding layered
// over the receiver. The new binding shadows any existing binding for the
// same name.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{
		values: map[string]Value{name: value},
		parent: e,
	}
}

// Get retrieves a binding, searching outward through the frame chain. A
// missing name is an UnboundVariableError; there is no default.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, &UnboundVariableError{Name: name}
}

// Snapshot flattens the visible bindings into a map, with inner frames
// shadowing outer ones.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value)
	e.snapshotInto(out)
	return out
}

func (e *Environment) snapshotInto(out map[string]Value) {
	if e == nil {
		return
	}
	e.parent.snapshotInto(out)
	for k, v := range e.values {
		out[k] = v
	}
}

// Keys returns the visible binding names in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	keys := lo.Keys(e.Snapshot())
	slices.Sort(keys)
	return keys
}

// Equal reports whether two environments expose the same bindings, compared
// structurally. Frame layout is not observable and does not participate.
func (e *Environment) Equal(other *Environment) bool {
	left := e.Snapshot()
	right := other.Snapshot()
	if len(left) != len(right) {
		return false
	}
	for name, value := range left {
		counterpart, ok := right[name]
		if !ok || !ValuesEqual(value, counterpart) {
			return false
		}
	}
	return true
}
