// Package env implements cumunisp's lexically scoped environment: a
// frame of symbol-to-value bindings with an optional parent frame.
package env

import (
	"fmt"

	"github.com/cumunisp/cumunisp/internal/value"
)

// Env is a single binding frame, optionally chained to a parent for
// lexical lookup. The zero value is not usable; construct with New.
type Env struct {
	parent   *Env
	bindings map[string]value.Value
}

// New creates a fresh, empty environment with the given parent (nil
// for a root/global environment).
func New(parent *Env) *Env {
	return &Env{
		parent:   parent,
		bindings: make(map[string]value.Value),
	}
}

// Lookup searches the current frame, then recurses into parents on a
// miss, returning an independent clone of whatever it finds. Failing
// at the root produces an Unbound Symbol error.
func (e *Env) Lookup(name string) (value.Value, error) {
	if v, ok := e.bindings[name]; ok {
		return value.Clone(v), nil
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, fmt.Errorf("unbound symbol %q", name)
}

// LookupValue is the evaluator-facing form of Lookup: on a miss it
// returns the language's own Err value instead of a Go error, since
// an unbound symbol is a normal (non-fatal) evaluation outcome.
func (e *Env) LookupValue(name string) value.Value {
	v, err := e.Lookup(name)
	if err != nil {
		return value.Err{Msg: fmt.Sprintf("Unbound Symbol '%s'", name)}
	}
	return v
}

// Put binds name to v in the current frame only, replacing any prior
// binding of the same name. This is the local ("=") binder.
func (e *Env) Put(name string, v value.Value) {
	e.bindings[name] = value.Clone(v)
}

// Def walks to the root environment and binds there. This is the
// global ("def") binder.
func (e *Env) Def(name string, v value.Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, v)
}

// Copy produces an independent clone of e with the same parent
// reference: used when a user Fun is cloned (value.Clone), so the
// clone's closure never aliases the environment it was copied from.
func (e *Env) Copy() value.Env {
	n := New(e.parent)
	for k, v := range e.bindings {
		n.bindings[k] = value.Clone(v)
	}
	return n
}

// Parent exposes the parent frame, used by the "load" built-in to walk
// up to the global environment.
func (e *Env) Parent() *Env {
	return e.parent
}

// WithParent returns a shallow copy of e re-parented to p, used at
// call time to give a fully-applied user function's body access to
// the caller's lexical scope (spec's "re-parented at call" rule)
// without mutating the original Fun value shared by other callers.
func (e *Env) WithParent(p *Env) *Env {
	n := &Env{parent: p, bindings: e.bindings}
	return n
}

var _ value.Env = (*Env)(nil)
