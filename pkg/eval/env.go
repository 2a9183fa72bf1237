package eval

import (
	"fmt"

	"github.com/fenlang/fen/pkg/core/value"
)

// Env holds the named bindings visible to an evaluation. Bindings made
// with Bind carry their declared mutability; Assign refuses to touch a
// binding declared constant.
type Env struct {
	vars map[string]value.Variable
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]value.Variable)}
}

// Bind declares a new binding. Redeclaring an existing name is an error.
func (e *Env) Bind(name string, dynamic bool, v value.Value) error {
	if _, ok := e.vars[name]; ok {
		return fmt.Errorf("eval: %q is already declared", name)
	}
	e.vars[name] = value.Bind(name, dynamic, v)
	return nil
}

// Assign replaces the value of an existing dynamic binding.
func (e *Env) Assign(name string, v value.Value) error {
	cur, ok := e.vars[name]
	if !ok {
		return fmt.Errorf("eval: %q is not declared", name)
	}
	if !cur.Dynamic {
		return fmt.Errorf("eval: cannot reassign constant %q", name)
	}
	e.vars[name] = value.Bind(name, true, v)
	return nil
}

// Lookup resolves a name to its variable.
func (e *Env) Lookup(name string) (value.Variable, bool) {
	v, ok := e.vars[name]
	return v, ok
}
