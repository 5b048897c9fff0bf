package compiler

import "sort"

// Environment is the flat variable table of one script run. It is not safe
// for concurrent use.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get returns the value bound to name, or EmptyValue when name was never set.
func (e *Environment) Get(name string) Value {
	if v, ok := e.vars[name]; ok {
		return v
	}
	return EmptyValue
}

// Lookup is Get with a presence flag.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set creates or overwrites the binding for name.
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.vars)
}
