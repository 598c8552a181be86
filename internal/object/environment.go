package object

// Environment is an immutable-per-scope chain of name bindings. Lookup
// walks outward through enclosing scopes; a binding shadows an outer one of
// the same name. Scopes are created per let-binding and lambda application
// and dropped when the scope exits; no runtime value can reach back into a
// scope cyclically, so plain pointers suffice.
type Environment struct {
	bindings map[string]Object
	outer    *Environment
}

func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

func (e *Environment) Get(name string) (Object, bool) {
	if v, ok := e.bindings[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

func (e *Environment) Define(name string, val Object) {
	e.bindings[name] = val
}
