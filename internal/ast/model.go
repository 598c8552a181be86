package ast

// Def is a named top-level definition: a pure operator, an action wrapped in
// a lambda, or a constant.
type Def struct {
	Name string
	Body Expr
}

// Model is a fully resolved, type-checked specification of a transition
// system, ready for simulation. Vars lists the declared state variables in
// declaration order. Init and Step are actions; Invariants are boolean
// expressions over the current state.
type Model struct {
	Name       string
	Vars       []string
	Defs       []Def
	Init       Expr
	Step       Expr
	Invariants []Def
}

// Invariant returns the named invariant definition.
func (m *Model) Invariant(name string) (Def, bool) {
	for _, inv := range m.Invariants {
		if inv.Name == name {
			return inv, true
		}
	}
	return Def{}, false
}
