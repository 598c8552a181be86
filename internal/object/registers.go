package object

import (
	"golang.org/x/exp/maps"
)

// Registers is the register file: one entry per declared state variable,
// holding its committed current value and, transiently during a step, its
// pending next value.
type Registers struct {
	names   []string
	current map[string]Object
	next    map[string]Object
}

func NewRegisters(names []string) *Registers {
	return &Registers{
		names:   names,
		current: make(map[string]Object, len(names)),
		next:    make(map[string]Object, len(names)),
	}
}

// Names returns the declared state variables in declaration order.
func (r *Registers) Names() []string { return r.names }

func (r *Registers) Declared(name string) bool {
	_, ok := r.current[name]
	if ok {
		return true
	}
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Current reads the committed value of a state variable.
func (r *Registers) Current(name string) (Object, bool) {
	v, ok := r.current[name]
	return v, ok
}

// Next reads the pending next value of a state variable; reading before the
// corresponding assignment is NotYetAssigned, modeling the partial order of
// assignment within one composed action.
func (r *Registers) Next(name string) (Object, *Error) {
	v, ok := r.next[name]
	if !ok {
		return nil, NewError(NotYetAssigned, "next value of %s read before assignment", name)
	}
	return v, nil
}

// SetNext records the pending next value for a variable. A second
// assignment within the same composed action is DoubleAssignment.
func (r *Registers) SetNext(name string, v Object) *Error {
	if _, ok := r.next[name]; ok {
		return NewError(DoubleAssignment, "state variable %s assigned twice in one action", name)
	}
	r.next[name] = v
	return nil
}

func (r *Registers) HasNext(name string) bool {
	_, ok := r.next[name]
	return ok
}

// Unassigned lists the state variables with no pending next value, in
// declaration order.
func (r *Registers) Unassigned() []string {
	var missing []string
	for _, n := range r.names {
		if _, ok := r.next[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Commit promotes every pending next value to the current value and clears
// the pending slots. It returns the unassigned variables instead of
// committing when the assignment is incomplete; the caller decides which
// error kind that is (IncompleteInit for init, NotYetAssigned mid-step).
func (r *Registers) Commit() []string {
	if missing := r.Unassigned(); len(missing) > 0 {
		return missing
	}
	for n, v := range r.next {
		r.current[n] = v
	}
	maps.Clear(r.next)
	return nil
}

// RegisterState is a saved copy of both the committed and the pending
// values, used to evaluate disjunction branches and fail() speculatively.
type RegisterState struct {
	current map[string]Object
	next    map[string]Object
}

func (r *Registers) Save() RegisterState {
	return RegisterState{
		current: maps.Clone(r.current),
		next:    maps.Clone(r.next),
	}
}

func (r *Registers) Restore(s RegisterState) {
	r.current = maps.Clone(s.current)
	r.next = maps.Clone(s.next)
}

// Snapshot copies the committed state, keyed by variable name. Traces are
// built from these.
func (r *Registers) Snapshot() map[string]Object {
	return maps.Clone(r.current)
}
