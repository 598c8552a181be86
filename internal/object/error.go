package object

import "fmt"

// ErrorKind is the closed taxonomy of runtime failures. Every case the
// operator catalogue documents as "undefined behavior" surfaces as one of
// these, never as a crash or a default value.
type ErrorKind string

const (
	// Undefined: an operator applied outside its documented domain
	// (empty-list head, missing map key, out-of-range index).
	Undefined ErrorKind = "Undefined"
	// TypeMismatch: runtime shape mismatch. A type checker rules these out
	// up front, but the evaluator still checks since it may run on
	// partially-checked expressions.
	TypeMismatch ErrorKind = "TypeMismatch"
	// DoubleAssignment: a state variable assigned twice within one
	// composed action.
	DoubleAssignment ErrorKind = "DoubleAssignment"
	// NotYetAssigned: next(x) read, or a commit attempted, before x was
	// assigned in the current step.
	NotYetAssigned ErrorKind = "NotYetAssigned"
	// ActionFailed: composing onto a disabled action via then.
	ActionFailed ErrorKind = "ActionFailed"
	// ExpectationFailed: an expect postcondition evaluated to false.
	ExpectationFailed ErrorKind = "ExpectationFailed"
	// IncompleteInit: the init action left a state variable unassigned.
	IncompleteInit ErrorKind = "IncompleteInit"
	// Unsupported: the operation would require enumerating an infinite set.
	Unsupported ErrorKind = "Unsupported"
)

// Error is a runtime error value. It flows through evaluation as an Object
// and aborts only the current run.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func (e *Error) Error() string { return e.Inspect() }

func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// IsError reports whether obj is a runtime error value.
func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
