package eval

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/object"
)

// The action combinators. An action evaluates to a boolean: true means
// enabled and its prime-assignments are pending in the register file, false
// means disabled. Runtime errors flow through as error objects.

func init() {
	lazyBuiltins["assign"] = actAssign
	lazyBuiltins["all"] = actAll
	lazyBuiltins["any"] = actAny
	lazyBuiltins["then"] = actThen
	lazyBuiltins["expect"] = actExpect
	lazyBuiltins["reps"] = actReps
	lazyBuiltins["fail"] = actFail
	lazyBuiltins["orKeep"] = actOrKeep
	lazyBuiltins["next"] = actNext
}

func stateVarArg(e *Evaluator, op string, arg ast.Expr) (string, *object.Error) {
	name, ok := arg.(*ast.Name)
	if !ok {
		return "", object.NewError(object.TypeMismatch,
			"%s expects a state variable, got %s", op, arg.String())
	}
	if !e.regs.Declared(name.Value) {
		return "", object.NewError(object.Undefined,
			"%s is not a declared state variable", name.Value)
	}
	return name.Value, nil
}

// commitIntermediate promotes the pending assignments mid-step, between the
// two halves of then/expect and between reps iterations.
func (e *Evaluator) commitIntermediate() *object.Error {
	if missing := e.regs.Commit(); missing != nil {
		return object.NewError(object.NotYetAssigned,
			"state variables left unassigned: %s", strings.Join(missing, ", "))
	}
	return nil
}

// actAssign records the pending next value of a state variable: n' = v.
func actAssign(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 2 {
		return wrongArgs("assign", 2, len(args))
	}
	name, err := stateVarArg(e, "assign", args[0])
	if err != nil {
		return err
	}
	v := e.Eval(args[1])
	if object.IsError(v) {
		return v
	}
	if err := e.regs.SetNext(name, v); err != nil {
		return err
	}
	return TRUE
}

// actAll is conjunction: sub-actions evaluate in order; the first disabled
// one disables the whole conjunction, errors propagate, and the pending
// assignments accumulate (re-assignment is DoubleAssignment via assign).
func actAll(e *Evaluator, args []ast.Expr) object.Object {
	for _, arg := range args {
		res := e.Eval(arg)
		if object.IsError(res) {
			return res
		}
		b, err := asBool("all", res)
		if err != nil {
			return err
		}
		if !b.Value {
			return FALSE
		}
	}
	return TRUE
}

// actAny is disjunction. Every branch is evaluated speculatively against a
// copy of the register state; a branch that raises Undefined from an
// out-of-domain choice counts as disabled rather than erroring. One draw is
// consumed to select uniformly among the enabled branches, always exactly
// one, so the draw sequence is independent of how many branches happened to
// be enabled.
func actAny(e *Evaluator, args []ast.Expr) object.Object {
	saved := e.regs.Save()
	enabled := []object.RegisterState{}
	for _, branch := range args {
		e.regs.Restore(saved)
		res := e.Eval(branch)
		if errObj, ok := res.(*object.Error); ok {
			if errObj.Kind == object.Undefined {
				continue
			}
			e.regs.Restore(saved)
			return errObj
		}
		b, err := asBool("any", res)
		if err != nil {
			e.regs.Restore(saved)
			return err
		}
		if b.Value {
			enabled = append(enabled, e.regs.Save())
		}
	}
	if len(enabled) == 0 {
		e.regs.Restore(saved)
		return FALSE
	}
	pick := e.rand.Pick(len(enabled))
	e.regs.Restore(enabled[pick])
	return TRUE
}

// actThen sequences two actions through an intermediate state. Composing
// onto a disabled left side is an error, not a disabled result; a disabled
// right side is plain false.
func actThen(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 2 {
		return wrongArgs("then", 2, len(args))
	}
	res := e.Eval(args[0])
	if object.IsError(res) {
		return res
	}
	b, err := asBool("then", res)
	if err != nil {
		return err
	}
	if !b.Value {
		return object.NewError(object.ActionFailed,
			"cannot continue from a disabled action in then")
	}
	if err := e.commitIntermediate(); err != nil {
		return err
	}
	res = e.Eval(args[1])
	if object.IsError(res) {
		return res
	}
	if _, err := asBool("then", res); err != nil {
		return err
	}
	return res
}

// actExpect runs an action and checks a boolean postcondition against the
// state it produces, leaving the action's pending assignments untouched.
func actExpect(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 2 {
		return wrongArgs("expect", 2, len(args))
	}
	res := e.Eval(args[0])
	if object.IsError(res) {
		return res
	}
	b, err := asBool("expect", res)
	if err != nil {
		return err
	}
	if !b.Value {
		return object.NewError(object.ActionFailed,
			"cannot continue from a disabled action in expect")
	}
	saved := e.regs.Save()
	if err := e.commitIntermediate(); err != nil {
		return err
	}
	cond := e.Eval(args[1])
	e.regs.Restore(saved)
	if object.IsError(cond) {
		return cond
	}
	cb, err := asBool("expect", cond)
	if err != nil {
		return err
	}
	if !cb.Value {
		return object.NewError(object.ExpectationFailed,
			"postcondition %s does not hold", args[1].String())
	}
	return TRUE
}

// actReps iterates an indexed action n times with then-semantics,
// iteratively rather than by unrolled composition, so large n does not
// recurse.
func actReps(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 2 {
		return wrongArgs("reps", 2, len(args))
	}
	nObj := e.Eval(args[0])
	if object.IsError(nObj) {
		return nObj
	}
	nInt, err := asInt("reps", nObj)
	if err != nil {
		return err
	}
	fObj := e.Eval(args[1])
	if object.IsError(fObj) {
		return fObj
	}
	f, err := asClosure("reps", fObj)
	if err != nil {
		return err
	}
	n, ok := nInt.Int64()
	if !ok {
		return object.NewError(object.Unsupported,
			"repetition count %s is too large", nInt.Inspect())
	}
	if n <= 0 {
		return TRUE
	}
	for i := int64(0); i < n; i++ {
		if i > 0 {
			if err := e.commitIntermediate(); err != nil {
				return err
			}
		}
		res := e.Apply(f, []object.Object{object.NewInt(i)})
		if object.IsError(res) {
			return res
		}
		b, err := asBool("reps", res)
		if err != nil {
			return err
		}
		if !b.Value {
			if i == n-1 {
				return FALSE
			}
			return object.NewError(object.ActionFailed,
				"repetition %d of %d is disabled", i, n)
		}
	}
	return TRUE
}

// actFail negates enabledness as a pure boolean, discarding any assignments
// the probed action made.
func actFail(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 1 {
		return wrongArgs("fail", 1, len(args))
	}
	saved := e.regs.Save()
	res := e.Eval(args[0])
	e.regs.Restore(saved)
	if object.IsError(res) {
		return res
	}
	b, err := asBool("fail", res)
	if err != nil {
		return err
	}
	return object.NativeBoolToBool(!b.Value)
}

// actOrKeep runs an action and fills in the named variables that it left
// unassigned with their current values (stuttering).
func actOrKeep(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) < 1 {
		return wrongArgs("orKeep", 1, len(args))
	}
	res := e.Eval(args[0])
	if object.IsError(res) {
		return res
	}
	b, err := asBool("orKeep", res)
	if err != nil {
		return err
	}
	if !b.Value {
		return FALSE
	}
	for _, arg := range args[1:] {
		name, err := stateVarArg(e, "orKeep", arg)
		if err != nil {
			return err
		}
		if e.regs.HasNext(name) {
			continue
		}
		cur, ok := e.regs.Current(name)
		if !ok {
			return object.NewError(object.NotYetAssigned,
				"%s has no current value to keep", name)
		}
		if err := e.regs.SetNext(name, cur); err != nil {
			return err
		}
	}
	return TRUE
}

// actNext reads the pending next value of a state variable.
func actNext(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 1 {
		return wrongArgs("next", 1, len(args))
	}
	name, err := stateVarArg(e, "next", args[0])
	if err != nil {
		return err
	}
	v, err := e.regs.Next(name)
	if err != nil {
		return err
	}
	return v
}
