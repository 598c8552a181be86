package eval

import (
	"math/big"
	"quill/internal/ast"
	"quill/internal/object"
)

// builtinFn is a strict operator: its arguments arrive fully evaluated.
type builtinFn func(e *Evaluator, args []object.Object) object.Object

// lazyFn receives its arguments unevaluated; the short-circuit connectives
// and the action combinators live here.
type lazyFn func(e *Evaluator, args []ast.Expr) object.Object

var builtins = map[string]builtinFn{}

var lazyBuiltins = map[string]lazyFn{}

func init() {
	builtins["add"] = intBinOp(func(z, a, b *big.Int) { z.Add(a, b) })
	builtins["sub"] = intBinOp(func(z, a, b *big.Int) { z.Sub(a, b) })
	builtins["mul"] = intBinOp(func(z, a, b *big.Int) { z.Mul(a, b) })
	builtins["div"] = builtinDiv
	builtins["mod"] = builtinMod
	builtins["pow"] = builtinPow
	builtins["neg"] = builtinNeg
	builtins["lt"] = intCmpOp(func(c int) bool { return c < 0 })
	builtins["lte"] = intCmpOp(func(c int) bool { return c <= 0 })
	builtins["gt"] = intCmpOp(func(c int) bool { return c > 0 })
	builtins["gte"] = intCmpOp(func(c int) bool { return c >= 0 })
	builtins["eq"] = builtinEq
	builtins["neq"] = builtinNeq
	builtins["not"] = builtinNot
	builtins["iff"] = builtinIff

	builtins["Set"] = builtinSet
	builtins["List"] = builtinList
	builtins["Tup"] = builtinTup
	builtins["Map"] = builtinMapLit
	builtins["Rec"] = builtinRec
	builtins["variant"] = builtinVariant
	builtins["label"] = builtinLabel
	builtins["unwrap"] = builtinUnwrap
	builtins["field"] = builtinField
	builtins["with"] = builtinWith
	builtins["item"] = builtinItem

	lazyBuiltins["and"] = lazyAnd
	lazyBuiltins["or"] = lazyOr
	lazyBuiltins["implies"] = lazyImplies
	lazyBuiltins["ite"] = lazyIte
}

func wrongArgs(op string, want, got int) *object.Error {
	return object.NewError(object.TypeMismatch,
		"%s expects %d arguments, got %d", op, want, got)
}

func asInt(op string, v object.Object) (*object.Int, *object.Error) {
	i, ok := v.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects INT, got %s", op, v.Type())
	}
	return i, nil
}

func asBool(op string, v object.Object) (*object.Bool, *object.Error) {
	b, ok := v.(*object.Bool)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects BOOL, got %s", op, v.Type())
	}
	return b, nil
}

func asStr(op string, v object.Object) (*object.Str, *object.Error) {
	s, ok := v.(*object.Str)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects STR, got %s", op, v.Type())
	}
	return s, nil
}

func asList(op string, v object.Object) (*object.List, *object.Error) {
	l, ok := v.(*object.List)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects LIST, got %s", op, v.Type())
	}
	return l, nil
}

func asMap(op string, v object.Object) (*object.Map, *object.Error) {
	m, ok := v.(*object.Map)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects MAP, got %s", op, v.Type())
	}
	return m, nil
}

// asSet insists on an enumerable set: operators that would have to walk an
// infinite set fail fast with Unsupported.
func asSet(op string, v object.Object) (*object.Set, *object.Error) {
	switch s := v.(type) {
	case *object.Set:
		return s, nil
	case *object.InfiniteSet:
		return nil, object.NewError(object.Unsupported,
			"%s cannot enumerate the infinite set %s", op, s.Descr)
	default:
		return nil, object.NewError(object.TypeMismatch,
			"%s expects SET, got %s", op, v.Type())
	}
}

func asClosure(op string, v object.Object) (*object.Closure, *object.Error) {
	c, ok := v.(*object.Closure)
	if !ok {
		return nil, object.NewError(object.TypeMismatch,
			"%s expects an operator, got %s", op, v.Type())
	}
	return c, nil
}

func intBinOp(apply func(z, a, b *big.Int)) builtinFn {
	return func(e *Evaluator, args []object.Object) object.Object {
		if len(args) != 2 {
			return wrongArgs("arithmetic operator", 2, len(args))
		}
		a, err := asInt("arithmetic operator", args[0])
		if err != nil {
			return err
		}
		b, err := asInt("arithmetic operator", args[1])
		if err != nil {
			return err
		}
		z := new(big.Int)
		apply(z, a.Value, b.Value)
		return &object.Int{Value: z}
	}
}

func intCmpOp(accept func(c int) bool) builtinFn {
	return func(e *Evaluator, args []object.Object) object.Object {
		if len(args) != 2 {
			return wrongArgs("comparison operator", 2, len(args))
		}
		a, err := asInt("comparison operator", args[0])
		if err != nil {
			return err
		}
		b, err := asInt("comparison operator", args[1])
		if err != nil {
			return err
		}
		return object.NativeBoolToBool(accept(a.Value.Cmp(b.Value)))
	}
}

func builtinDiv(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("div", 2, len(args))
	}
	a, err := asInt("div", args[0])
	if err != nil {
		return err
	}
	b, err := asInt("div", args[1])
	if err != nil {
		return err
	}
	if b.Value.Sign() == 0 {
		return object.NewError(object.Undefined, "division by zero")
	}
	return &object.Int{Value: new(big.Int).Quo(a.Value, b.Value)}
}

func builtinMod(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("mod", 2, len(args))
	}
	a, err := asInt("mod", args[0])
	if err != nil {
		return err
	}
	b, err := asInt("mod", args[1])
	if err != nil {
		return err
	}
	if b.Value.Sign() == 0 {
		return object.NewError(object.Undefined, "modulo by zero")
	}
	return &object.Int{Value: new(big.Int).Rem(a.Value, b.Value)}
}

func builtinPow(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("pow", 2, len(args))
	}
	a, err := asInt("pow", args[0])
	if err != nil {
		return err
	}
	b, err := asInt("pow", args[1])
	if err != nil {
		return err
	}
	if b.Value.Sign() < 0 {
		return object.NewError(object.Undefined, "negative exponent %s", b.Value)
	}
	if a.Value.Sign() == 0 && b.Value.Sign() == 0 {
		return object.NewError(object.Undefined, "0 raised to the power of 0")
	}
	return &object.Int{Value: new(big.Int).Exp(a.Value, b.Value, nil)}
}

func builtinNeg(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("neg", 1, len(args))
	}
	a, err := asInt("neg", args[0])
	if err != nil {
		return err
	}
	return &object.Int{Value: new(big.Int).Neg(a.Value)}
}

func builtinEq(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("eq", 2, len(args))
	}
	eq, err := object.Equal(args[0], args[1])
	if err != nil {
		return err
	}
	return object.NativeBoolToBool(eq)
}

func builtinNeq(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("neq", 2, len(args))
	}
	eq, err := object.Equal(args[0], args[1])
	if err != nil {
		return err
	}
	return object.NativeBoolToBool(!eq)
}

func builtinNot(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("not", 1, len(args))
	}
	b, err := asBool("not", args[0])
	if err != nil {
		return err
	}
	return object.NativeBoolToBool(!b.Value)
}

func builtinIff(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("iff", 2, len(args))
	}
	a, err := asBool("iff", args[0])
	if err != nil {
		return err
	}
	b, err := asBool("iff", args[1])
	if err != nil {
		return err
	}
	return object.NativeBoolToBool(a.Value == b.Value)
}

func builtinSet(e *Evaluator, args []object.Object) object.Object {
	s, err := object.NewSet(args...)
	if err != nil {
		return err
	}
	return s
}

func builtinList(e *Evaluator, args []object.Object) object.Object {
	elems := make([]object.Object, len(args))
	copy(elems, args)
	return &object.List{Elements: elems}
}

func builtinTup(e *Evaluator, args []object.Object) object.Object {
	elems := make([]object.Object, len(args))
	copy(elems, args)
	return &object.Tuple{Elements: elems}
}

func builtinMapLit(e *Evaluator, args []object.Object) object.Object {
	if len(args)%2 != 0 {
		return object.NewError(object.TypeMismatch,
			"Map expects alternating key/value arguments, got %d", len(args))
	}
	pairs := make([]object.MapPair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, object.MapPair{Key: args[i], Value: args[i+1]})
	}
	m, err := object.NewMap(pairs...)
	if err != nil {
		return err
	}
	return m
}

func builtinRec(e *Evaluator, args []object.Object) object.Object {
	if len(args)%2 != 0 {
		return object.NewError(object.TypeMismatch,
			"Rec expects alternating name/value arguments, got %d", len(args))
	}
	fields := make([]object.RecordField, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		name, err := asStr("Rec", args[i])
		if err != nil {
			return err
		}
		fields = append(fields, object.RecordField{Name: name.Value, Value: args[i+1]})
	}
	return object.NewRecord(fields...)
}

func builtinVariant(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("variant", 2, len(args))
	}
	label, err := asStr("variant", args[0])
	if err != nil {
		return err
	}
	return &object.Variant{Label: label.Value, Value: args[1]}
}

func builtinLabel(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("label", 1, len(args))
	}
	v, ok := args[0].(*object.Variant)
	if !ok {
		return object.NewError(object.TypeMismatch,
			"label expects VARIANT, got %s", args[0].Type())
	}
	return &object.Str{Value: v.Label}
}

func builtinUnwrap(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("unwrap", 1, len(args))
	}
	v, ok := args[0].(*object.Variant)
	if !ok {
		return object.NewError(object.TypeMismatch,
			"unwrap expects VARIANT, got %s", args[0].Type())
	}
	return v.Value
}

func builtinField(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("field", 2, len(args))
	}
	rec, ok := args[0].(*object.Record)
	if !ok {
		return object.NewError(object.TypeMismatch,
			"field expects RECORD, got %s", args[0].Type())
	}
	name, err := asStr("field", args[1])
	if err != nil {
		return err
	}
	v, found := rec.Field(name.Value)
	if !found {
		return object.NewError(object.Undefined, "record has no field %q", name.Value)
	}
	return v
}

func builtinWith(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("with", 3, len(args))
	}
	rec, ok := args[0].(*object.Record)
	if !ok {
		return object.NewError(object.TypeMismatch,
			"with expects RECORD, got %s", args[0].Type())
	}
	name, err := asStr("with", args[1])
	if err != nil {
		return err
	}
	updated, found := rec.With(name.Value, args[2])
	if !found {
		return object.NewError(object.Undefined, "record has no field %q", name.Value)
	}
	return updated
}

// item is 1-based tuple projection.
func builtinItem(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("item", 2, len(args))
	}
	tup, ok := args[0].(*object.Tuple)
	if !ok {
		return object.NewError(object.TypeMismatch,
			"item expects TUPLE, got %s", args[0].Type())
	}
	idx, err := asInt("item", args[1])
	if err != nil {
		return err
	}
	i, ok := idx.Int64()
	if !ok || i < 1 || i > int64(len(tup.Elements)) {
		return object.NewError(object.Undefined,
			"tuple index %s out of range 1..%d", idx.Inspect(), len(tup.Elements))
	}
	return tup.Elements[i-1]
}

func lazyAnd(e *Evaluator, args []ast.Expr) object.Object {
	for _, arg := range args {
		v := e.Eval(arg)
		if object.IsError(v) {
			return v
		}
		b, err := asBool("and", v)
		if err != nil {
			return err
		}
		if !b.Value {
			return FALSE
		}
	}
	return TRUE
}

func lazyOr(e *Evaluator, args []ast.Expr) object.Object {
	for _, arg := range args {
		v := e.Eval(arg)
		if object.IsError(v) {
			return v
		}
		b, err := asBool("or", v)
		if err != nil {
			return err
		}
		if b.Value {
			return TRUE
		}
	}
	return FALSE
}

func lazyImplies(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 2 {
		return wrongArgs("implies", 2, len(args))
	}
	v := e.Eval(args[0])
	if object.IsError(v) {
		return v
	}
	b, err := asBool("implies", v)
	if err != nil {
		return err
	}
	if !b.Value {
		return TRUE
	}
	w := e.Eval(args[1])
	if object.IsError(w) {
		return w
	}
	if _, err := asBool("implies", w); err != nil {
		return err
	}
	return w
}

func lazyIte(e *Evaluator, args []ast.Expr) object.Object {
	if len(args) != 3 {
		return wrongArgs("ite", 3, len(args))
	}
	return e.evalIf(&ast.If{Cond: args[0], Then: args[1], Else: args[2]})
}
