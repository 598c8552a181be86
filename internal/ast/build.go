package ast

import "math/big"

// Construction helpers for assembling expressions in Go code: built-in
// example models and tests build their trees with these instead of spelling
// out struct literals.

func B(v bool) *BoolLit { return &BoolLit{Value: v} }

func I(v int64) *IntLit { return &IntLit{Value: big.NewInt(v)} }

func S(v string) *StrLit { return &StrLit{Value: v} }

func N(name string) *Name { return &Name{Value: name} }

func Fn(params []string, body Expr) *Lambda {
	return &Lambda{Params: params, Body: body}
}

func Op(name string, args ...Expr) *App {
	return &App{Op: name, Args: args}
}

func LetIn(name string, value, body Expr) *Let {
	return &Let{Name: name, Value: value, Body: body}
}

func Ite(cond, then, els Expr) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func Apply(fn Expr, args ...Expr) *Call {
	return &Call{Fn: fn, Args: args}
}

// Assign builds the prime-assignment `name' = value`.
func Assign(name string, value Expr) *App {
	return Op("assign", N(name), value)
}
