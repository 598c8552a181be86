package ast

import (
	"bytes"
	"math/big"
	"strings"
)

// The base Node interface. Nodes arrive from the front-end already resolved
// and type-checked; there is no token or position information to carry.
type Node interface {
	String() string
}

type Expr interface {
	Node
	exprNode()
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (b *BoolLit) exprNode() {}
func (b *BoolLit) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// IntLit is an arbitrary-precision integer literal.
type IntLit struct {
	Value *big.Int
}

func (i *IntLit) exprNode()      {}
func (i *IntLit) String() string { return i.Value.String() }

// StrLit is a string literal.
type StrLit struct {
	Value string
}

func (s *StrLit) exprNode()      {}
func (s *StrLit) String() string { return `"` + s.Value + `"` }

// Name references a binding: an operator definition, a let- or lambda-bound
// name, or a declared state variable (read as its current value).
type Name struct {
	Value string
}

func (n *Name) exprNode()      {}
func (n *Name) String() string { return n.Value }

// Lambda is an anonymous operator. Applying it evaluates Body in a fresh
// scope that binds Params to the arguments, enclosed by the environment
// captured when the lambda was evaluated.
type Lambda struct {
	Params []string
	Body   Expr
}

func (l *Lambda) exprNode() {}
func (l *Lambda) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(strings.Join(l.Params, ", "))
	out.WriteString(") => ")
	out.WriteString(l.Body.String())
	return out.String()
}

// Let binds the value of Value to Name within Body. Nondeterministic
// bindings (`nondet x = S.oneOf()`) are ordinary lets whose value expression
// draws from the run's random stream.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func (l *Let) exprNode() {}
func (l *Let) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(l.Name)
	out.WriteString(" = ")
	out.WriteString(l.Value.String())
	out.WriteString(" { ")
	out.WriteString(l.Body.String())
	out.WriteString(" }")
	return out.String()
}

// If is `ite(c, t, e)`: the condition is evaluated first and exactly one
// branch is evaluated afterwards. The untaken branch is never touched, so
// branches may be actions.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (i *If) exprNode() {}
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Cond.String())
	out.WriteString(") ")
	out.WriteString(i.Then.String())
	out.WriteString(" else ")
	out.WriteString(i.Else.String())
	return out.String()
}

// App applies a named operator: a builtin from the operator catalogue or a
// user definition bound in the environment. Builtins with non-strict
// semantics (and, or, implies, the action combinators) receive their
// arguments unevaluated.
type App struct {
	Op   string
	Args []Expr
}

func (a *App) exprNode() {}
func (a *App) String() string {
	var out bytes.Buffer
	out.WriteString(a.Op)
	out.WriteString("(")
	args := make([]string, 0, len(a.Args))
	for _, arg := range a.Args {
		args = append(args, arg.String())
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Call applies an expression that evaluates to a closure. It is the
// higher-order counterpart of App for operators passed around as values.
type Call struct {
	Fn   Expr
	Args []Expr
}

func (c *Call) exprNode() {}
func (c *Call) String() string {
	var out bytes.Buffer
	out.WriteString(c.Fn.String())
	out.WriteString("(")
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.String())
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
