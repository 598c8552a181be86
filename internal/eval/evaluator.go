package eval

import (
	"log/slog"
	"quill/internal/ast"
	"quill/internal/object"
)

var (
	TRUE  = object.TRUE
	FALSE = object.FALSE
)

// Evaluator evaluates expressions and actions of one run against a register
// file and a seeded choice source. Pure evaluation never touches the
// registers except through state-variable reads and next().
type Evaluator struct {
	envStack []*object.Environment
	regs     *object.Registers
	rand     *Source
}

func New(rootEnv *object.Environment, regs *object.Registers, src *Source) *Evaluator {
	return &Evaluator{
		envStack: []*object.Environment{rootEnv},
		regs:     regs,
		rand:     src,
	}
}

// Pure evaluates a single expression against an environment with no
// registers and no randomness, for non-simulation uses such as single-shot
// evaluation in interactive tools.
func Pure(expr ast.Expr, env *object.Environment) (object.Object, *object.Error) {
	if env == nil {
		env = object.NewEnvironment()
	}
	e := New(env, object.NewRegisters(nil), NewSource(0))
	result := e.Eval(expr)
	if err, ok := result.(*object.Error); ok {
		return nil, err
	}
	return result, nil
}

func (e *Evaluator) PushEnv(env *object.Environment) {
	e.envStack = append(e.envStack, env)
}

func (e *Evaluator) CurrentEnv() *object.Environment {
	if len(e.envStack) == 0 {
		panic("environment stack is empty")
	}
	return e.envStack[len(e.envStack)-1]
}

func (e *Evaluator) PopEnv() {
	if len(e.envStack) == 0 {
		panic("attempted to pop from an empty environment stack")
	}
	e.envStack = e.envStack[:len(e.envStack)-1]
}

// Registers exposes the register file to the driver.
func (e *Evaluator) Registers() *object.Registers { return e.regs }

// Rand exposes the run's choice source.
func (e *Evaluator) Rand() *Source { return e.rand }

func (e *Evaluator) Eval(node ast.Expr) object.Object {
	switch node := node.(type) {

	case *ast.BoolLit:
		return object.NativeBoolToBool(node.Value)

	case *ast.IntLit:
		return &object.Int{Value: node.Value}

	case *ast.StrLit:
		return &object.Str{Value: node.Value}

	case *ast.Name:
		return e.evalName(node)

	case *ast.Lambda:
		return &object.Closure{
			Params: node.Params,
			Body:   node.Body,
			Env:    e.CurrentEnv(),
		}

	case *ast.Let:
		val := e.Eval(node.Value)
		if object.IsError(val) {
			return val
		}
		scope := object.NewEnclosedEnvironment(e.CurrentEnv())
		scope.Define(node.Name, val)
		e.PushEnv(scope)
		defer e.PopEnv()
		return e.Eval(node.Body)

	case *ast.If:
		return e.evalIf(node)

	case *ast.App:
		return e.evalApp(node)

	case *ast.Call:
		fn := e.Eval(node.Fn)
		if object.IsError(fn) {
			return fn
		}
		args, errObj := e.evalArgs(node.Args)
		if errObj != nil {
			return errObj
		}
		return e.Apply(fn, args)
	}

	return object.NewError(object.TypeMismatch, "unknown expression node %T", node)
}

func (e *Evaluator) evalName(node *ast.Name) object.Object {
	if val, ok := e.CurrentEnv().Get(node.Value); ok {
		return val
	}
	if val, ok := e.regs.Current(node.Value); ok {
		return val
	}
	return object.NewError(object.Undefined, "identifier not found: %s", node.Value)
}

// evalIf evaluates the condition purely and exactly one branch afterwards;
// the untaken branch may contain assignments or errors invalid in the
// untaken world and must never be evaluated.
func (e *Evaluator) evalIf(node *ast.If) object.Object {
	cond := e.Eval(node.Cond)
	if object.IsError(cond) {
		return cond
	}
	b, ok := cond.(*object.Bool)
	if !ok {
		return object.NewError(object.TypeMismatch, "if condition must be BOOL, got %s", cond.Type())
	}
	if b.Value {
		return e.Eval(node.Then)
	}
	return e.Eval(node.Else)
}

func (e *Evaluator) evalApp(node *ast.App) object.Object {
	if fn, ok := lazyBuiltins[node.Op]; ok {
		return fn(e, node.Args)
	}
	if fn, ok := builtins[node.Op]; ok {
		args, errObj := e.evalArgs(node.Args)
		if errObj != nil {
			return errObj
		}
		return fn(e, args)
	}

	// user-defined operator bound in the environment
	val, ok := e.CurrentEnv().Get(node.Op)
	if !ok {
		return object.NewError(object.Undefined, "operator not found: %s", node.Op)
	}
	args, errObj := e.evalArgs(node.Args)
	if errObj != nil {
		return errObj
	}
	return e.Apply(val, args)
}

func (e *Evaluator) evalArgs(exprs []ast.Expr) ([]object.Object, object.Object) {
	args := make([]object.Object, 0, len(exprs))
	for _, arg := range exprs {
		evaluated := e.Eval(arg)
		if object.IsError(evaluated) {
			return nil, evaluated
		}
		args = append(args, evaluated)
	}
	return args, nil
}

// Apply invokes a closure value with already-evaluated arguments.
func (e *Evaluator) Apply(fnObj object.Object, args []object.Object) object.Object {
	fn, ok := fnObj.(*object.Closure)
	if !ok {
		return object.NewError(object.TypeMismatch, "not an operator: %s", fnObj.Type())
	}
	if len(args) != len(fn.Params) {
		return object.NewError(object.TypeMismatch,
			"operator expects %d arguments, got %d", len(fn.Params), len(args))
	}

	scope := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		scope.Define(param, args[i])
	}

	slog.Debug("applying operator",
		slog.Int("params", len(fn.Params)),
		slog.Int("env-depth", len(e.envStack)))

	e.PushEnv(scope)
	defer e.PopEnv()
	return e.Eval(fn.Body)
}
