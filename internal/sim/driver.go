package sim

import (
	"context"
	"fmt"
	"log/slog"

	"quill/internal/ast"
	"quill/internal/eval"
	"quill/internal/object"
)

// Run drives repeated simulation runs of a model until a violation or a
// runtime error is found, or the run budget is exhausted. Each run is
// strictly sequential; runs are independent of each other and derive their
// private random streams from the top-level seed and the run index, so a
// replay with the same seed reproduces the same traces.
//
// The context is a cooperative cancellation signal checked between steps
// and between runs; a cancelled invocation reports the best result found so
// far, never a fabricated outcome.
func Run(ctx context.Context, model *ast.Model, cfg Config) (*Result, error) {
	invariants, err := selectInvariants(model, cfg.Invariants)
	if err != nil {
		return nil, err
	}
	if cfg.MaxRuns < 1 {
		return nil, fmt.Errorf("sim: maxRuns must be positive, got %d", cfg.MaxRuns)
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("sim: maxSteps must be non-negative, got %d", cfg.MaxSteps)
	}

	result := &Result{Status: StatusOk}
	for i := 0; i < cfg.MaxRuns; i++ {
		select {
		case <-ctx.Done():
			result.Cancelled = true
			return result, nil
		default:
		}

		outcome := runOnce(ctx, model, invariants, cfg, i)
		result.Runs = i + 1
		switch outcome.Status {
		case StatusViolation, StatusError:
			// first counterexample found, not necessarily the shortest
			result.Status = outcome.Status
			result.Run = outcome
			return result, nil
		case StatusDeadlock:
			result.Deadlocks++
		}
		if outcome.Status == "" {
			// run interrupted by cancellation mid-trace
			result.Cancelled = true
			return result, nil
		}
	}
	return result, nil
}

func selectInvariants(model *ast.Model, names []string) ([]ast.Def, error) {
	if len(names) == 0 {
		return model.Invariants, nil
	}
	selected := make([]ast.Def, 0, len(names))
	for _, name := range names {
		inv, ok := model.Invariant(name)
		if !ok {
			return nil, fmt.Errorf("sim: model %s has no invariant %q", model.Name, name)
		}
		selected = append(selected, inv)
	}
	return selected, nil
}

// runOnce executes a single run to its conclusion. A zero-valued Status
// signals cancellation mid-run.
func runOnce(ctx context.Context, model *ast.Model, invariants []ast.Def, cfg Config, run int) *RunOutcome {
	seed := eval.DeriveSeed(cfg.Seed, run)
	outcome := &RunOutcome{Run: run, Seed: seed}

	regs := object.NewRegisters(model.Vars)
	ev := eval.New(object.NewEnvironment(), regs, eval.NewSource(seed))

	if errObj := bindDefs(ev, model); errObj != nil {
		outcome.Status = StatusError
		outcome.Err = errObj
		return outcome
	}

	slog.Debug("starting run",
		slog.String("model", model.Name),
		slog.Int("run", run),
		slog.Int64("seed", seed))

	// initial state
	res := ev.Eval(model.Init)
	if errObj, ok := res.(*object.Error); ok {
		outcome.Status = StatusError
		outcome.Err = errObj
		return outcome
	}
	if b, ok := res.(*object.Bool); !ok || !b.Value {
		outcome.Status = StatusError
		outcome.Err = object.NewError(object.IncompleteInit, "init action is disabled")
		return outcome
	}
	if missing := regs.Commit(); missing != nil {
		outcome.Status = StatusError
		outcome.Err = object.NewError(object.IncompleteInit,
			"init left state variables unassigned: %v", missing)
		return outcome
	}
	outcome.Trace = append(outcome.Trace, State{Step: 0, Values: regs.Snapshot()})
	if done := checkInvariants(ev, invariants, outcome, 0); done {
		return outcome
	}

	for step := 1; step <= cfg.MaxSteps; step++ {
		select {
		case <-ctx.Done():
			outcome.Status = ""
			return outcome
		default:
		}

		res := ev.Eval(model.Step)
		if errObj, ok := res.(*object.Error); ok {
			outcome.Status = StatusError
			outcome.Err = errObj
			return outcome
		}
		b, ok := res.(*object.Bool)
		if !ok {
			outcome.Status = StatusError
			outcome.Err = object.NewError(object.TypeMismatch,
				"step action evaluated to %s", res.Type())
			return outcome
		}
		if !b.Value {
			outcome.Status = StatusDeadlock
			return outcome
		}
		if missing := regs.Commit(); missing != nil {
			outcome.Status = StatusError
			outcome.Err = object.NewError(object.NotYetAssigned,
				"step left state variables unassigned: %v", missing)
			return outcome
		}
		outcome.Trace = append(outcome.Trace, State{Step: step, Values: regs.Snapshot()})
		if done := checkInvariants(ev, invariants, outcome, step); done {
			return outcome
		}
	}

	outcome.Status = StatusOk
	return outcome
}

// bindDefs evaluates the model's definitions in order into the evaluator's
// root environment; operator definitions become closures capturing it.
func bindDefs(ev *eval.Evaluator, model *ast.Model) *object.Error {
	env := ev.CurrentEnv()
	for _, def := range model.Defs {
		val := ev.Eval(def.Body)
		if errObj, ok := val.(*object.Error); ok {
			return object.NewError(errObj.Kind,
				"definition %s: %s", def.Name, errObj.Message)
		}
		env.Define(def.Name, val)
	}
	return nil
}

// checkInvariants evaluates every active invariant against the freshly
// committed state. The first one to fail ends the run as a violation.
func checkInvariants(ev *eval.Evaluator, invariants []ast.Def, outcome *RunOutcome, step int) bool {
	for _, inv := range invariants {
		v := ev.Eval(inv.Body)
		if errObj, ok := v.(*object.Error); ok {
			outcome.Status = StatusError
			outcome.Err = object.NewError(errObj.Kind,
				"invariant %s: %s", inv.Name, errObj.Message)
			return true
		}
		b, ok := v.(*object.Bool)
		if !ok {
			outcome.Status = StatusError
			outcome.Err = object.NewError(object.TypeMismatch,
				"invariant %s evaluated to %s", inv.Name, v.Type())
			return true
		}
		if !b.Value {
			outcome.Status = StatusViolation
			outcome.Invariant = inv.Name
			outcome.StepIndex = step
			slog.Debug("invariant violated",
				slog.String("invariant", inv.Name),
				slog.Int("step", step))
			return true
		}
	}
	return false
}
