package eval

import (
	"testing"

	"quill/internal/ast"
	"quill/internal/object"
)

func commitAll(t *testing.T, e *Evaluator) {
	t.Helper()
	if missing := e.Registers().Commit(); missing != nil {
		t.Fatalf("commit left variables unassigned: %v", missing)
	}
}

func currentInt(t *testing.T, e *Evaluator, name string) int64 {
	t.Helper()
	v, ok := e.Registers().Current(name)
	if !ok {
		t.Fatalf("%s has no current value", name)
	}
	got, _ := v.(*object.Int).Int64()
	return got
}

func TestAssignRecordsPendingValue(t *testing.T) {
	e := newTestEvaluator("x")
	if !evalBool(t, e, ast.Assign("x", ast.I(1))) {
		t.Fatalf("expected assign to be enabled")
	}
	if !e.Registers().HasNext("x") {
		t.Errorf("assign left no pending value")
	}
	evalError(t, e, ast.Assign("x", ast.I(2)), object.DoubleAssignment)
	evalError(t, e, ast.Assign("zz", ast.I(1)), object.Undefined)
}

func TestAllConjunction(t *testing.T) {
	e := newTestEvaluator("x", "y")
	action := ast.Op("all",
		ast.Assign("x", ast.I(1)),
		ast.Assign("y", ast.I(2)))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the conjunction to be enabled")
	}
	commitAll(t, e)
	if got := currentInt(t, e, "y"); got != 2 {
		t.Errorf("expected y = 2, got %d", got)
	}

	disabled := ast.Op("all", ast.B(false), ast.Assign("x", ast.I(9)))
	if evalBool(t, e, disabled) {
		t.Errorf("expected the conjunction to be disabled")
	}
	if e.Registers().HasNext("x") {
		t.Errorf("the sub-action after a disabled one was evaluated")
	}
}

func TestAnyPicksAnEnabledBranch(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("any",
		ast.Op("all", ast.B(false), ast.Assign("x", ast.I(1))),
		ast.Assign("x", ast.I(2)))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the disjunction to be enabled")
	}
	commitAll(t, e)
	if got := currentInt(t, e, "x"); got != 2 {
		t.Errorf("expected the only enabled branch, got x = %d", got)
	}
}

func TestAnyConsumesExactlyOneDraw(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("any",
		ast.Assign("x", ast.I(1)),
		ast.Assign("x", ast.I(2)),
		ast.Assign("x", ast.I(3)))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the disjunction to be enabled")
	}
	if e.Rand().Draws() != 1 {
		t.Errorf("expected exactly one draw, got %d", e.Rand().Draws())
	}
}

func TestAnyDiscardsLosingBranchAssignments(t *testing.T) {
	e := newTestEvaluator("x")
	evalBool(t, e, ast.Op("any",
		ast.Assign("x", ast.I(1)),
		ast.Assign("x", ast.I(2))))
	commitAll(t, e)
	// the winning branch's value committed cleanly; a leak from the losing
	// branch would have raised DoubleAssignment before commit
	got := currentInt(t, e, "x")
	if got != 1 && got != 2 {
		t.Errorf("unexpected committed value %d", got)
	}
}

func TestAnyTreatsUndefinedAsDisabled(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("any",
		ast.Op("all",
			ast.Assign("x", ast.Op("head", ast.Op("List"))),
			ast.B(true)),
		ast.Assign("x", ast.I(5)))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the well-defined branch to win")
	}
	commitAll(t, e)
	if got := currentInt(t, e, "x"); got != 5 {
		t.Errorf("expected x = 5, got %d", got)
	}

	// with no enabled branch the disjunction is disabled, not an error
	if evalBool(t, e, ast.Op("any", ast.Op("oneOf", ast.Op("Set")))) {
		t.Errorf("expected the disjunction to be disabled")
	}
}

func TestAnyPropagatesRealErrors(t *testing.T) {
	// only Undefined reads as a disabled branch; other kinds abort
	e := newTestEvaluator("x")
	action := ast.Op("any",
		ast.Assign("x", ast.Op("add", ast.I(1), ast.B(true))),
		ast.Assign("x", ast.I(1)))
	evalError(t, e, action, object.TypeMismatch)
	if e.Registers().HasNext("x") {
		t.Errorf("a failed disjunction left pending assignments")
	}
}

func TestThenSequencesThroughIntermediateState(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("then",
		ast.Assign("x", ast.I(1)),
		ast.Assign("x", ast.Op("add", ast.N("x"), ast.I(10))))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the sequence to be enabled")
	}
	// the left half committed, the right half is still pending
	if got := currentInt(t, e, "x"); got != 1 {
		t.Errorf("expected intermediate x = 1, got %d", got)
	}
	commitAll(t, e)
	if got := currentInt(t, e, "x"); got != 11 {
		t.Errorf("expected final x = 11, got %d", got)
	}
}

func TestThenOnDisabledLeftIsAnError(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("then", ast.B(false), ast.Assign("x", ast.I(1)))
	evalError(t, e, action, object.ActionFailed)
}

func TestThenDisabledRightIsFalse(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("then",
		ast.Assign("x", ast.I(1)),
		ast.Op("all", ast.B(false)))
	if evalBool(t, e, action) {
		t.Errorf("expected a disabled right side to read as disabled")
	}
}

func TestExpectHoldsAndRestoresPendingState(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("expect",
		ast.Assign("x", ast.I(5)),
		ast.Op("eq", ast.N("x"), ast.I(5)))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the postcondition to hold")
	}
	// the probe commit was rolled back, the assignment is still pending
	if !e.Registers().HasNext("x") {
		t.Errorf("expect consumed the pending assignment")
	}
	if _, ok := e.Registers().Current("x"); ok {
		t.Errorf("expect leaked its probe commit")
	}
}

func TestExpectFailure(t *testing.T) {
	e := newTestEvaluator("x")
	action := ast.Op("expect",
		ast.Assign("x", ast.I(5)),
		ast.Op("eq", ast.N("x"), ast.I(6)))
	evalError(t, e, action, object.ExpectationFailed)

	e2 := newTestEvaluator("x")
	evalError(t, e2, ast.Op("expect", ast.B(false), ast.B(true)), object.ActionFailed)
}

func TestRepsIteratesWithThenSemantics(t *testing.T) {
	e := newTestEvaluator("x")
	e.Registers().SetNext("x", object.NewInt(0))
	commitAll(t, e)

	action := ast.Op("reps", ast.I(3),
		ast.Fn([]string{"i"}, ast.Assign("x", ast.Op("add", ast.N("x"), ast.I(1)))))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the repetition to be enabled")
	}
	commitAll(t, e)
	if got := currentInt(t, e, "x"); got != 3 {
		t.Errorf("expected x = 3 after three increments, got %d", got)
	}
}

func TestRepsBoundaries(t *testing.T) {
	e := newTestEvaluator()
	never := ast.Fn([]string{"i"}, ast.B(false))
	if !evalBool(t, e, ast.Op("reps", ast.I(0), never)) {
		t.Errorf("expected zero repetitions to be trivially enabled")
	}
	if !evalBool(t, e, ast.Op("reps", ast.I(-2), never)) {
		t.Errorf("expected a negative count to be trivially enabled")
	}

	// disabled on the last index reads as disabled
	lastFails := ast.Fn([]string{"i"}, ast.Op("lt", ast.N("i"), ast.I(2)))
	if evalBool(t, e, ast.Op("reps", ast.I(3), lastFails)) {
		t.Errorf("expected the repetition to be disabled")
	}

	// disabled before the last index is an error
	firstFails := ast.Fn([]string{"i"}, ast.Op("gt", ast.N("i"), ast.I(0)))
	evalError(t, e, ast.Op("reps", ast.I(3), firstFails), object.ActionFailed)
}

func TestFailNegatesEnabledness(t *testing.T) {
	e := newTestEvaluator("x")
	if evalBool(t, e, ast.Op("fail", ast.Assign("x", ast.I(1)))) {
		t.Errorf("expected fail of an enabled action to be disabled")
	}
	if e.Registers().HasNext("x") {
		t.Errorf("fail kept the probed action's assignment")
	}
	if !evalBool(t, e, ast.Op("fail", ast.Op("all", ast.B(false)))) {
		t.Errorf("expected fail of a disabled action to be enabled")
	}
	evalError(t, e, ast.Op("fail", ast.Op("div", ast.I(1), ast.I(0))), object.Undefined)
}

func TestOrKeepStuttersUnassignedVariables(t *testing.T) {
	e := newTestEvaluator("x", "y")
	e.Registers().SetNext("x", object.NewInt(1))
	e.Registers().SetNext("y", object.NewInt(2))
	commitAll(t, e)

	action := ast.Op("orKeep", ast.Assign("x", ast.I(10)), ast.N("x"), ast.N("y"))
	if !evalBool(t, e, action) {
		t.Fatalf("expected the action to be enabled")
	}
	commitAll(t, e)
	if got := currentInt(t, e, "x"); got != 10 {
		t.Errorf("expected assigned x = 10, got %d", got)
	}
	if got := currentInt(t, e, "y"); got != 2 {
		t.Errorf("expected stuttered y = 2, got %d", got)
	}

	if evalBool(t, e, ast.Op("orKeep", ast.Op("all", ast.B(false)), ast.N("x"))) {
		t.Errorf("expected orKeep over a disabled action to stay disabled")
	}
}

func TestNextReadsPendingValue(t *testing.T) {
	e := newTestEvaluator("x")
	evalError(t, e, ast.Op("next", ast.N("x")), object.NotYetAssigned)

	evalBool(t, e, ast.Assign("x", ast.I(7)))
	if got := evalInt(t, e, ast.Op("next", ast.N("x"))); got != 7 {
		t.Errorf("expected next(x) = 7, got %d", got)
	}
	evalError(t, e, ast.Op("next", ast.I(1)), object.TypeMismatch)
}
