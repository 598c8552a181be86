package sim

import (
	"context"
	"encoding/json"
	"testing"

	"quill/internal/models"
	"quill/internal/object"
)

func TestCounterViolatesBounded(t *testing.T) {
	m, _ := models.ByName("counter")
	result, err := Run(context.Background(), m, Config{MaxSteps: 20, MaxRuns: 1, Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusViolation {
		t.Fatalf("expected a violation, got %s", result.Status)
	}
	run := result.Run
	if run.Invariant != "Bounded" {
		t.Errorf("expected Bounded to fail, got %s", run.Invariant)
	}
	// the counter grows by at least 1 and at most 2 per step
	if run.StepIndex < 5 || run.StepIndex > 10 {
		t.Errorf("implausible violation step %d", run.StepIndex)
	}
	if len(run.Trace) != run.StepIndex+1 {
		t.Errorf("trace has %d states for a violation at step %d", len(run.Trace), run.StepIndex)
	}
	last := run.Trace[len(run.Trace)-1].Values["n"].(*object.Int)
	if n, _ := last.Int64(); n < 10 {
		t.Errorf("violating state has n = %d", n)
	}
	if result.Runs != 1 {
		t.Errorf("expected the first run to be decisive, got %d runs", result.Runs)
	}
}

func TestCounterHoldsSelectedInvariant(t *testing.T) {
	m, _ := models.ByName("counter")
	result, err := Run(context.Background(), m, Config{
		MaxSteps: 20, MaxRuns: 5, Seed: 7,
		Invariants: []string{"NonNegative"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusOk {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if result.Runs != 5 {
		t.Errorf("expected the full run budget, got %d runs", result.Runs)
	}
}

func TestSameSeedSameResult(t *testing.T) {
	cfg := Config{MaxSteps: 9, MaxRuns: 10, Seed: 3}

	m1, _ := models.ByName("tictactoe")
	r1, err := Run(context.Background(), m1, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, _ := models.ByName("tictactoe")
	r2, err := Run(context.Background(), m2, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	j1, _ := json.Marshal(r1)
	j2, _ := json.Marshal(r2)
	if string(j1) != string(j2) {
		t.Errorf("identical configs produced different results:\n%s\n%s", j1, j2)
	}
}

func TestTicTacToeFindsAWinner(t *testing.T) {
	m, _ := models.ByName("tictactoe")
	result, err := Run(context.Background(), m, Config{MaxSteps: 9, MaxRuns: 30, Seed: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusViolation {
		t.Fatalf("expected a violation, got %s", result.Status)
	}
	run := result.Run
	if run.Invariant != "XHasNotWon" && run.Invariant != "OHasNotWon" {
		t.Errorf("unexpected failing invariant %s", run.Invariant)
	}
	// a line needs at least 3 moves by one player
	if run.StepIndex < 5 {
		t.Errorf("a win cannot happen before step 5, got %d", run.StepIndex)
	}
}

func TestBankOverdraws(t *testing.T) {
	m, _ := models.ByName("bank")
	result, err := Run(context.Background(), m, Config{
		MaxSteps: 30, MaxRuns: 20, Seed: 11,
		Invariants: []string{"NoOverdraft"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusViolation {
		t.Fatalf("expected a violation, got %s", result.Status)
	}

	balances := result.Run.Trace[len(result.Run.Trace)-1].Values["balances"].(*object.Map)
	overdrawn := false
	for _, p := range balances.Pairs() {
		if v, _ := p.Value.(*object.Int).Int64(); v < 0 {
			overdrawn = true
		}
	}
	if !overdrawn {
		t.Errorf("violating state has no negative balance: %s", balances.Inspect())
	}
}

func TestUnknownInvariantIsAnError(t *testing.T) {
	m, _ := models.ByName("counter")
	_, err := Run(context.Background(), m, Config{
		MaxSteps: 1, MaxRuns: 1,
		Invariants: []string{"NoSuchThing"},
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown invariant name")
	}
}

func TestConfigValidation(t *testing.T) {
	m, _ := models.ByName("counter")
	if _, err := Run(context.Background(), m, Config{MaxSteps: 1, MaxRuns: 0}); err == nil {
		t.Errorf("expected an error for a zero run budget")
	}
	if _, err := Run(context.Background(), m, Config{MaxSteps: -1, MaxRuns: 1}); err == nil {
		t.Errorf("expected an error for a negative step budget")
	}
}

func TestCancelledContextStopsTheSimulation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, _ := models.ByName("counter")
	result, err := Run(ctx, m, Config{MaxSteps: 20, MaxRuns: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Cancelled {
		t.Errorf("expected the result to be marked cancelled")
	}
	if result.Runs != 0 {
		t.Errorf("expected no completed runs, got %d", result.Runs)
	}
}

func TestZeroStepsChecksTheInitialState(t *testing.T) {
	m, _ := models.ByName("counter")
	result, err := Run(context.Background(), m, Config{MaxSteps: 0, MaxRuns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusOk {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	// ok results carry no decisive run
	if result.Run != nil {
		t.Errorf("unexpected decisive run for an ok result")
	}
}
