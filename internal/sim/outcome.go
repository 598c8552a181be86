package sim

import (
	"encoding/json"
	"quill/internal/object"
)

type Status string

const (
	// StatusOk: the run reached the step bound with every invariant intact.
	StatusOk Status = "ok"
	// StatusViolation: an invariant evaluated to false. This is the
	// designed-for outcome, not an engine defect.
	StatusViolation Status = "violation"
	// StatusDeadlock: the step action was disabled; whether that is a
	// defect is the caller's call, so it is distinct from error.
	StatusDeadlock Status = "deadlock"
	// StatusError: a runtime error aborted the run.
	StatusError Status = "error"
)

// Config is the caller-supplied simulation budget.
type Config struct {
	MaxSteps int
	MaxRuns  int
	Seed     int64
	// Invariants selects invariants by name; empty means all of them.
	Invariants []string
}

// State is one snapshot of the register file. Step 0 is the initial state.
type State struct {
	Step   int
	Values map[string]object.Object
}

func (s State) MarshalJSON() ([]byte, error) {
	values := make(map[string]interface{}, len(s.Values))
	for name, v := range s.Values {
		values[name] = EncodeValue(v)
	}
	return json.Marshal(map[string]interface{}{
		"step":   s.Step,
		"values": values,
	})
}

// RunOutcome is the structured result of a single run, sufficient for a
// front-end to render the trace and reproduce it from the seed.
type RunOutcome struct {
	Status    Status        `json:"status"`
	Run       int           `json:"run"`
	Seed      int64         `json:"seed"`
	Trace     []State       `json:"trace"`
	Invariant string        `json:"invariant,omitempty"`
	StepIndex int           `json:"stepIndex,omitempty"`
	Err       *object.Error `json:"error,omitempty"`
}

// Result aggregates a whole simulation: the first decisive run, if any,
// and the budget actually spent.
type Result struct {
	Status    Status      `json:"status"`
	Run       *RunOutcome `json:"outcome,omitempty"`
	Runs      int         `json:"runs"`
	Deadlocks int         `json:"deadlocks"`
	Cancelled bool        `json:"cancelled,omitempty"`
}
