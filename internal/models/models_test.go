package models

import "testing"

func TestRegistry(t *testing.T) {
	names := Names()
	want := []string{"bank", "counter", "tictactoe"}
	if len(names) != len(want) {
		t.Fatalf("expected %d models, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %s at position %d, got %s", name, i, names[i])
		}
	}

	if _, ok := ByName("nope"); ok {
		t.Errorf("expected an unknown name to miss")
	}
}

func TestModelsAreWellFormed(t *testing.T) {
	for _, name := range Names() {
		m, ok := ByName(name)
		if !ok {
			t.Fatalf("model %s not found", name)
		}
		if m.Name != name {
			t.Errorf("model %s reports name %s", name, m.Name)
		}
		if len(m.Vars) == 0 {
			t.Errorf("model %s declares no state variables", name)
		}
		if m.Init == nil || m.Step == nil {
			t.Errorf("model %s is missing init or step", name)
		}
		if len(m.Invariants) == 0 {
			t.Errorf("model %s has no invariants", name)
		}
		for _, inv := range m.Invariants {
			if _, ok := m.Invariant(inv.Name); !ok {
				t.Errorf("model %s cannot look up its own invariant %s", name, inv.Name)
			}
		}
	}
}

func TestByNameBuildsFreshInstances(t *testing.T) {
	a, _ := ByName("counter")
	b, _ := ByName("counter")
	if a == b {
		t.Errorf("expected independent model instances")
	}
}
