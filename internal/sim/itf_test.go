package sim

import (
	"encoding/json"
	"math/big"
	"testing"

	"quill/internal/object"
)

func encodeToJSON(t *testing.T, v object.Object) string {
	t.Helper()
	b, err := json.Marshal(EncodeValue(v))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return string(b)
}

func TestEncodeScalars(t *testing.T) {
	if got := encodeToJSON(t, object.TRUE); got != "true" {
		t.Errorf("expected true, got %s", got)
	}
	if got := encodeToJSON(t, object.NewInt(42)); got != "42" {
		t.Errorf("expected 42, got %s", got)
	}
	if got := encodeToJSON(t, &object.Str{Value: "hi"}); got != `"hi"` {
		t.Errorf("expected \"hi\", got %s", got)
	}
}

func TestEncodeBigIntegersAreWrapped(t *testing.T) {
	huge := &object.Int{Value: new(big.Int).Lsh(big.NewInt(1), 60)}
	got := encodeToJSON(t, huge)
	want := `{"#bigint":"1152921504606846976"}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	// the boundary value is still a plain number
	safe := &object.Int{Value: big.NewInt(1<<53 - 1)}
	if got := encodeToJSON(t, safe); got != "9007199254740991" {
		t.Errorf("expected a plain number, got %s", got)
	}
}

func TestEncodeCollections(t *testing.T) {
	s, _ := object.NewSet(object.NewInt(2), object.NewInt(1))
	if got := encodeToJSON(t, s); got != `{"#set":[1,2]}` {
		t.Errorf("unexpected set encoding %s", got)
	}

	tup := &object.Tuple{Elements: []object.Object{object.NewInt(1), &object.Str{Value: "a"}}}
	if got := encodeToJSON(t, tup); got != `{"#tup":[1,"a"]}` {
		t.Errorf("unexpected tuple encoding %s", got)
	}

	m, _ := object.NewMap(object.MapPair{Key: &object.Str{Value: "k"}, Value: object.NewInt(3)})
	if got := encodeToJSON(t, m); got != `{"#map":[["k",3]]}` {
		t.Errorf("unexpected map encoding %s", got)
	}

	v := &object.Variant{Label: "Some", Value: object.NewInt(1)}
	if got := encodeToJSON(t, v); got != `{"#tag":"Some","#value":1}` {
		t.Errorf("unexpected variant encoding %s", got)
	}

	rec := object.NewRecord(object.RecordField{Name: "n", Value: object.NewInt(1)})
	if got := encodeToJSON(t, rec); got != `{"n":1}` {
		t.Errorf("unexpected record encoding %s", got)
	}
}

func TestStateMarshalsWithStepAndValues(t *testing.T) {
	st := State{Step: 2, Values: map[string]object.Object{"n": object.NewInt(4)}}
	b, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"step":2,"values":{"n":4}}` {
		t.Errorf("unexpected state encoding %s", b)
	}
}
