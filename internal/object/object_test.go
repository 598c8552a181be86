package object

import "testing"

func TestSetDeduplicatesAndSorts(t *testing.T) {
	s, err := NewSet(NewInt(3), NewInt(1), NewInt(3), NewInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if s.Size() != 3 {
		t.Fatalf("expected 3 elements, got %d", s.Size())
	}
	want := []int64{1, 2, 3}
	for i, el := range s.Elements() {
		v, _ := el.(*Int).Int64()
		if v != want[i] {
			t.Errorf("element %d: expected %d, got %d", i, want[i], v)
		}
	}
}

func TestSetContainsAndAdd(t *testing.T) {
	s, _ := NewSet(&Str{Value: "a"}, &Str{Value: "c"})
	in, err := s.Contains(&Str{Value: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if !in {
		t.Errorf("expected set to contain \"a\"")
	}
	in, _ = s.Contains(&Str{Value: "b"})
	if in {
		t.Errorf("did not expect set to contain \"b\"")
	}

	grown, err := s.Add(&Str{Value: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if grown.Size() != 3 {
		t.Errorf("expected 3 elements after add, got %d", grown.Size())
	}
	if s.Size() != 2 {
		t.Errorf("add mutated the receiver")
	}
	same, _ := s.Add(&Str{Value: "a"})
	if same.Size() != 2 {
		t.Errorf("adding an existing element grew the set")
	}
}

func TestSetRejectsClosures(t *testing.T) {
	_, err := NewSet(&Closure{})
	if err == nil {
		t.Fatalf("expected an error for a set of closures")
	}
	if err.Kind != TypeMismatch {
		t.Errorf("expected TypeMismatch, got %s", err.Kind)
	}
}

func TestMapPutGetKeys(t *testing.T) {
	m, err := NewMap(
		MapPair{Key: NewInt(2), Value: &Str{Value: "two"}},
		MapPair{Key: NewInt(1), Value: &Str{Value: "one"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}

	v, found, _ := m.Get(NewInt(1))
	if !found {
		t.Fatalf("key 1 not found")
	}
	if v.(*Str).Value != "one" {
		t.Errorf("expected \"one\", got %s", v.Inspect())
	}

	updated, _ := m.Put(NewInt(1), &Str{Value: "uno"})
	v, _, _ = updated.Get(NewInt(1))
	if v.(*Str).Value != "uno" {
		t.Errorf("expected replaced value \"uno\", got %s", v.Inspect())
	}
	if v, _, _ := m.Get(NewInt(1)); v.(*Str).Value != "one" {
		t.Errorf("put mutated the receiver")
	}

	keys := m.Keys()
	if keys.Size() != 2 {
		t.Fatalf("expected 2 keys, got %d", keys.Size())
	}
	first, _ := keys.Elements()[0].(*Int).Int64()
	if first != 1 {
		t.Errorf("keys not in canonical order, first is %d", first)
	}
}

func TestRecordFieldsSortedAndWith(t *testing.T) {
	r := NewRecord(
		RecordField{Name: "z", Value: NewInt(1)},
		RecordField{Name: "a", Value: NewInt(2)},
	)
	if r.Fields()[0].Name != "a" {
		t.Errorf("fields not sorted by name, first is %s", r.Fields()[0].Name)
	}

	updated, ok := r.With("z", NewInt(9))
	if !ok {
		t.Fatalf("field z not found")
	}
	v, _ := updated.Field("z")
	got, _ := v.(*Int).Int64()
	if got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if _, ok := r.With("missing", NewInt(0)); ok {
		t.Errorf("expected With on a missing field to fail")
	}
}

func TestCompareOrdersShapesByRank(t *testing.T) {
	c, err := Compare(TRUE, NewInt(0))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if c >= 0 {
		t.Errorf("expected BOOL to order before INT, got %d", c)
	}
}

func TestCompareLists(t *testing.T) {
	shorter := &List{Elements: []Object{NewInt(1), NewInt(2)}}
	longer := &List{Elements: []Object{NewInt(1), NewInt(2), NewInt(3)}}
	c, err := Compare(shorter, longer)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if c >= 0 {
		t.Errorf("expected the prefix to order first, got %d", c)
	}
}

func TestEqualRejectsShapeMismatch(t *testing.T) {
	_, err := Equal(NewInt(1), &Str{Value: "1"})
	if err == nil {
		t.Fatalf("expected an error comparing INT with STR")
	}
	if err.Kind != TypeMismatch {
		t.Errorf("expected TypeMismatch, got %s", err.Kind)
	}
}

func TestEqualIsStructural(t *testing.T) {
	a, _ := NewSet(NewInt(1), NewInt(2))
	b, _ := NewSet(NewInt(2), NewInt(1))
	eq, err := Equal(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if !eq {
		t.Errorf("sets with the same elements are not equal")
	}
}

func TestInfiniteSetContains(t *testing.T) {
	base, _ := NewSet(NewInt(1), NewInt(2))
	inf := &InfiniteSet{Descr: "allLists(Set(1, 2))", Base: base}

	in, err := inf.Contains(&List{Elements: []Object{NewInt(2), NewInt(1), NewInt(2)}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if !in {
		t.Errorf("expected the list over the base set to be a member")
	}
	in, _ = inf.Contains(&List{Elements: []Object{NewInt(3)}})
	if in {
		t.Errorf("did not expect a list with a foreign element to be a member")
	}
	in, _ = inf.Contains(NewInt(1))
	if in {
		t.Errorf("did not expect a non-list member")
	}
}
