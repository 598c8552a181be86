package object

import (
	"bytes"
	"fmt"
	"math/big"
	"quill/internal/ast"
	"strings"
)

const (
	BOOL_OBJ    = "BOOL"
	INT_OBJ     = "INT"
	STR_OBJ     = "STR"
	SET_OBJ     = "SET"
	LIST_OBJ    = "LIST"
	MAP_OBJ     = "MAP"
	TUPLE_OBJ   = "TUPLE"
	RECORD_OBJ  = "RECORD"
	VARIANT_OBJ = "VARIANT"
	CLOSURE_OBJ = "CLOSURE"
	INFSET_OBJ  = "INFINITE_SET"
	ERROR_OBJ   = "ERROR"
)

var (
	TRUE  = &Bool{Value: true}
	FALSE = &Bool{Value: false}
)

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

func NativeBoolToBool(input bool) *Bool {
	if input {
		return TRUE
	}
	return FALSE
}

type Bool struct {
	Value bool
}

func (b *Bool) Type() ObjectType { return BOOL_OBJ }
func (b *Bool) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type Int struct {
	Value *big.Int
}

func NewInt(v int64) *Int { return &Int{Value: big.NewInt(v)} }

func (i *Int) Type() ObjectType { return INT_OBJ }
func (i *Int) Inspect() string  { return i.Value.String() }

// Int64 reports the value as an int64 when it fits.
func (i *Int) Int64() (int64, bool) {
	if !i.Value.IsInt64() {
		return 0, false
	}
	return i.Value.Int64(), true
}

type Str struct {
	Value string
}

func (s *Str) Type() ObjectType { return STR_OBJ }
func (s *Str) Inspect() string  { return `"` + s.Value + `"` }

type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer
	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

type Tuple struct {
	Elements []Object
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	var out bytes.Buffer
	elements := []string{}
	for _, e := range t.Elements {
		elements = append(elements, e.Inspect())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString(")")
	return out.String()
}

// Set holds its elements deduplicated and sorted in the canonical value
// order. The sorted order is the deterministic iteration order every
// consumer (fold, oneOf, serialization) observes.
type Set struct {
	elements []Object
}

// NewSet builds a set from arbitrary elements, deduplicating structurally.
// Elements with no canonical order (closures) are rejected.
func NewSet(elems ...Object) (*Set, *Error) {
	sorted := make([]Object, 0, len(elems))
	for _, el := range elems {
		idx, found, err := searchSorted(sorted, el)
		if err != nil {
			return nil, err
		}
		if found {
			continue
		}
		sorted = append(sorted, nil)
		copy(sorted[idx+1:], sorted[idx:])
		sorted[idx] = el
	}
	return &Set{elements: sorted}, nil
}

func (s *Set) Type() ObjectType { return SET_OBJ }
func (s *Set) Inspect() string {
	var out bytes.Buffer
	elements := []string{}
	for _, e := range s.elements {
		elements = append(elements, e.Inspect())
	}
	out.WriteString("Set(")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString(")")
	return out.String()
}

func (s *Set) Size() int { return len(s.elements) }

// Elements returns the canonical (sorted) element sequence. Callers must
// not mutate it.
func (s *Set) Elements() []Object { return s.elements }

func (s *Set) Contains(v Object) (bool, *Error) {
	_, found, err := searchSorted(s.elements, v)
	return found, err
}

// Add returns a set extended with v; s is unchanged.
func (s *Set) Add(v Object) (*Set, *Error) {
	idx, found, err := searchSorted(s.elements, v)
	if err != nil {
		return nil, err
	}
	if found {
		return s, nil
	}
	elems := make([]Object, 0, len(s.elements)+1)
	elems = append(elems, s.elements[:idx]...)
	elems = append(elems, v)
	elems = append(elems, s.elements[idx:]...)
	return &Set{elements: elems}, nil
}

// searchSorted locates v in a canonically sorted slice, returning the
// insertion index and whether an equal element is already present.
func searchSorted(sorted []Object, v Object) (int, bool, *Error) {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		c, err := Compare(sorted[mid], v)
		if err != nil {
			return 0, false, err
		}
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true, nil
		}
	}
	return lo, false, nil
}

type MapPair struct {
	Key   Object
	Value Object
}

// Map keeps its pairs sorted by key in the canonical value order, giving a
// deterministic iteration order and structural, order-independent equality.
type Map struct {
	pairs []MapPair
}

func NewMap(pairs ...MapPair) (*Map, *Error) {
	m := &Map{}
	for _, p := range pairs {
		next, err := m.Put(p.Key, p.Value)
		if err != nil {
			return nil, err
		}
		m = next
	}
	return m, nil
}

func (m *Map) Type() ObjectType { return MAP_OBJ }
func (m *Map) Inspect() string {
	var out bytes.Buffer
	pairs := []string{}
	for _, p := range m.pairs {
		pairs = append(pairs, fmt.Sprintf("%s -> %s", p.Key.Inspect(), p.Value.Inspect()))
	}
	out.WriteString("Map(")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString(")")
	return out.String()
}

func (m *Map) Size() int { return len(m.pairs) }

// Pairs returns the canonical (key-sorted) pair sequence. Callers must not
// mutate it.
func (m *Map) Pairs() []MapPair { return m.pairs }

func (m *Map) Get(k Object) (Object, bool, *Error) {
	idx, found, err := m.search(k)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return m.pairs[idx].Value, true, nil
}

// Put returns a map with k bound to v, replacing any previous binding;
// m is unchanged.
func (m *Map) Put(k, v Object) (*Map, *Error) {
	idx, found, err := m.search(k)
	if err != nil {
		return nil, err
	}
	pairs := make([]MapPair, len(m.pairs), len(m.pairs)+1)
	copy(pairs, m.pairs)
	if found {
		pairs[idx] = MapPair{Key: k, Value: v}
		return &Map{pairs: pairs}, nil
	}
	pairs = append(pairs, MapPair{})
	copy(pairs[idx+1:], pairs[idx:])
	pairs[idx] = MapPair{Key: k, Value: v}
	return &Map{pairs: pairs}, nil
}

// Keys returns the key set of the map.
func (m *Map) Keys() *Set {
	keys := make([]Object, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}
	// pairs are already canonically sorted and unique by key
	return &Set{elements: keys}
}

func (m *Map) search(k Object) (int, bool, *Error) {
	lo, hi := 0, len(m.pairs)
	for lo < hi {
		mid := (lo + hi) / 2
		c, err := Compare(m.pairs[mid].Key, k)
		if err != nil {
			return 0, false, err
		}
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true, nil
		}
	}
	return lo, false, nil
}

type RecordField struct {
	Name  string
	Value Object
}

// Record keeps fields sorted by name.
type Record struct {
	fields []RecordField
}

func NewRecord(fields ...RecordField) *Record {
	sorted := make([]RecordField, 0, len(fields))
	for _, f := range fields {
		idx := len(sorted)
		for i, existing := range sorted {
			if existing.Name >= f.Name {
				idx = i
				break
			}
		}
		if idx < len(sorted) && sorted[idx].Name == f.Name {
			sorted[idx] = f
			continue
		}
		sorted = append(sorted, RecordField{})
		copy(sorted[idx+1:], sorted[idx:])
		sorted[idx] = f
	}
	return &Record{fields: sorted}
}

func (r *Record) Type() ObjectType { return RECORD_OBJ }
func (r *Record) Inspect() string {
	var out bytes.Buffer
	fields := []string{}
	for _, f := range r.fields {
		fields = append(fields, f.Name+": "+f.Value.Inspect())
	}
	out.WriteString("{ ")
	out.WriteString(strings.Join(fields, ", "))
	out.WriteString(" }")
	return out.String()
}

// Fields returns the name-sorted field sequence. Callers must not mutate it.
func (r *Record) Fields() []RecordField { return r.fields }

func (r *Record) Field(name string) (Object, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// With returns a record with the named field replaced; r is unchanged.
func (r *Record) With(name string, v Object) (*Record, bool) {
	for i, f := range r.fields {
		if f.Name == name {
			fields := make([]RecordField, len(r.fields))
			copy(fields, r.fields)
			fields[i] = RecordField{Name: name, Value: v}
			return &Record{fields: fields}, true
		}
	}
	return nil, false
}

type Variant struct {
	Label string
	Value Object
}

func (v *Variant) Type() ObjectType { return VARIANT_OBJ }
func (v *Variant) Inspect() string {
	return v.Label + "(" + v.Value.Inspect() + ")"
}

type Closure struct {
	Params []string
	Body   ast.Expr
	Env    *Environment
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }
func (c *Closure) Inspect() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(strings.Join(c.Params, ", "))
	out.WriteString(") => ")
	out.WriteString(c.Body.String())
	return out.String()
}

// InfiniteSet stands for a set that cannot be enumerated, such as
// allLists(S). Membership tests work; every operation that would enumerate
// it must fail fast with an Unsupported error.
type InfiniteSet struct {
	Descr string
	Base  *Set
}

func (s *InfiniteSet) Type() ObjectType { return INFSET_OBJ }
func (s *InfiniteSet) Inspect() string  { return s.Descr }

// Contains reports membership for allLists-style sets: every element of the
// candidate list must belong to the base set.
func (s *InfiniteSet) Contains(v Object) (bool, *Error) {
	list, ok := v.(*List)
	if !ok {
		return false, nil
	}
	for _, el := range list.Elements {
		in, err := s.Base.Contains(el)
		if err != nil {
			return false, err
		}
		if !in {
			return false, nil
		}
	}
	return true, nil
}
