package object

import "strings"

// Canonical value ordering. It is total over every value shape except
// closures, which admit no structural order: comparing one is a
// TypeMismatch. The order is what makes set/map iteration, chooseSome and
// seeded oneOf draws reproducible across hosts.
//
// Values of different shapes order by shape rank. A well-typed model never
// exercises that branch, but the evaluator still has to order them somehow.

var typeRank = map[ObjectType]int{
	BOOL_OBJ:    0,
	INT_OBJ:     1,
	STR_OBJ:     2,
	SET_OBJ:     3,
	LIST_OBJ:    4,
	MAP_OBJ:     5,
	TUPLE_OBJ:   6,
	RECORD_OBJ:  7,
	VARIANT_OBJ: 8,
	INFSET_OBJ:  9,
}

// Compare returns a negative, zero, or positive result like strings.Compare.
func Compare(a, b Object) (int, *Error) {
	ra, ok := typeRank[a.Type()]
	if !ok {
		return 0, NewError(TypeMismatch, "values of type %s have no canonical order", a.Type())
	}
	rb, ok := typeRank[b.Type()]
	if !ok {
		return 0, NewError(TypeMismatch, "values of type %s have no canonical order", b.Type())
	}
	if ra != rb {
		return ra - rb, nil
	}

	switch av := a.(type) {
	case *Bool:
		bv := b.(*Bool)
		switch {
		case av.Value == bv.Value:
			return 0, nil
		case !av.Value:
			return -1, nil
		default:
			return 1, nil
		}
	case *Int:
		return av.Value.Cmp(b.(*Int).Value), nil
	case *Str:
		return strings.Compare(av.Value, b.(*Str).Value), nil
	case *List:
		return compareSlices(av.Elements, b.(*List).Elements)
	case *Tuple:
		return compareSlices(av.Elements, b.(*Tuple).Elements)
	case *Set:
		return compareSlices(av.elements, b.(*Set).elements)
	case *Map:
		return compareMaps(av, b.(*Map))
	case *Record:
		return compareRecords(av, b.(*Record))
	case *Variant:
		bv := b.(*Variant)
		if c := strings.Compare(av.Label, bv.Label); c != 0 {
			return c, nil
		}
		return Compare(av.Value, bv.Value)
	case *InfiniteSet:
		bv := b.(*InfiniteSet)
		if c := strings.Compare(av.Descr, bv.Descr); c != 0 {
			return c, nil
		}
		return Compare(av.Base, bv.Base)
	}
	return 0, NewError(TypeMismatch, "values of type %s have no canonical order", a.Type())
}

func compareSlices(a, b []Object) (int, *Error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, err := Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return len(a) - len(b), nil
}

func compareMaps(a, b *Map) (int, *Error) {
	n := len(a.pairs)
	if len(b.pairs) < n {
		n = len(b.pairs)
	}
	for i := 0; i < n; i++ {
		c, err := Compare(a.pairs[i].Key, b.pairs[i].Key)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
		c, err = Compare(a.pairs[i].Value, b.pairs[i].Value)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return len(a.pairs) - len(b.pairs), nil
}

func compareRecords(a, b *Record) (int, *Error) {
	n := len(a.fields)
	if len(b.fields) < n {
		n = len(b.fields)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.fields[i].Name, b.fields[i].Name); c != 0 {
			return c, nil
		}
		c, err := Compare(a.fields[i].Value, b.fields[i].Value)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return len(a.fields) - len(b.fields), nil
}

// Equal is structural equality between values of the same shape. Comparing
// mismatched shapes is itself a TypeMismatch, per the eq/neq contract.
func Equal(a, b Object) (bool, *Error) {
	if a.Type() != b.Type() {
		return false, NewError(TypeMismatch, "cannot compare %s with %s", a.Type(), b.Type())
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
