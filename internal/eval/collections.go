package eval

import (
	"math/big"
	"quill/internal/object"
)

func init() {
	builtins["union"] = builtinUnion
	builtins["intersect"] = builtinIntersect
	builtins["exclude"] = builtinExclude
	builtins["contains"] = builtinContains
	builtins["in"] = builtinIn
	builtins["subseteq"] = builtinSubseteq
	builtins["powerset"] = builtinPowerset
	builtins["flatten"] = builtinFlatten
	builtins["size"] = builtinSize
	builtins["isEmpty"] = builtinIsEmpty
	builtins["fold"] = builtinFold
	builtins["foldl"] = builtinFoldl
	builtins["map"] = builtinMap
	builtins["filter"] = builtinFilter
	builtins["select"] = builtinSelect
	builtins["mapBy"] = builtinMapBy
	builtins["setToMap"] = builtinSetToMap
	builtins["setOfMaps"] = builtinSetOfMaps
	builtins["allLists"] = builtinAllLists
	builtins["allListsUpTo"] = builtinAllListsUpTo
	builtins["chooseSome"] = builtinChooseSome
	builtins["oneOf"] = builtinOneOf
	builtins["to"] = builtinTo
	builtins["range"] = builtinRange

	builtins["get"] = builtinGet
	builtins["put"] = builtinPut
	builtins["set"] = builtinSetKey
	builtins["setBy"] = builtinSetBy
	builtins["keys"] = builtinKeys

	builtins["head"] = builtinHead
	builtins["tail"] = builtinTail
	builtins["nth"] = builtinNth
	builtins["length"] = builtinLength
	builtins["append"] = builtinAppend
	builtins["concat"] = builtinConcat
	builtins["indices"] = builtinIndices
	builtins["slice"] = builtinSlice
}

func builtinUnion(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("union", 2, len(args))
	}
	a, err := asSet("union", args[0])
	if err != nil {
		return err
	}
	b, err := asSet("union", args[1])
	if err != nil {
		return err
	}
	out := a
	for _, el := range b.Elements() {
		out, err = out.Add(el)
		if err != nil {
			return err
		}
	}
	return out
}

func builtinIntersect(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("intersect", 2, len(args))
	}
	a, err := asSet("intersect", args[0])
	if err != nil {
		return err
	}
	b, err := asSet("intersect", args[1])
	if err != nil {
		return err
	}
	kept := []object.Object{}
	for _, el := range a.Elements() {
		in, err := b.Contains(el)
		if err != nil {
			return err
		}
		if in {
			kept = append(kept, el)
		}
	}
	s, err := object.NewSet(kept...)
	if err != nil {
		return err
	}
	return s
}

func builtinExclude(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("exclude", 2, len(args))
	}
	a, err := asSet("exclude", args[0])
	if err != nil {
		return err
	}
	b, err := asSet("exclude", args[1])
	if err != nil {
		return err
	}
	kept := []object.Object{}
	for _, el := range a.Elements() {
		in, err := b.Contains(el)
		if err != nil {
			return err
		}
		if !in {
			kept = append(kept, el)
		}
	}
	s, err := object.NewSet(kept...)
	if err != nil {
		return err
	}
	return s
}

func setContains(container, candidate object.Object) object.Object {
	switch s := container.(type) {
	case *object.Set:
		in, err := s.Contains(candidate)
		if err != nil {
			return err
		}
		return object.NativeBoolToBool(in)
	case *object.InfiniteSet:
		// membership is decidable even though enumeration is not
		in, err := s.Contains(candidate)
		if err != nil {
			return err
		}
		return object.NativeBoolToBool(in)
	default:
		return object.NewError(object.TypeMismatch,
			"contains expects SET, got %s", container.Type())
	}
}

func builtinContains(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("contains", 2, len(args))
	}
	return setContains(args[0], args[1])
}

func builtinIn(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("in", 2, len(args))
	}
	return setContains(args[1], args[0])
}

func builtinSubseteq(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("subseteq", 2, len(args))
	}
	a, err := asSet("subseteq", args[0])
	if err != nil {
		return err
	}
	for _, el := range a.Elements() {
		res := setContains(args[1], el)
		if object.IsError(res) {
			return res
		}
		if !res.(*object.Bool).Value {
			return FALSE
		}
	}
	return TRUE
}

func builtinPowerset(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("powerset", 1, len(args))
	}
	s, err := asSet("powerset", args[0])
	if err != nil {
		return err
	}
	elems := s.Elements()
	if len(elems) > 24 {
		return object.NewError(object.Unsupported,
			"powerset of a %d-element set is too large to materialize", len(elems))
	}
	subsets := make([]object.Object, 0, 1<<len(elems))
	for mask := 0; mask < 1<<len(elems); mask++ {
		members := []object.Object{}
		for i, el := range elems {
			if mask&(1<<i) != 0 {
				members = append(members, el)
			}
		}
		sub, err := object.NewSet(members...)
		if err != nil {
			return err
		}
		subsets = append(subsets, sub)
	}
	out, err := object.NewSet(subsets...)
	if err != nil {
		return err
	}
	return out
}

func builtinFlatten(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("flatten", 1, len(args))
	}
	s, err := asSet("flatten", args[0])
	if err != nil {
		return err
	}
	members := []object.Object{}
	for _, el := range s.Elements() {
		inner, err := asSet("flatten", el)
		if err != nil {
			return err
		}
		members = append(members, inner.Elements()...)
	}
	out, err := object.NewSet(members...)
	if err != nil {
		return err
	}
	return out
}

func builtinSize(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("size", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Set:
		return object.NewInt(int64(v.Size()))
	case *object.Map:
		return object.NewInt(int64(v.Size()))
	case *object.InfiniteSet:
		return object.NewError(object.Unsupported,
			"size cannot enumerate the infinite set %s", v.Descr)
	default:
		return object.NewError(object.TypeMismatch,
			"size expects SET or MAP, got %s", args[0].Type())
	}
}

func builtinIsEmpty(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("isEmpty", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Set:
		return object.NativeBoolToBool(v.Size() == 0)
	case *object.Map:
		return object.NativeBoolToBool(v.Size() == 0)
	case *object.List:
		return object.NativeBoolToBool(len(v.Elements) == 0)
	case *object.InfiniteSet:
		return FALSE
	default:
		return object.NewError(object.TypeMismatch,
			"isEmpty expects SET, LIST or MAP, got %s", args[0].Type())
	}
}

// fold over a set applies the combining operator across the canonical
// element order. The operator contract requires the combination to be
// associative and commutative, so the fixed internal order is unobservable
// to contract-respecting specs.
func builtinFold(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("fold", 3, len(args))
	}
	s, err := asSet("fold", args[0])
	if err != nil {
		return err
	}
	f, err := asClosure("fold", args[2])
	if err != nil {
		return err
	}
	acc := args[1]
	for _, el := range s.Elements() {
		acc = e.Apply(f, []object.Object{acc, el})
		if object.IsError(acc) {
			return acc
		}
	}
	return acc
}

// foldl over a list is strictly left-to-right.
func builtinFoldl(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("foldl", 3, len(args))
	}
	l, err := asList("foldl", args[0])
	if err != nil {
		return err
	}
	f, err := asClosure("foldl", args[2])
	if err != nil {
		return err
	}
	acc := args[1]
	for _, el := range l.Elements {
		acc = e.Apply(f, []object.Object{acc, el})
		if object.IsError(acc) {
			return acc
		}
	}
	return acc
}

func builtinMap(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("map", 2, len(args))
	}
	f, err := asClosure("map", args[1])
	if err != nil {
		return err
	}
	switch src := args[0].(type) {
	case *object.Set:
		mapped := make([]object.Object, 0, src.Size())
		for _, el := range src.Elements() {
			v := e.Apply(f, []object.Object{el})
			if object.IsError(v) {
				return v
			}
			mapped = append(mapped, v)
		}
		out, err := object.NewSet(mapped...)
		if err != nil {
			return err
		}
		return out
	case *object.List:
		mapped := make([]object.Object, 0, len(src.Elements))
		for _, el := range src.Elements {
			v := e.Apply(f, []object.Object{el})
			if object.IsError(v) {
				return v
			}
			mapped = append(mapped, v)
		}
		return &object.List{Elements: mapped}
	case *object.InfiniteSet:
		return object.NewError(object.Unsupported,
			"map cannot enumerate the infinite set %s", src.Descr)
	default:
		return object.NewError(object.TypeMismatch,
			"map expects SET or LIST, got %s", args[0].Type())
	}
}

func filterElements(e *Evaluator, op string, elems []object.Object, pred *object.Closure) ([]object.Object, object.Object) {
	kept := []object.Object{}
	for _, el := range elems {
		v := e.Apply(pred, []object.Object{el})
		if object.IsError(v) {
			return nil, v
		}
		b, err := asBool(op, v)
		if err != nil {
			return nil, err
		}
		if b.Value {
			kept = append(kept, el)
		}
	}
	return kept, nil
}

func builtinFilter(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("filter", 2, len(args))
	}
	f, err := asClosure("filter", args[1])
	if err != nil {
		return err
	}
	switch src := args[0].(type) {
	case *object.Set:
		kept, errObj := filterElements(e, "filter", src.Elements(), f)
		if errObj != nil {
			return errObj
		}
		out, err := object.NewSet(kept...)
		if err != nil {
			return err
		}
		return out
	case *object.List:
		kept, errObj := filterElements(e, "filter", src.Elements, f)
		if errObj != nil {
			return errObj
		}
		return &object.List{Elements: kept}
	case *object.InfiniteSet:
		return object.NewError(object.Unsupported,
			"filter cannot enumerate the infinite set %s", src.Descr)
	default:
		return object.NewError(object.TypeMismatch,
			"filter expects SET or LIST, got %s", args[0].Type())
	}
}

// select is list filtering; kept separate from filter to match the
// catalogue's list algebra.
func builtinSelect(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("select", 2, len(args))
	}
	l, err := asList("select", args[0])
	if err != nil {
		return err
	}
	f, err := asClosure("select", args[1])
	if err != nil {
		return err
	}
	kept, errObj := filterElements(e, "select", l.Elements, f)
	if errObj != nil {
		return errObj
	}
	return &object.List{Elements: kept}
}

func builtinMapBy(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("mapBy", 2, len(args))
	}
	s, err := asSet("mapBy", args[0])
	if err != nil {
		return err
	}
	f, err := asClosure("mapBy", args[1])
	if err != nil {
		return err
	}
	pairs := make([]object.MapPair, 0, s.Size())
	for _, el := range s.Elements() {
		v := e.Apply(f, []object.Object{el})
		if object.IsError(v) {
			return v
		}
		pairs = append(pairs, object.MapPair{Key: el, Value: v})
	}
	m, err := object.NewMap(pairs...)
	if err != nil {
		return err
	}
	return m
}

func builtinSetToMap(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("setToMap", 1, len(args))
	}
	s, err := asSet("setToMap", args[0])
	if err != nil {
		return err
	}
	pairs := make([]object.MapPair, 0, s.Size())
	for _, el := range s.Elements() {
		tup, ok := el.(*object.Tuple)
		if !ok || len(tup.Elements) != 2 {
			return object.NewError(object.TypeMismatch,
				"setToMap expects a set of pairs, got element %s", el.Inspect())
		}
		pairs = append(pairs, object.MapPair{Key: tup.Elements[0], Value: tup.Elements[1]})
	}
	m, err := object.NewMap(pairs...)
	if err != nil {
		return err
	}
	return m
}

// setOfMaps builds every total map from the key set to the value set.
func builtinSetOfMaps(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("setOfMaps", 2, len(args))
	}
	ks, err := asSet("setOfMaps", args[0])
	if err != nil {
		return err
	}
	vs, err := asSet("setOfMaps", args[1])
	if err != nil {
		return err
	}
	keys := ks.Elements()
	vals := vs.Elements()
	if len(keys) > 0 && len(vals) == 0 {
		empty, _ := object.NewSet()
		return empty
	}
	count := 1
	for range keys {
		count *= len(vals)
		if count > 1<<20 {
			return object.NewError(object.Unsupported,
				"setOfMaps over %d keys and %d values is too large to materialize",
				len(keys), len(vals))
		}
	}
	choice := make([]int, len(keys))
	maps := make([]object.Object, 0, count)
	for {
		pairs := make([]object.MapPair, len(keys))
		for i, k := range keys {
			pairs[i] = object.MapPair{Key: k, Value: vals[choice[i]]}
		}
		m, err := object.NewMap(pairs...)
		if err != nil {
			return err
		}
		maps = append(maps, m)

		i := len(choice) - 1
		for ; i >= 0; i-- {
			choice[i]++
			if choice[i] < len(vals) {
				break
			}
			choice[i] = 0
		}
		if i < 0 {
			break
		}
	}
	out, err := object.NewSet(maps...)
	if err != nil {
		return err
	}
	return out
}

func builtinAllLists(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("allLists", 1, len(args))
	}
	s, err := asSet("allLists", args[0])
	if err != nil {
		return err
	}
	return &object.InfiniteSet{
		Descr: "allLists(" + s.Inspect() + ")",
		Base:  s,
	}
}

func builtinAllListsUpTo(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("allListsUpTo", 2, len(args))
	}
	s, err := asSet("allListsUpTo", args[0])
	if err != nil {
		return err
	}
	n, err := asInt("allListsUpTo", args[1])
	if err != nil {
		return err
	}
	maxLen, ok := n.Int64()
	if !ok || maxLen < 0 {
		return object.NewError(object.Undefined,
			"allListsUpTo expects a non-negative bound, got %s", n.Inspect())
	}
	elems := s.Elements()
	lists := []object.Object{&object.List{Elements: nil}}
	frontier := []*object.List{{Elements: nil}}
	for k := int64(1); k <= maxLen; k++ {
		if len(lists) > 1<<20 {
			return object.NewError(object.Unsupported,
				"allListsUpTo(%d) over a %d-element set is too large to materialize",
				maxLen, len(elems))
		}
		next := make([]*object.List, 0, len(frontier)*len(elems))
		for _, prefix := range frontier {
			for _, el := range elems {
				ext := make([]object.Object, 0, len(prefix.Elements)+1)
				ext = append(ext, prefix.Elements...)
				ext = append(ext, el)
				l := &object.List{Elements: ext}
				next = append(next, l)
				lists = append(lists, l)
			}
		}
		frontier = next
	}
	out, err := object.NewSet(lists...)
	if err != nil {
		return err
	}
	return out
}

// chooseSome is the deterministic pick: the canonical minimum. It consumes
// no randomness.
func builtinChooseSome(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("chooseSome", 1, len(args))
	}
	s, err := asSet("chooseSome", args[0])
	if err != nil {
		return err
	}
	if s.Size() == 0 {
		return object.NewError(object.Undefined, "chooseSome over an empty set")
	}
	return s.Elements()[0]
}

// oneOf draws one element uniformly from the run's seeded stream,
// consuming exactly one decision.
func builtinOneOf(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("oneOf", 1, len(args))
	}
	s, err := asSet("oneOf", args[0])
	if err != nil {
		return err
	}
	if s.Size() == 0 {
		return object.NewError(object.Undefined, "oneOf over an empty set")
	}
	return s.Elements()[e.rand.Pick(s.Size())]
}

// to builds the inclusive integer interval a..b as a set.
func builtinTo(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("to", 2, len(args))
	}
	a, err := asInt("to", args[0])
	if err != nil {
		return err
	}
	b, err := asInt("to", args[1])
	if err != nil {
		return err
	}
	elems := []object.Object{}
	one := big.NewInt(1)
	for i := new(big.Int).Set(a.Value); i.Cmp(b.Value) <= 0; i.Add(i, one) {
		elems = append(elems, &object.Int{Value: new(big.Int).Set(i)})
	}
	s, errObj := object.NewSet(elems...)
	if errObj != nil {
		return errObj
	}
	return s
}

// range builds the half-open integer interval a..b-1 as a list.
func builtinRange(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("range", 2, len(args))
	}
	a, err := asInt("range", args[0])
	if err != nil {
		return err
	}
	b, err := asInt("range", args[1])
	if err != nil {
		return err
	}
	elems := []object.Object{}
	one := big.NewInt(1)
	for i := new(big.Int).Set(a.Value); i.Cmp(b.Value) < 0; i.Add(i, one) {
		elems = append(elems, &object.Int{Value: new(big.Int).Set(i)})
	}
	return &object.List{Elements: elems}
}

func builtinGet(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("get", 2, len(args))
	}
	m, err := asMap("get", args[0])
	if err != nil {
		return err
	}
	v, found, err := m.Get(args[1])
	if err != nil {
		return err
	}
	if !found {
		return object.NewError(object.Undefined, "key %s not in map", args[1].Inspect())
	}
	return v
}

func builtinPut(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("put", 3, len(args))
	}
	m, err := asMap("put", args[0])
	if err != nil {
		return err
	}
	out, err := m.Put(args[1], args[2])
	if err != nil {
		return err
	}
	return out
}

// set updates an existing key; unlike put it refuses to grow the domain.
func builtinSetKey(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("set", 3, len(args))
	}
	m, err := asMap("set", args[0])
	if err != nil {
		return err
	}
	_, found, err := m.Get(args[1])
	if err != nil {
		return err
	}
	if !found {
		return object.NewError(object.Undefined, "key %s not in map", args[1].Inspect())
	}
	out, err := m.Put(args[1], args[2])
	if err != nil {
		return err
	}
	return out
}

func builtinSetBy(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("setBy", 3, len(args))
	}
	m, err := asMap("setBy", args[0])
	if err != nil {
		return err
	}
	f, err := asClosure("setBy", args[2])
	if err != nil {
		return err
	}
	old, found, err := m.Get(args[1])
	if err != nil {
		return err
	}
	if !found {
		return object.NewError(object.Undefined, "key %s not in map", args[1].Inspect())
	}
	v := e.Apply(f, []object.Object{old})
	if object.IsError(v) {
		return v
	}
	out, err := m.Put(args[1], v)
	if err != nil {
		return err
	}
	return out
}

func builtinKeys(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("keys", 1, len(args))
	}
	m, err := asMap("keys", args[0])
	if err != nil {
		return err
	}
	return m.Keys()
}

func builtinHead(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("head", 1, len(args))
	}
	l, err := asList("head", args[0])
	if err != nil {
		return err
	}
	if len(l.Elements) == 0 {
		return object.NewError(object.Undefined, "head of an empty list")
	}
	return l.Elements[0]
}

func builtinTail(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("tail", 1, len(args))
	}
	l, err := asList("tail", args[0])
	if err != nil {
		return err
	}
	if len(l.Elements) == 0 {
		return object.NewError(object.Undefined, "tail of an empty list")
	}
	return &object.List{Elements: l.Elements[1:]}
}

// nth is 0-based list projection.
func builtinNth(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("nth", 2, len(args))
	}
	l, err := asList("nth", args[0])
	if err != nil {
		return err
	}
	idx, err := asInt("nth", args[1])
	if err != nil {
		return err
	}
	i, ok := idx.Int64()
	if !ok || i < 0 || i >= int64(len(l.Elements)) {
		return object.NewError(object.Undefined,
			"list index %s out of range 0..%d", idx.Inspect(), len(l.Elements)-1)
	}
	return l.Elements[i]
}

func builtinLength(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("length", 1, len(args))
	}
	l, err := asList("length", args[0])
	if err != nil {
		return err
	}
	return object.NewInt(int64(len(l.Elements)))
}

func builtinAppend(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("append", 2, len(args))
	}
	l, err := asList("append", args[0])
	if err != nil {
		return err
	}
	elems := make([]object.Object, 0, len(l.Elements)+1)
	elems = append(elems, l.Elements...)
	elems = append(elems, args[1])
	return &object.List{Elements: elems}
}

func builtinConcat(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgs("concat", 2, len(args))
	}
	a, err := asList("concat", args[0])
	if err != nil {
		return err
	}
	b, err := asList("concat", args[1])
	if err != nil {
		return err
	}
	elems := make([]object.Object, 0, len(a.Elements)+len(b.Elements))
	elems = append(elems, a.Elements...)
	elems = append(elems, b.Elements...)
	return &object.List{Elements: elems}
}

func builtinIndices(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs("indices", 1, len(args))
	}
	l, err := asList("indices", args[0])
	if err != nil {
		return err
	}
	elems := make([]object.Object, 0, len(l.Elements))
	for i := range l.Elements {
		elems = append(elems, object.NewInt(int64(i)))
	}
	s, errObj := object.NewSet(elems...)
	if errObj != nil {
		return errObj
	}
	return s
}

// slice returns the sublist [from, to).
func builtinSlice(e *Evaluator, args []object.Object) object.Object {
	if len(args) != 3 {
		return wrongArgs("slice", 3, len(args))
	}
	l, err := asList("slice", args[0])
	if err != nil {
		return err
	}
	from, err := asInt("slice", args[1])
	if err != nil {
		return err
	}
	to, err := asInt("slice", args[2])
	if err != nil {
		return err
	}
	f, okF := from.Int64()
	t, okT := to.Int64()
	if !okF || !okT || f < 0 || t < f || t > int64(len(l.Elements)) {
		return object.NewError(object.Undefined,
			"slice bounds %s..%s out of range for a %d-element list",
			from.Inspect(), to.Inspect(), len(l.Elements))
	}
	elems := make([]object.Object, t-f)
	copy(elems, l.Elements[f:t])
	return &object.List{Elements: elems}
}
