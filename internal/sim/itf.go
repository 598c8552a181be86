package sim

import (
	"math/big"
	"quill/internal/object"
)

// EncodeValue lowers a runtime value to a JSON-encodable form. The encoding
// follows the ITF trace conventions: sets, maps, tuples, big integers and
// variants are wrapped in tagged objects so that a reader can reconstruct
// the value shapes unambiguously.
func EncodeValue(v object.Object) interface{} {
	switch v := v.(type) {
	case *object.Bool:
		return v.Value
	case *object.Int:
		return encodeInt(v.Value)
	case *object.Str:
		return v.Value
	case *object.List:
		return encodeSlice(v.Elements)
	case *object.Tuple:
		return map[string]interface{}{"#tup": encodeSlice(v.Elements)}
	case *object.Set:
		return map[string]interface{}{"#set": encodeSlice(v.Elements())}
	case *object.Map:
		pairs := make([]interface{}, 0, v.Size())
		for _, p := range v.Pairs() {
			pairs = append(pairs, []interface{}{EncodeValue(p.Key), EncodeValue(p.Value)})
		}
		return map[string]interface{}{"#map": pairs}
	case *object.Record:
		fields := make(map[string]interface{}, len(v.Fields()))
		for _, f := range v.Fields() {
			fields[f.Name] = EncodeValue(f.Value)
		}
		return fields
	case *object.Variant:
		return map[string]interface{}{"#tag": v.Label, "#value": EncodeValue(v.Value)}
	case *object.InfiniteSet:
		return map[string]interface{}{"#infset": v.Descr}
	default:
		return v.Inspect()
	}
}

var (
	maxSafeInt = big.NewInt(1<<53 - 1)
	minSafeInt = big.NewInt(-(1<<53 - 1))
)

// encodeInt keeps integers in JSON's safe range as numbers and widens the
// rest into the #bigint wrapper.
func encodeInt(v *big.Int) interface{} {
	if v.Cmp(minSafeInt) >= 0 && v.Cmp(maxSafeInt) <= 0 {
		return v.Int64()
	}
	return map[string]interface{}{"#bigint": v.String()}
}

func encodeSlice(elems []object.Object) []interface{} {
	out := make([]interface{}, len(elems))
	for i, el := range elems {
		out[i] = EncodeValue(el)
	}
	return out
}
