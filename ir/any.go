package ir

import (
	"fmt"
	"math"
)

// FromAny converts a dynamically typed Go value (the shapes produced by
// generic JSON/YAML decoding) into a tree.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := Array()
		for _, elem := range x {
			y, err := FromAny(elem)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elem := range x {
			y, err := FromAny(elem)
			if err != nil {
				return nil, err
			}
			m[k] = y
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrType, v)
	}
}

// ToAny converts a tree into generic Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Object field order is
// lost; use Marshal when order matters.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		return y.Num()
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elem := range y.Values {
			res[i] = ToAny(elem)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Keys))
		for i, key := range y.Keys {
			res[key] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("ir type")
	}
}
