// Package ir holds the tree value representation shared by transform
// inputs, outputs and action results.
package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a tagged tree value: null, bool, number, string, array or
// object. Arrays keep their elements in Values; objects keep parallel
// Keys and Values slices so field order survives re-encoding.
type Node struct {
	Type Type

	Bool    bool
	Int64   *int64
	Float64 *float64
	String  string

	Keys   []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(elems []*Node) *Node {
	return &Node{Type: ArrayType, Values: elems}
}

func Array() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// FromMap builds an object with sorted keys, for callers starting from
// an unordered Go map.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// Get returns the value at field, or nil when absent or not an object.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set inserts or overwrites field. Insertion order is preserved; a
// duplicate key replaces the previous value in place (last write wins).
func (y *Node) Set(field string, v *Node) {
	for i := range y.Keys {
		if y.Keys[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Keys = append(y.Keys, field)
	y.Values = append(y.Values, v)
}

// At returns the array element at index i, or nil when out of range or
// not an array.
func (y *Node) At(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.String = y.String
	dst.Int64 = nil
	dst.Float64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Keys = nil
	dst.Values = nil
	if y.Keys != nil {
		dst.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Equal reports structural equality. Object field order is not
// significant for equality, only the key/value mapping; numbers compare
// by numeric value so FromInt(1) equals FromFloat(1).
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return a.Num() == b.Num()
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i, key := range a.Keys {
			if !Equal(a.Values[i], b.Get(key)) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

// Num returns the numeric value of a number node, favoring the integral
// form when present.
func (y *Node) Num() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

// IsInt reports whether a number node carries an integral value.
func (y *Node) IsInt() bool {
	return y.Int64 != nil
}

// NumText renders a number node the way it was written: integers
// without a fraction, floats in shortest form.
func (y *Node) NumText() string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return "0"
}

// Visit walks the tree pre and post order; f returning false on the
// pre-order call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
