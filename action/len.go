package action

import (
	"fmt"
	"unicode/utf8"

	"github.com/remap-format/remap/ir"
)

var lenSym = &lenAction{name: lenName}

// Len returns the len action: character count of a string, element
// count of an array, key count of an object.
func Len() Action {
	return lenSym
}

const lenName name = "len"

type lenAction struct {
	name
}

func (a lenAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s wants 1 argument, got %d", ErrArity, a, len(args))
	}
	v := args[0]
	switch v.Type {
	case ir.StringType:
		return ir.FromInt(int64(utf8.RuneCountInString(v.String))), nil
	case ir.ArrayType:
		return ir.FromInt(int64(len(v.Values))), nil
	case ir.ObjectType:
		return ir.FromInt(int64(len(v.Keys))), nil
	default:
		return nil, fmt.Errorf("%w: %s applies to String, Array or Object, got %s", ir.ErrType, a, v.Type)
	}
}
