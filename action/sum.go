package action

import (
	"fmt"

	"github.com/remap-format/remap/ir"
)

var sumSym = &sumAction{name: sumName}

// Sum returns the sum action: numeric addition over every argument.
// The result stays integral unless a fractional argument appears.
func Sum() Action {
	return sumSym
}

const sumName name = "sum"

type sumAction struct {
	name
}

func (a sumAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s wants at least 1 argument", ErrArity, a)
	}
	var (
		intSum   int64
		floatSum float64
		allInt   = true
	)
	for _, arg := range args {
		n, err := arg.AsNumber()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		floatSum += n
		if arg.IsInt() {
			intSum += *arg.Int64
		} else {
			allInt = false
		}
	}
	if allInt {
		return ir.FromInt(intSum), nil
	}
	return ir.FromFloat(floatSum), nil
}
