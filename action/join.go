package action

import (
	"fmt"
	"strings"

	"github.com/remap-format/remap/ir"
)

var joinSym = &joinAction{name: joinName}

// Join returns the join action: join(sep, v...) concatenates the
// string forms of v with sep between them.
func Join() Action {
	return joinSym
}

const joinName name = "join"

type joinAction struct {
	name
}

func (a joinAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: %s wants a separator and at least one value, got %d args", ErrArity, a, len(args))
	}
	sep := args[0].Text()
	parts := make([]string, len(args)-1)
	for i, arg := range args[1:] {
		parts[i] = arg.Text()
	}
	return ir.FromString(strings.Join(parts, sep)), nil
}
