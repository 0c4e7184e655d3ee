package action

import (
	"fmt"
	"strings"

	"github.com/remap-format/remap/ir"
)

var (
	stripStartSym = &stripAction{name: stripStartName, strip: strings.TrimPrefix}
	stripEndSym   = &stripAction{name: stripEndName, strip: strings.TrimSuffix}
)

// StripStart returns the strip_start action: strip_start(prefix, v)
// removes prefix from v when present.
func StripStart() Action {
	return stripStartSym
}

// StripEnd returns the strip_end action, the suffix counterpart of
// strip_start.
func StripEnd() Action {
	return stripEndSym
}

const (
	stripStartName name = "strip_start"
	stripEndName   name = "strip_end"
)

type stripAction struct {
	name
	strip func(s, affix string) string
}

func (a *stripAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s wants an affix and a value, got %d args", ErrArity, a, len(args))
	}
	affix, err := args[0].AsString()
	if err != nil {
		return nil, fmt.Errorf("%s affix: %w", a, err)
	}
	s, err := args[1].AsString()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a, err)
	}
	return ir.FromString(a.strip(s, affix)), nil
}
