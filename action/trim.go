package action

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/remap-format/remap/ir"
)

var (
	trimSym      = &trimAction{name: trimName, trim: strings.TrimSpace}
	trimStartSym = &trimAction{name: trimStartName, trim: func(s string) string {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}}
	trimEndSym = &trimAction{name: trimEndName, trim: func(s string) string {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}}
)

// Trim returns the trim action: whitespace removed from both ends of a
// string.
func Trim() Action {
	return trimSym
}

// TrimStart returns the trim_start action.
func TrimStart() Action {
	return trimStartSym
}

// TrimEnd returns the trim_end action.
func TrimEnd() Action {
	return trimEndSym
}

const (
	trimName      name = "trim"
	trimStartName name = "trim_start"
	trimEndName   name = "trim_end"
)

type trimAction struct {
	name
	trim func(string) string
}

func (a *trimAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s wants 1 argument, got %d", ErrArity, a, len(args))
	}
	s, err := args[0].AsString()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a, err)
	}
	return ir.FromString(a.trim(s)), nil
}
