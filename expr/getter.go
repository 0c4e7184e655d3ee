package expr

import (
	"strings"

	"github.com/remap-format/remap/ir"
)

// Getter is a read expression: a literal value, a path into the input,
// or an action call whose arguments are themselves getters. Exactly one
// of Lit/Call is set for those variants; otherwise the getter is a path
// (an empty Path reads the whole input).
type Getter struct {
	Lit  *ir.Node
	Path []Segment
	Call *Call
}

// Call is a named action invocation.
type Call struct {
	Name string
	Args []*Getter
}

func Lit(v *ir.Node) *Getter {
	return &Getter{Lit: v}
}

func PathGetter(segs ...Segment) *Getter {
	return &Getter{Path: segs}
}

func CallGetter(name string, args ...*Getter) *Getter {
	return &Getter{Call: &Call{Name: name, Args: args}}
}

func (g *Getter) String() string {
	switch {
	case g.Lit != nil:
		d, err := ir.Marshal(g.Lit)
		if err != nil {
			return "const(null)"
		}
		return "const(" + string(d) + ")"
	case g.Call != nil:
		args := make([]string, len(g.Call.Args))
		for i, a := range g.Call.Args {
			args[i] = a.String()
		}
		return g.Call.Name + "(" + strings.Join(args, ", ") + ")"
	default:
		return PathString(g.Path)
	}
}
