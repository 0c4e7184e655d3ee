package remap

import (
	"fmt"

	"github.com/remap-format/remap/action"
	"github.com/remap-format/remap/debug"
	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/ir"
)

// Apply runs the operation list, in order, against input and returns
// the freshly built output tree. The input is never modified; reads
// always see the original input, not the partial output.
func (t *Transform) Apply(input *ir.Node) (*ir.Node, error) {
	// empty object unless the first write steers the root elsewhere
	out := ir.Object()
	if len(t.ops) > 0 {
		p := t.ops[0].dst.Path
		if len(p) == 0 || p[0].Field == nil {
			out = ir.Null()
		}
	}
	if err := t.ApplyToNode(input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyToNode runs the operation list against input, writing into the
// caller-supplied output tree, which may already hold data.
func (t *Transform) ApplyToNode(input, output *ir.Node) error {
	for i := range t.ops {
		op := &t.ops[i]
		v, err := evalGetter(op.src, input)
		if err != nil {
			return &ApplyError{Op: i, Src: op.text.Src, Dst: op.text.Dst, Err: err}
		}
		if debug.Apply() {
			d, _ := ir.Marshal(v)
			debug.Logf("remap: op %d: %s -> %s resolved %s\n", i, op.text.Src, op.text.Dst, d)
		}
		if err := write(output, op.dst, v); err != nil {
			return &ApplyError{Op: i, Src: op.text.Src, Dst: op.text.Dst, Err: err}
		}
	}
	return nil
}

// evalGetter resolves a read expression against the input tree. The
// result is always a fresh tree the writer may take ownership of.
func evalGetter(g *expr.Getter, input *ir.Node) (*ir.Node, error) {
	switch {
	case g.Lit != nil:
		return g.Lit.Clone(), nil
	case g.Call != nil:
		args := make([]*ir.Node, len(g.Call.Args))
		for i, ag := range g.Call.Args {
			v, err := evalGetter(ag, input)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		a := action.Lookup(g.Call.Name)
		if a == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, g.Call.Name)
		}
		if debug.Eval() {
			debug.Logf("remap: eval %s with %d args\n", g.Call.Name, len(args))
		}
		res, err := a.Eval(args)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = ir.Null()
		}
		return res, nil
	default:
		return evalPath(g.Path, input), nil
	}
}

// evalPath walks the input; absent fields, out-of-range indexes and
// lookups into the wrong container all resolve to Null rather than
// failing, so sparse inputs transform cleanly.
func evalPath(segs []expr.Segment, input *ir.Node) *ir.Node {
	cur := input
	for _, seg := range segs {
		var next *ir.Node
		if seg.Field != nil {
			next = cur.Get(*seg.Field)
		} else {
			next = cur.At(*seg.Index)
		}
		if next == nil {
			return ir.Null()
		}
		cur = next
	}
	return cur.Clone()
}
