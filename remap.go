// Package remap applies ordered lists of (getter, setter) expression
// pairs to tree-shaped values, producing a restructured output tree
// from an unmodified input tree.
package remap

import (
	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/parse"
)

// Op is one transformation operation: a getter expression read against
// the input and a setter expression written into the output.
type Op struct {
	Src string `json:"src" yaml:"src"`
	Dst string `json:"dst" yaml:"dst"`
}

type compiledOp struct {
	src  *expr.Getter
	dst  *expr.Setter
	text Op
}

// Transform is a compiled operation list. It is immutable once built
// and safe for concurrent Apply calls.
type Transform struct {
	ops []compiledOp
}

// Ops returns the source text of the compiled operations.
func (t *Transform) Ops() []Op {
	res := make([]Op, len(t.ops))
	for i := range t.ops {
		res[i] = t.ops[i].text
	}
	return res
}

// Builder accumulates operation pairs in apply order.
type Builder struct {
	ops []Op
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends one getter/setter pair.
func (b *Builder) Add(src, dst string) *Builder {
	b.ops = append(b.ops, Op{Src: src, Dst: dst})
	return b
}

// AddOps appends already-assembled pairs.
func (b *Builder) AddOps(ops ...Op) *Builder {
	b.ops = append(b.ops, ops...)
	return b
}

// Build compiles the accumulated pairs, failing on the first malformed
// one with a *BuildError naming its index.
func (b *Builder) Build() (*Transform, error) {
	t := &Transform{ops: make([]compiledOp, 0, len(b.ops))}
	for i, op := range b.ops {
		src, err := parse.ParseGetter(op.Src)
		if err != nil {
			return nil, &BuildError{Op: i, Src: op.Src, Dst: op.Dst, Err: err}
		}
		dst, err := parse.ParseSetter(op.Dst)
		if err != nil {
			return nil, &BuildError{Op: i, Src: op.Src, Dst: op.Dst, Err: err}
		}
		t.ops = append(t.ops, compiledOp{src: src, dst: dst, text: op})
	}
	return t, nil
}

// Build compiles ops directly, without the builder.
func Build(ops ...Op) (*Transform, error) {
	return NewBuilder().AddOps(ops...).Build()
}
