// Package script adds a script(...) action evaluating expr-lang
// programs over resolved getter arguments. Importing the package
// registers both the action and its parser:
//
//	import _ "github.com/remap-format/remap/script"
//
// The first argument is the quoted program source, the rest are
// ordinary getters exposed to the program as args[0], args[1], and so
// on:
//
//	script("args[0] + args[1]", counts.a, counts.b)
package script

import (
	"fmt"
	"sync"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/remap-format/remap/action"
	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/ir"
	"github.com/remap-format/remap/parse"
)

const Name = "script"

var programs = struct {
	sync.Mutex
	m map[string]*vm.Program
}{m: map[string]*vm.Program{}}

func init() {
	parse.RegisterActionParser(Name, parseScript)
	action.Register(scriptAction{})
}

// parseScript compiles the program at parse time, so a transform
// carrying a bad program fails to build rather than to apply.
func parseScript(name string, args []string) (*expr.Getter, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("script requires a quoted program")
	}
	src, err := parse.Unquote(args[0])
	if err != nil {
		return nil, err
	}
	if _, err := compile(src); err != nil {
		return nil, fmt.Errorf("bad program %q: %w", src, err)
	}
	got := make([]*expr.Getter, 0, len(args))
	got = append(got, expr.Lit(ir.FromString(src)))
	for _, raw := range args[1:] {
		g, err := parse.ParseArg(raw)
		if err != nil {
			return nil, err
		}
		got = append(got, g)
	}
	return expr.CallGetter(name, got...), nil
}

func compile(src string) (*vm.Program, error) {
	programs.Lock()
	defer programs.Unlock()
	if p := programs.m[src]; p != nil {
		return p, nil
	}
	p, err := exprlang.Compile(src, exprlang.Env(map[string]any{"args": []any{}}))
	if err != nil {
		return nil, err
	}
	programs.m[src] = p
	return p, nil
}

type scriptAction struct{}

func (scriptAction) String() string {
	return Name
}

func (scriptAction) Eval(args []*ir.Node) (*ir.Node, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: script wants a program and 0 or more values", action.ErrArity)
	}
	src, err := args[0].AsString()
	if err != nil {
		return nil, err
	}
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	env := make([]any, len(args)-1)
	for i, y := range args[1:] {
		env[i] = ir.ToAny(y)
	}
	out, err := vm.Run(prog, map[string]any{"args": env})
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", src, err)
	}
	return ir.FromAny(out)
}
