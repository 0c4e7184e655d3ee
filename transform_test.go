package remap

import (
	"errors"
	"testing"

	"github.com/remap-format/remap/ir"
	"github.com/remap-format/remap/parse"
)

type applyTest struct {
	name string
	ops  []Op
	in   string
	want string
}

func TestApply(t *testing.T) {
	ats := []applyTest{
		{
			name: "rename",
			ops:  []Op{{"user.name", "name"}},
			in:   `{"user":{"name":"ana"}}`,
			want: `{"name":"ana"}`,
		},
		{
			name: "whole input",
			ops:  []Op{{"", "wrapped"}},
			in:   `{"a":1}`,
			want: `{"wrapped":{"a":1}}`,
		},
		{
			name: "whole output",
			ops:  []Op{{"user", ""}},
			in:   `{"user":{"id":7}}`,
			want: `{"id":7}`,
		},
		{
			name: "later op wins",
			ops:  []Op{{"a", "x"}, {"b", "x"}},
			in:   `{"a":1,"b":2}`,
			want: `{"x":2}`,
		},
		{
			name: "reads see input not output",
			ops:  []Op{{"a", "b"}, {"b", "c"}},
			in:   `{"a":1,"b":2}`,
			want: `{"b":1,"c":2}`,
		},
		{
			name: "missing read writes null",
			ops:  []Op{{"nope.deep", "out"}},
			in:   `{"a":1}`,
			want: `{"out":null}`,
		},
		{
			name: "mismatched read writes null",
			ops:  []Op{{"a[0]", "out"}},
			in:   `{"a":{"k":1}}`,
			want: `{"out":null}`,
		},
		{
			name: "autoviv object chain",
			ops:  []Op{{"v", "a.b.c"}},
			in:   `{"v":1}`,
			want: `{"a":{"b":{"c":1}}}`,
		},
		{
			name: "autoviv array padding",
			ops:  []Op{{"v", "xs[2]"}},
			in:   `{"v":9}`,
			want: `{"xs":[null,null,9]}`,
		},
		{
			name: "index root output",
			ops:  []Op{{"v", "[1]"}},
			in:   `{"v":true}`,
			want: `[null,true]`,
		},
		{
			name: "append",
			ops:  []Op{{"a", "xs[]"}, {"b", "xs[]"}},
			in:   `{"a":1,"b":2}`,
			want: `{"xs":[1,2]}`,
		},
		{
			name: "append non-array value stays whole",
			ops:  []Op{{"a", "xs[]"}},
			in:   `{"a":[1,2]}`,
			want: `{"xs":[[1,2]]}`,
		},
		{
			name: "extend",
			ops:  []Op{{"seed", "xs"}, {"more", "xs[+]"}},
			in:   `{"seed":["x"],"more":["a","b"]}`,
			want: `{"xs":["x","a","b"]}`,
		},
		{
			name: "merge by index overlap",
			ops:  []Op{{"base", "xs"}, {"over", "xs[-]"}},
			in:   `{"base":[1,2,3],"over":["a","b"]}`,
			want: `{"xs":["a","b",3]}`,
		},
		{
			name: "merge by index longer source truncates",
			ops:  []Op{{"base", "xs"}, {"over", "xs[-]"}},
			in:   `{"base":[1],"over":["a","b","c"]}`,
			want: `{"xs":["a"]}`,
		},
		{
			name: "merge by index into empty slot",
			ops:  []Op{{"over", "xs[-]"}},
			in:   `{"over":["a","b"]}`,
			want: `{"xs":["a","b"]}`,
		},
		{
			name: "merge object",
			ops:  []Op{{"defaults", "cfg"}, {"site", "cfg{}"}},
			in:   `{"defaults":{"a":1,"b":2},"site":{"b":9,"c":3}}`,
			want: `{"cfg":{"a":1,"b":9,"c":3}}`,
		},
		{
			name: "merge object root",
			ops:  []Op{{"a", "{}"}, {"b", "{}"}},
			in:   `{"a":{"x":1},"b":{"y":2}}`,
			want: `{"x":1,"y":2}`,
		},
		{
			name: "explicit keys",
			ops:  []Op{{`["dotted.key"]`, `["spaced key"]`}},
			in:   `{"dotted.key":"v"}`,
			want: `{"spaced key":"v"}`,
		},
		{
			name: "const",
			ops:  []Op{{`const({"v":2})`, "meta"}},
			in:   `{}`,
			want: `{"meta":{"v":2}}`,
		},
		{
			name: "join",
			ops:  []Op{{`join(", ", user.first, user.last)`, "full"}},
			in:   `{"user":{"first":"ana","last":"b"}}`,
			want: `{"full":"ana, b"}`,
		},
		{
			name: "sum len nested",
			ops:  []Op{{`sum(len(items), const(10))`, "n"}},
			in:   `{"items":[1,2,3]}`,
			want: `{"n":13}`,
		},
		{
			name: "strip and trim nested",
			ops:  []Op{{`trim(strip_start("img-", name))`, "short"}},
			in:   `{"name":"img-web  "}`,
			want: `{"short":"web"}`,
		},
	}
	for _, at := range ats {
		tr, err := Build(at.ops...)
		if err != nil {
			t.Errorf("%s: build: %v", at.name, err)
			continue
		}
		got, err := tr.ApplyString(at.in)
		if err != nil {
			t.Errorf("%s: apply: %v", at.name, err)
			continue
		}
		if got != at.want {
			t.Errorf("%s:\n got  %s\n want %s", at.name, got, at.want)
		}
	}
}

func TestApplyNoOps(t *testing.T) {
	tr, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	got, err := tr.ApplyString(`{"a":1}`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{}` {
		t.Errorf("out = %s", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tr, err := Build(Op{"a.b", "out[]"})
	if err != nil {
		t.Fatal(err)
	}
	in, err := ir.Unmarshal([]byte(`{"a":{"b":[1,2]}}`))
	if err != nil {
		t.Fatal(err)
	}
	before := in.Clone()
	if _, err := tr.Apply(in); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(in, before) {
		t.Error("input mutated")
	}
}

func TestBuildError(t *testing.T) {
	_, err := Build(Op{"a", "ok"}, Op{"a[", "x"})
	be := &BuildError{}
	if !errors.As(err, &be) {
		t.Fatalf("err = %v", err)
	}
	if be.Op != 1 {
		t.Errorf("op = %d", be.Op)
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("cause = %v", err)
	}
}

func TestApplyErrors(t *testing.T) {
	applyErrTests := []struct {
		name string
		ops  []Op
		in   string
		e    error
	}{
		{
			name: "unknown action",
			ops:  []Op{{"frobnicate(a)", "out"}},
			in:   `{"a":1}`,
			e:    ErrUnknownAction,
		},
		{
			name: "extend non-array",
			ops:  []Op{{"a", "xs[+]"}},
			in:   `{"a":1}`,
			e:    ErrModifierType,
		},
		{
			name: "merge-index non-array",
			ops:  []Op{{"a", "xs[-]"}},
			in:   `{"a":{"k":1}}`,
			e:    ErrModifierType,
		},
		{
			name: "merge-object non-object",
			ops:  []Op{{"a", "cfg{}"}},
			in:   `{"a":[1]}`,
			e:    ErrModifierType,
		},
		{
			name: "field into scalar",
			ops:  []Op{{"a", "x"}, {"a", "x.deep"}},
			in:   `{"a":1}`,
			e:    ErrPathConflict,
		},
		{
			name: "index into object",
			ops:  []Op{{"a", "x.f"}, {"a", "x[0]"}},
			in:   `{"a":1}`,
			e:    ErrPathConflict,
		},
	}
	for _, at := range applyErrTests {
		tr, err := Build(at.ops...)
		if err != nil {
			t.Errorf("%s: build: %v", at.name, err)
			continue
		}
		_, err = tr.ApplyString(at.in)
		if !errors.Is(err, at.e) {
			t.Errorf("%s: err = %v, want %v", at.name, err, at.e)
		}
		ae := &ApplyError{}
		if !errors.As(err, &ae) {
			t.Errorf("%s: no op position in %v", at.name, err)
		}
	}
}

func TestApplyToNodeKeepsExisting(t *testing.T) {
	tr, err := Build(Op{"a", "added"})
	if err != nil {
		t.Fatal(err)
	}
	in, err := ir.Unmarshal([]byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ir.Unmarshal([]byte(`{"kept":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.ApplyToNode(in, out); err != nil {
		t.Fatal(err)
	}
	d, err := ir.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"kept":true,"added":1}` {
		t.Errorf("out = %s", d)
	}
}

func TestApplyTo(t *testing.T) {
	type user struct {
		First string `json:"first"`
		Last  string `json:"last"`
	}
	type flat struct {
		Full string `json:"full"`
	}
	tr, err := Build(Op{`join(" ", first, last)`, "full"})
	if err != nil {
		t.Fatal(err)
	}
	var res flat
	if err := tr.ApplyTo(user{First: "ana", Last: "b"}, &res); err != nil {
		t.Fatal(err)
	}
	if res.Full != "ana b" {
		t.Errorf("full = %q", res.Full)
	}
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps([]byte(`[{"src":"a","dst":"b"},{"src":"","dst":"c[]"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 || ops[0].Src != "a" || ops[1].Dst != "c[]" {
		t.Errorf("ops = %v", ops)
	}

	yOps, err := ParseOpsYAML([]byte("- src: a\n  dst: b\n- src: \"\"\n  dst: c[]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(yOps) != 2 || yOps[0].Src != "a" || yOps[1].Dst != "c[]" {
		t.Errorf("yaml ops = %v", yOps)
	}
}
