package script

import (
	"errors"
	"testing"

	"github.com/remap-format/remap"
	"github.com/remap-format/remap/parse"
)

func TestScriptApply(t *testing.T) {
	scriptTests := []struct {
		name string
		ops  []remap.Op
		in   string
		want string
	}{
		{
			name: "arith",
			ops:  []remap.Op{{Src: `script("args[0] * 2 + args[1]", a, b)`, Dst: "out"}},
			in:   `{"a":3,"b":1}`,
			want: `{"out":7}`,
		},
		{
			name: "string expr",
			ops:  []remap.Op{{Src: `script("upper(args[0])", user.name)`, Dst: "out"}},
			in:   `{"user":{"name":"ana"}}`,
			want: `{"out":"ANA"}`,
		},
		{
			name: "no extra args",
			ops:  []remap.Op{{Src: `script("len(args) == 0 ? \"empty\" : \"full\"")`, Dst: "out"}},
			in:   `{}`,
			want: `{"out":"empty"}`,
		},
		{
			name: "nested getter arg",
			ops:  []remap.Op{{Src: `script("len(args[0])", items)`, Dst: "n"}},
			in:   `{"items":["a","b"]}`,
			want: `{"n":2}`,
		},
	}
	for _, st := range scriptTests {
		tr, err := remap.Build(st.ops...)
		if err != nil {
			t.Errorf("%s: build: %v", st.name, err)
			continue
		}
		got, err := tr.ApplyString(st.in)
		if err != nil {
			t.Errorf("%s: apply: %v", st.name, err)
			continue
		}
		if got != st.want {
			t.Errorf("%s = %s, want %s", st.name, got, st.want)
		}
	}
}

func TestScriptBadProgram(t *testing.T) {
	_, err := remap.Build(remap.Op{Src: `script("1 +")`, Dst: "out"})
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("err = %v", err)
	}
	be := &remap.BuildError{}
	if !errors.As(err, &be) {
		t.Errorf("no build position in %v", err)
	}
}

func TestScriptRequiresProgram(t *testing.T) {
	_, err := remap.Build(remap.Op{Src: `script()`, Dst: "out"})
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("err = %v", err)
	}
}
