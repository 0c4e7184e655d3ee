package parse

import (
	"errors"
	"testing"

	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/ir"
)

type getterTest struct {
	in   string
	want string
	e    bool
}

func TestParseGetterOK(t *testing.T) {
	gts := []getterTest{
		{in: ``, want: ``},
		{in: `name`, want: `name`},
		{in: `a.b.c`, want: `a.b.c`},
		{in: `items[0]`, want: `items[0]`},
		{in: `[0]`, want: `[0]`},
		{in: `[0][1]`, want: `[0][1]`},
		{in: `a[2].b`, want: `a[2].b`},
		{in: `["dotted.key"]`, want: `["dotted.key"]`},
		{in: `["dotted.key"].inner`, want: `["dotted.key"].inner`},
		{in: `[""]`, want: `[""]`},
		{in: `["name()"]`, want: `["name()"]`},
		{in: `["quo\"ted"]`, want: `["quo\"ted"]`},
		{in: `  padded  `, want: `padded`},
		{in: `const(null)`, want: `const(null)`},
		{in: `const(7)`, want: `const(7)`},
		{in: `const("hi")`, want: `const("hi")`},
		{in: `const([1,2])`, want: `const([1,2])`},
		{in: `const({"a":1})`, want: `const({"a":1})`},
		{in: `join(",", a, b)`, want: `join(const(","), a, b)`},
		{in: `join(",", join("-", x.y, [1]), c)`, want: `join(const(","), join(const("-"), x.y, [1]), c)`},
		{in: `len(items)`, want: `len(items)`},
		{in: `sum(a, const(1))`, want: `sum(a, const(1))`},
		{in: `trim(name)`, want: `trim(name)`},
	}
	for _, gt := range gts {
		g, err := ParseGetter(gt.in)
		if err != nil {
			t.Errorf("ParseGetter(%q): %v", gt.in, err)
			continue
		}
		if got := g.String(); got != gt.want {
			t.Errorf("ParseGetter(%q) = %s, want %s", gt.in, got, gt.want)
		}
	}
}

func TestParseGetterErrors(t *testing.T) {
	bads := []string{
		`.a`,
		`a.`,
		`a..b`,
		`a.b(c)`,
		`a)`,
		`a[1x]`,
		`a[-1]`,
		`a[`,
		`["unterminated`,
		`["key"`,
		`(a)`,
		`join("unterminated)`,
		`const()`,
		`const(nope)`,
	}
	for _, in := range bads {
		if _, err := ParseGetter(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseGetter(%q) err = %v", in, err)
		}
	}
}

func TestParseGetterConstValues(t *testing.T) {
	g, err := ParseGetter(`const({"a": [1, 2]})`)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ir.Unmarshal([]byte(`{"a":[1,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(g.Lit, want) {
		t.Errorf("const lit = %v", g.Lit)
	}
}

type setterTest struct {
	in   string
	want string
	mod  expr.Modifier
	e    bool
}

func TestParseSetter(t *testing.T) {
	sts := []setterTest{
		{in: ``, want: ``},
		{in: `name`, want: `name`},
		{in: `a.b[3].c`, want: `a.b[3].c`},
		{in: `items[]`, want: `items[]`, mod: expr.ModAppend},
		{in: `items[+]`, want: `items[+]`, mod: expr.ModExtend},
		{in: `items[-]`, want: `items[-]`, mod: expr.ModMergeIndex},
		{in: `obj{}`, want: `obj{}`, mod: expr.ModMergeObject},
		{in: `{}`, want: `{}`, mod: expr.ModMergeObject},
		{in: `[]`, want: `[]`, mod: expr.ModAppend},
		{in: `["a.b"][]`, want: `["a.b"][]`, mod: expr.ModAppend},
		{in: `a[].b`, e: true},
		{in: `a[+]x`, e: true},
		{in: `a{}b`, e: true},
		{in: `a{`, e: true},
		{in: `a[-`, e: true},
		{in: `.a`, e: true},
		{in: `a.`, e: true},
		{in: `a..b`, e: true},
		{in: `a.b(c)`, e: true},
	}
	for _, st := range sts {
		s, err := ParseSetter(st.in)
		if st.e {
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseSetter(%q) err = %v", st.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSetter(%q): %v", st.in, err)
			continue
		}
		if s.Mod != st.mod {
			t.Errorf("ParseSetter(%q) mod = %v, want %v", st.in, s.Mod, st.mod)
		}
		if got := s.String(); got != st.want {
			t.Errorf("ParseSetter(%q) = %s", st.in, got)
		}
	}
}

// a getter never treats braces as modifiers, they are legal field bytes
func TestGetterBraceIsField(t *testing.T) {
	g, err := ParseGetter(`we{i}rd`)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Path) != 1 || *g.Path[0].Field != "we{i}rd" {
		t.Errorf("path = %v", g.Path)
	}
}

func TestSplitArgs(t *testing.T) {
	args, err := splitArgs("t", `a, join("x,y", b), const([1,2]), "q,r"`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`a`, ` join("x,y", b)`, ` const([1,2])`, ` "q,r"`}
	if len(args) != len(want) {
		t.Fatalf("args = %q", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
