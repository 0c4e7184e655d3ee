// Package parse compiles getter and setter expression text into the
// expr AST.
package parse

import (
	"strconv"
	"strings"

	"github.com/remap-format/remap/expr"
)

// ParseSetter parses a write expression: a path with an optional
// terminal modifier ([], [+], [-] or {}).
func ParseSetter(in string) (*expr.Setter, error) {
	segs, mod, err := scanPath(in, true)
	if err != nil {
		return nil, err
	}
	return &expr.Setter{Path: segs, Mod: mod}, nil
}

// scanPath scans a dotted path into segments. In setter mode the
// terminal modifiers are recognized and must close the expression.
func scanPath(in string, setter bool) ([]expr.Segment, expr.Modifier, error) {
	var (
		segs []expr.Segment
		buf  []byte
		mod  = expr.ModNone
	)
	flush := func() {
		if len(buf) > 0 {
			segs = append(segs, expr.FieldSeg(string(buf)))
			buf = buf[:0]
		}
	}
	i := 0
	for i < len(in) {
		if mod != expr.ModNone {
			return nil, 0, errAt(in, i, "modifier %q must end the expression", mod.String())
		}
		switch c := in[i]; c {
		case '.':
			// blank keys need the explicit [""] form
			switch {
			case i+1 == len(in):
				return nil, 0, errAt(in, i, `path cannot end with '.'; use [""] for a blank key`)
			case i == 0:
				return nil, 0, errAt(in, i, `path cannot start with '.'; use [""] for a blank key`)
			}
			if len(buf) == 0 {
				// a dot may follow an explicit key or an index
				if in[i-1] == '.' {
					return nil, 0, errAt(in, i, `empty path segment; use [""] for a blank key`)
				}
				i++
				continue
			}
			flush()
			i++
		case '[':
			flush()
			i++
			if i >= len(in) {
				return nil, 0, errAt(in, i, "missing closing ']'")
			}
			switch {
			case in[i] == '"':
				key, next, err := scanExplicitKey(in, i)
				if err != nil {
					return nil, 0, err
				}
				segs = append(segs, expr.FieldSeg(key))
				i = next
			case setter && in[i] == ']':
				mod = expr.ModAppend
				i++
			case setter && (in[i] == '+' || in[i] == '-'):
				m := expr.ModExtend
				if in[i] == '-' {
					m = expr.ModMergeIndex
				}
				i++
				if i >= len(in) || in[i] != ']' {
					return nil, 0, errAt(in, i, "expected ']'")
				}
				mod = m
				i++
			default:
				j := strings.IndexByte(in[i:], ']')
				if j == -1 {
					return nil, 0, errAt(in, i, "missing closing ']'")
				}
				idx, err := strconv.Atoi(in[i : i+j])
				if err != nil || idx < 0 {
					return nil, 0, errAt(in, i, "bad array index %q", in[i:i+j])
				}
				segs = append(segs, expr.IndexSeg(idx))
				i += j + 1
			}
		case '{':
			if !setter {
				buf = append(buf, c)
				i++
				continue
			}
			flush()
			i++
			if i >= len(in) || in[i] != '}' {
				return nil, 0, errAt(in, i, "expected '}'")
			}
			mod = expr.ModMergeObject
			i++
		default:
			if c == '(' || c == ')' {
				return nil, 0, errAt(in, i, `%q is not allowed in a bare field; use the ["..."] form`, string(c))
			}
			buf = append(buf, c)
			i++
		}
	}
	flush()
	return segs, mod, nil
}

// scanExplicitKey scans a ["..."] key starting at the opening quote and
// returns the unescaped key and the offset past the closing ']'.
func scanExplicitKey(in string, i int) (string, int, error) {
	var key []byte
	j := i + 1
	for j < len(in) {
		switch in[j] {
		case '\\':
			if j+1 >= len(in) {
				return "", 0, errAt(in, j, "dangling escape in explicit key")
			}
			key = append(key, in[j+1])
			j += 2
		case '"':
			j++
			if j >= len(in) || in[j] != ']' {
				return "", 0, errAt(in, j, `explicit key must close with "]`)
			}
			return string(key), j + 1, nil
		default:
			key = append(key, in[j])
			j++
		}
	}
	return "", 0, errAt(in, j, "unterminated explicit key")
}
