package parse

import (
	"fmt"
	"strings"

	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/ir"
)

// ParseGetter parses a read expression: a path, an action call, or a
// const literal.
func ParseGetter(in string) (*expr.Getter, error) {
	in = strings.TrimSpace(in)
	// an explicit key can look like a call, eg. ["name()"]
	if strings.HasPrefix(in, `["`) {
		return pathGetter(in)
	}
	if name, argText, ok := callText(in); ok {
		if name == "" {
			return nil, errAt(in, 0, "parentheses must be preceded by an action name")
		}
		return parseCall(in, name, argText)
	}
	return pathGetter(in)
}

func pathGetter(in string) (*expr.Getter, error) {
	segs, _, err := scanPath(in, false)
	if err != nil {
		return nil, err
	}
	return expr.PathGetter(segs...), nil
}

// callText reports whether in has the shape IDENT '(' ... ')' spanning
// the whole expression.
func callText(in string) (name, args string, ok bool) {
	i := 0
	for i < len(in) && isIdentByte(in[i]) {
		i++
	}
	if i >= len(in) || in[i] != '(' || in[len(in)-1] != ')' {
		return "", "", false
	}
	return in[:i], in[i+1 : len(in)-1], true
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func parseCall(in, name, argText string) (*expr.Getter, error) {
	if p := lookupActionParser(name); p != nil {
		args, err := splitArgs(in, argText)
		if err != nil {
			return nil, err
		}
		g, err := p(name, args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, name, err)
		}
		return g, nil
	}
	if name == "const" {
		lit, err := parseConst(in, strings.TrimSpace(argText))
		if err != nil {
			return nil, err
		}
		return expr.Lit(lit), nil
	}
	args, err := splitArgs(in, argText)
	if err != nil {
		return nil, err
	}
	got := make([]*expr.Getter, len(args))
	for i, raw := range args {
		g, err := parseArg(raw)
		if err != nil {
			return nil, err
		}
		got[i] = g
	}
	return expr.CallGetter(name, got...), nil
}

// ParseArg parses one raw call argument the way the default call
// grammar does: a quoted string becomes a string literal, anything else
// a nested getter. Custom action parsers use it for the arguments they
// do not treat specially.
func ParseArg(raw string) (*expr.Getter, error) {
	return parseArg(raw)
}

// Unquote resolves a quoted raw argument text to its string value.
func Unquote(raw string) (string, error) {
	return unquote(strings.TrimSpace(raw))
}

// parseArg parses one call argument: a quoted string becomes a string
// literal, anything else is a nested getter.
func parseArg(raw string) (*expr.Getter, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, `"`) {
		s, err := unquote(raw)
		if err != nil {
			return nil, err
		}
		return expr.Lit(ir.FromString(s)), nil
	}
	return ParseGetter(raw)
}

// parseConst decodes the argument of const(...) verbatim as a literal
// value.
func parseConst(in, raw string) (*ir.Node, error) {
	if raw == "" {
		return nil, errAt(in, 0, "const requires a value, eg. const(null)")
	}
	if raw[0] == '"' {
		s, err := unquote(raw)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	lit, err := ir.Unmarshal([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: bad const literal %q: %w", ErrParse, raw, err)
	}
	return lit, nil
}

// splitArgs splits an argument list on top-level commas, ignoring
// commas nested in quotes, parentheses, brackets or braces.
func splitArgs(in, s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var (
		args  []string
		depth int
		quote bool
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote {
			switch c {
			case '\\':
				i++
			case '"':
				quote = false
			}
			continue
		}
		switch c {
		case '"':
			quote = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, errAt(in, i, "unbalanced %q", string(c))
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if quote {
		return nil, errAt(in, len(s), "unterminated quote")
	}
	if depth != 0 {
		return nil, errAt(in, len(s), "unbalanced parentheses")
	}
	return append(args, s[start:]), nil
}

// unquote strips the double quotes around raw and resolves backslash
// escapes. Trailing content after the closing quote is an error.
func unquote(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' {
		return "", errAt(raw, 0, "expected quoted string")
	}
	var b []byte
	i := 1
	for i < len(raw) {
		switch raw[i] {
		case '\\':
			if i+1 >= len(raw) {
				return "", errAt(raw, i, "dangling escape")
			}
			b = append(b, raw[i+1])
			i += 2
		case '"':
			if i != len(raw)-1 {
				return "", errAt(raw, i+1, "unexpected content after closing quote")
			}
			return string(b), nil
		default:
			b = append(b, raw[i])
			i++
		}
	}
	return "", errAt(raw, i, "unterminated quote")
}
