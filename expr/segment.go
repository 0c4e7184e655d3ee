// Package expr holds the parsed form of getter and setter expressions.
package expr

import (
	"strconv"
	"strings"
)

// Segment is one step of a path: a field lookup or an array index.
// Exactly one of Field/Index is set.
type Segment struct {
	Field *string
	Index *int
}

func FieldSeg(name string) Segment {
	return Segment{Field: &name}
}

func IndexSeg(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) String() string {
	if s.Index != nil {
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return fieldString(*s.Field)
}

// fieldString renders a field name, falling back to the explicit-key
// form when the bare spelling would not re-parse.
func fieldString(f string) string {
	if f != "" && !strings.ContainsAny(f, `."[]{}(), `) {
		return f
	}
	quoted := strings.ReplaceAll(f, `"`, `\"`)
	return `["` + quoted + `"]`
}

// PathString renders a segment sequence in source syntax.
func PathString(segs []Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 && seg.Field != nil {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}
