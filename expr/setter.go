package expr

// Modifier is the write policy applied at a setter path's final
// segment.
type Modifier int

const (
	// ModNone replaces the addressed slot.
	ModNone Modifier = iota
	// ModAppend pushes the value onto the addressed array.
	ModAppend
	// ModExtend pushes every element of an array value onto the
	// addressed array.
	ModExtend
	// ModMergeIndex overwrites the addressed array's elements at the
	// overlapping indexes.
	ModMergeIndex
	// ModMergeObject sets the value's fields on the addressed object.
	ModMergeObject
)

func (m Modifier) String() string {
	switch m {
	case ModAppend:
		return "[]"
	case ModExtend:
		return "[+]"
	case ModMergeIndex:
		return "[-]"
	case ModMergeObject:
		return "{}"
	default:
		return ""
	}
}

// Setter is a write expression: a path into the output plus a terminal
// modifier. An empty path with ModNone replaces the whole output.
type Setter struct {
	Path []Segment
	Mod  Modifier
}

func (s *Setter) String() string {
	return PathString(s.Path) + s.Mod.String()
}
