package remap

import (
	"fmt"

	"github.com/remap-format/remap/expr"
	"github.com/remap-format/remap/ir"
)

// write walks the setter path through the output tree, materializing
// missing structure, then applies the terminal modifier. Missing fields
// become empty objects; missing indexes extend arrays with Null fill.
func write(out *ir.Node, s *expr.Setter, v *ir.Node) error {
	cur := out
	for _, seg := range s.Path {
		if seg.Field != nil {
			f := *seg.Field
			if cur.Type == ir.NullType {
				cur.Type = ir.ObjectType
			}
			if cur.Type != ir.ObjectType {
				return fmt.Errorf("%w: cannot set field %q on %s", ErrPathConflict, f, cur.Type)
			}
			next := cur.Get(f)
			if next == nil {
				next = ir.Null()
				cur.Set(f, next)
			}
			cur = next
			continue
		}
		i := *seg.Index
		if cur.Type == ir.NullType {
			cur.Type = ir.ArrayType
		}
		if cur.Type != ir.ArrayType {
			return fmt.Errorf("%w: cannot index [%d] into %s", ErrPathConflict, i, cur.Type)
		}
		for len(cur.Values) <= i {
			cur.Values = append(cur.Values, ir.Null())
		}
		cur = cur.Values[i]
	}
	return applyMod(cur, s.Mod, v)
}

func applyMod(dst *ir.Node, mod expr.Modifier, v *ir.Node) error {
	switch mod {
	case expr.ModNone:
		*dst = *v
		return nil

	case expr.ModAppend:
		if dst.Type == ir.NullType {
			dst.Type = ir.ArrayType
		}
		if dst.Type != ir.ArrayType {
			return fmt.Errorf("%w: cannot append onto %s", ErrPathConflict, dst.Type)
		}
		dst.Values = append(dst.Values, v)
		return nil

	case expr.ModExtend:
		if v.Type != ir.ArrayType {
			return fmt.Errorf("%w: [+] wants an Array source, got %s", ErrModifierType, v.Type)
		}
		if dst.Type == ir.NullType {
			dst.Type = ir.ArrayType
		}
		if dst.Type != ir.ArrayType {
			return fmt.Errorf("%w: cannot extend %s", ErrPathConflict, dst.Type)
		}
		dst.Values = append(dst.Values, v.Values...)
		return nil

	case expr.ModMergeIndex:
		if v.Type != ir.ArrayType {
			return fmt.Errorf("%w: [-] wants an Array source, got %s", ErrModifierType, v.Type)
		}
		if dst.Type == ir.NullType {
			*dst = *v
			return nil
		}
		if dst.Type != ir.ArrayType {
			return fmt.Errorf("%w: cannot index-merge onto %s", ErrPathConflict, dst.Type)
		}
		// strict overlap: source elements beyond the existing length
		// are dropped, not appended
		n := min(len(dst.Values), len(v.Values))
		for i := 0; i < n; i++ {
			dst.Values[i] = v.Values[i]
		}
		return nil

	case expr.ModMergeObject:
		if v.Type != ir.ObjectType {
			return fmt.Errorf("%w: {} wants an Object source, got %s", ErrModifierType, v.Type)
		}
		if dst.Type == ir.NullType {
			dst.Type = ir.ObjectType
		}
		if dst.Type != ir.ObjectType {
			return fmt.Errorf("%w: cannot object-merge onto %s", ErrPathConflict, dst.Type)
		}
		for i, key := range v.Keys {
			dst.Set(key, v.Values[i])
		}
		return nil

	default:
		panic("modifier")
	}
}
