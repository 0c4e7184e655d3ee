package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document into a tree, preserving mapping key
// order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return fromYAMLAny(v)
}

func fromYAMLAny(v any) (*Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string mapping key %v", ErrDecode, item.Key)
			}
			val, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		res := Array()
		for _, elem := range x {
			y, err := fromYAMLAny(elem)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	default:
		return FromAny(v)
	}
}
