package remap

import (
	"github.com/remap-format/remap/ir"
)

// ApplyBytes transforms a JSON document, returning the output as
// compact JSON.
func (t *Transform) ApplyBytes(d []byte) ([]byte, error) {
	in, err := ir.Unmarshal(d)
	if err != nil {
		return nil, err
	}
	out, err := t.Apply(in)
	if err != nil {
		return nil, err
	}
	return ir.Marshal(out)
}

// ApplyString is ApplyBytes for string documents.
func (t *Transform) ApplyString(s string) (string, error) {
	d, err := t.ApplyBytes([]byte(s))
	if err != nil {
		return "", err
	}
	return string(d), nil
}
