package remap

import (
	"github.com/remap-format/remap/gomap"
)

// ApplyTo transforms a Go value into another Go value. src is any
// json-marshalable value; dst must be a pointer.
func (t *Transform) ApplyTo(src, dst any) error {
	in, err := gomap.Decode(src)
	if err != nil {
		return err
	}
	out, err := t.Apply(in)
	if err != nil {
		return err
	}
	return gomap.Encode(out, dst)
}
