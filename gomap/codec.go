// Package gomap bridges Go values and remap trees through a JSON token
// stream.
package gomap

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"

	"github.com/remap-format/remap/ir"
)

// Decode converts a Go value to a tree. The value goes through json
// marshaling, so struct json tags apply and object field order follows
// struct field order.
func Decode(v any) (*ir.Node, error) {
	b := bytes.NewBuffer(nil)
	jEnc := jsontext.NewEncoder(b)
	if err := json.MarshalEncode(jEnc, v); err != nil {
		return nil, err
	}
	jDec := jsontext.NewDecoder(b)
	return ir.ReadValue(jDec)
}

// Encode fills the Go value pointed to by p from a tree, through json
// unmarshaling.
func Encode(node *ir.Node, p any) error {
	b := bytes.NewBuffer(nil)
	jEnc := jsontext.NewEncoder(b)
	if err := ir.WriteValue(jEnc, node); err != nil {
		return err
	}
	jDec := jsontext.NewDecoder(b)
	return json.UnmarshalDecode(jDec, p)
}
