package ir

import "errors"

var (
	// ErrType reports a coercion applied to the wrong value variant.
	ErrType = errors.New("type mismatch")

	ErrDecode = errors.New("decode error")
)
