package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrParse wraps every syntax error returned by this package.
	ErrParse = errors.New("parse error")
)

// errAt builds a parse error carrying the offending offset and the
// expression text.
func errAt(in string, off int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d in %q", ErrParse, msg, off, in)
}
