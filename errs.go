package remap

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction reports a call to an action name with no
	// registered evaluator.
	ErrUnknownAction = errors.New("unknown action")

	// ErrPathConflict reports a write path segment clashing with the
	// structure already present in the output tree.
	ErrPathConflict = errors.New("path conflict")

	// ErrModifierType reports a terminal modifier given a source value
	// of the wrong variant.
	ErrModifierType = errors.New("modifier type mismatch")
)

// BuildError reports the first malformed operation pair.
type BuildError struct {
	Op       int
	Src, Dst string
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("op %d (%q -> %q): %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ApplyError reports the operation that aborted an apply.
type ApplyError struct {
	Op       int
	Src, Dst string
	Err      error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("op %d (%q -> %q): %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}
