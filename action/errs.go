package action

import "errors"

var (
	// ErrArity reports an action invoked with the wrong number of
	// arguments.
	ErrArity = errors.New("wrong number of arguments")
)
