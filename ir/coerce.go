package ir

import "fmt"

// AsString returns the node's string value, failing on any other
// variant. Use Text for the lossy display form of non-strings.
func (y *Node) AsString() (string, error) {
	if y.Type != StringType {
		return "", fmt.Errorf("%w: expected String, got %s", ErrType, y.Type)
	}
	return y.String, nil
}

// AsNumber returns the node's numeric value.
func (y *Node) AsNumber() (float64, error) {
	if y.Type != NumberType {
		return 0, fmt.Errorf("%w: expected Number, got %s", ErrType, y.Type)
	}
	return y.Num(), nil
}

// AsArray returns the node's elements.
func (y *Node) AsArray() ([]*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: expected Array, got %s", ErrType, y.Type)
	}
	return y.Values, nil
}

// AsObject returns the node itself when it is an object, for callers
// that go on to use Keys/Get/Set.
func (y *Node) AsObject() (*Node, error) {
	if y.Type != ObjectType {
		return nil, fmt.Errorf("%w: expected Object, got %s", ErrType, y.Type)
	}
	return y, nil
}

// Text renders any node as a string: strings verbatim, everything else
// in its JSON form. Used by join-style concatenation.
func (y *Node) Text() string {
	switch y.Type {
	case StringType:
		return y.String
	case NullType:
		return "null"
	case BoolType:
		if y.Bool {
			return "true"
		}
		return "false"
	case NumberType:
		return y.NumText()
	default:
		d, err := Marshal(y)
		if err != nil {
			return ""
		}
		return string(d)
	}
}
