package ir

import (
	"bytes"
	"encoding/json/jsontext"
	"fmt"
	"strconv"
)

// Unmarshal decodes a JSON document into a tree, preserving object
// field order.
func Unmarshal(d []byte) (*Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	node, err := ReadValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return node, nil
}

// Marshal encodes a tree as compact JSON.
func Marshal(y *Node) ([]byte, error) {
	b := bytes.NewBuffer(nil)
	enc := jsontext.NewEncoder(b)
	if err := WriteValue(enc, y); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// MarshalIndent encodes a tree as indented JSON.
func MarshalIndent(y *Node) ([]byte, error) {
	b := bytes.NewBuffer(nil)
	enc := jsontext.NewEncoder(b, jsontext.WithIndent("  "))
	if err := WriteValue(enc, y); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// ReadValue decodes a single value from a jsontext token stream.
func ReadValue(dec *jsontext.Decoder) (*Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return FromBool(tok.Bool()), nil
	case '"':
		return FromString(tok.String()), nil
	case '0':
		return numberNode(tok.String())
	case '[':
		res := Array()
		for dec.PeekKind() != ']' {
			elem, err := ReadValue(dec)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, elem)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '{':
		res := Object()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// the token is voided by the next decoder call
			key := keyTok.String()
			val, err := ReadValue(dec)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// WriteValue encodes a tree onto a jsontext token stream.
func WriteValue(enc *jsontext.Encoder, y *Node) error {
	switch y.Type {
	case NullType:
		return enc.WriteToken(jsontext.Null)
	case BoolType:
		return enc.WriteToken(jsontext.Bool(y.Bool))
	case NumberType:
		if y.Int64 != nil {
			return enc.WriteToken(jsontext.Int(*y.Int64))
		}
		if y.Float64 != nil {
			return enc.WriteToken(jsontext.Float(*y.Float64))
		}
		return enc.WriteToken(jsontext.Int(0))
	case StringType:
		return enc.WriteToken(jsontext.String(y.String))
	case ArrayType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, elem := range y.Values {
			if err := WriteValue(enc, elem); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case ObjectType:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, key := range y.Keys {
			if err := enc.WriteToken(jsontext.String(key)); err != nil {
				return err
			}
			if err := WriteValue(enc, y.Values[i]); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		panic("ir type")
	}
}

func numberNode(text string) (*Node, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", text, err)
	}
	return FromFloat(f), nil
}
