package models

import (
	"github.com/antonholmquist/jason"
)

// NumericString returns the text of a string node, or the literal "0.0" for a
// null or absent node. Exchange APIs deliver numeric-looking fields sometimes
// as JSON strings and sometimes as null, so both shapes fold into one string.
// A null field therefore reads as zero and is indistinguishable from a real
// "0.0"; callers that care must inspect the node themselves. Any other node
// kind fails with *FormatError.
func NumericString(v *jason.Value) (string, error) {
	if v == nil {
		return "0.0", nil
	}
	if s, err := v.String(); err == nil {
		return s, nil
	}
	// Null() is no use here: jason marks only object members and array
	// elements as existing and refuses the rest, a parsed top-level null
	// included. The serialized form identifies null for every provenance.
	if raw, err := v.Marshal(); err == nil && string(raw) == "null" {
		return "0.0", nil
	}
	return "", &FormatError{Node: nodeText(v)}
}

// nodeText serializes a tree node for error messages.
func nodeText(v *jason.Value) string {
	data, err := v.Marshal()
	if err != nil {
		return "<invalid node>"
	}
	return string(data)
}

// objectDocument parses a wire document that must be a JSON object.
func objectDocument(typ string, data []byte) (*jason.Object, error) {
	obj, err := jason.NewObjectFromBytes(data)
	if err != nil {
		return nil, badDocument(typ, err)
	}
	return obj, nil
}

// requireKey returns the node stored under key, failing when the document
// does not carry it. A key present with a null value is not missing; the
// typed getters reject it instead.
func requireKey(typ string, obj *jason.Object, key string) (*jason.Value, error) {
	if v, ok := obj.Map()[key]; ok {
		return v, nil
	}
	return nil, missingKey(typ, key)
}

func requireString(typ string, obj *jason.Object, key string) (string, error) {
	v, err := requireKey(typ, obj, key)
	if err != nil {
		return "", err
	}
	s, err := v.String()
	if err != nil {
		return "", badKey(typ, key, err)
	}
	return s, nil
}

func requireFloat(typ string, obj *jason.Object, key string) (float64, error) {
	v, err := requireKey(typ, obj, key)
	if err != nil {
		return 0, err
	}
	f, err := v.Float64()
	if err != nil {
		return 0, badKey(typ, key, err)
	}
	return f, nil
}

func requireInt(typ string, obj *jason.Object, key string) (int64, error) {
	v, err := requireKey(typ, obj, key)
	if err != nil {
		return 0, err
	}
	n, err := v.Int64()
	if err != nil {
		return 0, badKey(typ, key, err)
	}
	return n, nil
}

func requireObject(typ string, obj *jason.Object, key string) (*jason.Object, error) {
	v, err := requireKey(typ, obj, key)
	if err != nil {
		return nil, err
	}
	o, err := v.Object()
	if err != nil {
		return nil, badKey(typ, key, err)
	}
	return o, nil
}
