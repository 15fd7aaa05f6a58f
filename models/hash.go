package models

import (
	"encoding/json"

	"github.com/antonholmquist/jason"
	"github.com/tidwall/gjson"
)

// Hash is a JSON document carried opaquely as text, the form exchanges use
// for transaction receipts. The text itself must be valid JSON; decoding
// enforces that without retaining the parsed tree.
type Hash string

// Tree re-parses the embedded document for structured access.
func (h Hash) Tree() (*jason.Value, error) {
	v, err := jason.NewValueFromBytes([]byte(h))
	if err != nil {
		return nil, &ParseError{Text: string(h)}
	}
	return v, nil
}

// Get plucks one value out of the embedded document by gjson path, without
// building the tree. Absent paths read as the zero Result.
func (h Hash) Get(path string) gjson.Result {
	return gjson.Get(string(h), path)
}

// MarshalJSON encodes the hash as a JSON string holding the embedded text.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON expects a string node and checks the content with the same
// parser Tree uses, so a decoded hash always yields a tree later. Content
// that does not parse fails with *ParseError.
func (h *Hash) UnmarshalJSON(data []byte) error {
	v, err := jason.NewValueFromBytes(data)
	if err != nil {
		return badDocument("hash", err)
	}
	s, err := v.String()
	if err != nil {
		return badDocument("hash", err)
	}
	if _, err := jason.NewValueFromBytes([]byte(s)); err != nil {
		return &ParseError{Text: s}
	}
	*h = Hash(s)
	return nil
}
