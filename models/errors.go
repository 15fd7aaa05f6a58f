package models

import "fmt"

// FormatError reports a field that was expected to hold a numeric string or
// null but held some other kind of node.
type FormatError struct {
	Node string // serialized form of the offending node
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %s is not string or null", e.Node)
}

// DecodeError reports a failed decode of a wire document: the document did
// not parse into the expected shape, a required key was absent, or a present
// key held the wrong kind of node.
type DecodeError struct {
	Type    string // wire type being decoded, e.g. "deposit_info"
	Key     string // offending key, or element index for positional forms
	Missing bool   // key absent, as opposed to present but malformed
	Err     error  // underlying tree failure, nil when Missing
}

func (e *DecodeError) Error() string {
	switch {
	case e.Missing:
		return fmt.Sprintf("decode %s: missing key %q", e.Type, e.Key)
	case e.Key != "":
		return fmt.Sprintf("decode %s: key %q: %v", e.Type, e.Key, e.Err)
	default:
		return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseError reports a hash whose embedded content is not valid JSON text.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hash %q is not valid json", e.Text)
}

// UnknownTagError reports a status tag outside the declared set.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown status tag %q", e.Tag)
}

func missingKey(typ, key string) *DecodeError {
	return &DecodeError{Type: typ, Key: key, Missing: true}
}

func badKey(typ, key string, err error) *DecodeError {
	return &DecodeError{Type: typ, Key: key, Err: err}
}

func badDocument(typ string, err error) *DecodeError {
	return &DecodeError{Type: typ, Err: err}
}
