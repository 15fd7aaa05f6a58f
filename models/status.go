package models

import (
	"encoding/json"

	"github.com/antonholmquist/jason"
)

// Status is the lifecycle stage of a deposit or conversion as exchanges
// report it. The tag set is closed; the zero value is StatusNoDeposits.
type Status int

const (
	StatusNoDeposits Status = iota
	StatusInitial
	StatusReceived
	StatusComplete
	StatusSettled
	StatusPending
	StatusFailed
	StatusPartial
	StatusExpired
)

// statusTags maps wire tags to values. "no_deposists" is the spelling that
// travels on the wire; keep it verbatim.
var statusTags = map[string]Status{
	"no_deposists": StatusNoDeposits,
	"initial":      StatusInitial,
	"received":     StatusReceived,
	"complete":     StatusComplete,
	"settled":      StatusSettled,
	"pending":      StatusPending,
	"failed":       StatusFailed,
	"partial":      StatusPartial,
	"expired":      StatusExpired,
}

// ParseStatus maps a wire tag to its Status. Tags outside the declared set
// fail with *UnknownTagError; parsing has no fallback.
func ParseStatus(tag string) (Status, error) {
	s, ok := statusTags[tag]
	if !ok {
		return 0, &UnknownTagError{Tag: tag}
	}
	return s, nil
}

// String returns the textual tag. Display is total: StatusExpired and any
// value outside the declared set both render as "expired".
func (s Status) String() string {
	switch s {
	case StatusNoDeposits:
		return "no_deposists"
	case StatusInitial:
		return "initial"
	case StatusReceived:
		return "received"
	case StatusComplete:
		return "complete"
	case StatusSettled:
		return "settled"
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	case StatusPartial:
		return "partial"
	default:
		return "expired"
	}
}

// MarshalJSON encodes the textual tag. Encoding goes through String, so an
// out-of-range value encodes as "expired" rather than failing.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a tag string via ParseStatus.
func (s *Status) UnmarshalJSON(data []byte) error {
	v, err := jason.NewValueFromBytes(data)
	if err != nil {
		return badDocument("status", err)
	}
	tag, err := v.String()
	if err != nil {
		return badDocument("status", err)
	}
	parsed, err := ParseStatus(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
