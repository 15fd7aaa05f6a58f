package models

import (
	"encoding/json"
	"strings"

	"github.com/antonholmquist/jason"
)

// CurrencyPair is an ordered pair of currency symbols, base first. Symbols
// are held upper case regardless of how they arrived.
type CurrencyPair struct {
	Base  string // "BTC"
	Quote string // "USD"
}

// NewCurrencyPair builds a pair from two symbols, folding both to upper
// case. Inputs are not validated; empty symbols stay empty.
func NewCurrencyPair(base, quote string) CurrencyPair {
	return CurrencyPair{
		Base:  strings.ToUpper(base),
		Quote: strings.ToUpper(quote),
	}
}

// ParseCurrencyPair splits s at the last underscore: everything before it is
// the base, everything after it the quote. Quote symbols carry no underscore
// of their own, so "USDT_OMNI_BTC" reads as USDT_OMNI against BTC. A string
// with no underscore yields the zero pair; callers detect that themselves,
// no error is raised.
func ParseCurrencyPair(s string) CurrencyPair {
	i := strings.LastIndex(s, "_")
	if i < 0 {
		return CurrencyPair{}
	}
	return NewCurrencyPair(s[:i], s[i+1:])
}

// String returns the canonical BASE_QUOTE form. This is also the wire form
// used wherever a pair is embedded in a larger document.
func (p CurrencyPair) String() string {
	return p.Base + "_" + p.Quote
}

// MarshalJSON encodes the pair as a two-element array of symbols.
func (p CurrencyPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Base, p.Quote})
}

// UnmarshalJSON decodes the two-element array form, folding symbols to upper
// case on the way in.
func (p *CurrencyPair) UnmarshalJSON(data []byte) error {
	v, err := jason.NewValueFromBytes(data)
	if err != nil {
		return badDocument("currency_pair", err)
	}
	elems, err := v.Array()
	if err != nil {
		return badDocument("currency_pair", err)
	}
	if len(elems) < 1 {
		return missingKey("currency_pair", "0")
	}
	if len(elems) < 2 {
		return missingKey("currency_pair", "1")
	}
	base, err := elems[0].String()
	if err != nil {
		return badKey("currency_pair", "0", err)
	}
	quote, err := elems[1].String()
	if err != nil {
		return badKey("currency_pair", "1", err)
	}
	*p = NewCurrencyPair(base, quote)
	return nil
}
