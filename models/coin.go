package models

import (
	"encoding/json"
	"sort"
)

// Coin describes one listed currency the way the exchange reports it.
// Status is the exchange's own wording ("available", "unavailable", ...)
// and travels as-is.
type Coin struct {
	Name   string // "Bitcoin"
	Symbol string // "BTC"
	Status string
}

func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Status string `json:"status"`
	}{c.Name, c.Symbol, c.Status})
}

func (c *Coin) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("coin", data)
	if err != nil {
		return err
	}
	name, err := requireString("coin", obj, "name")
	if err != nil {
		return err
	}
	symbol, err := requireString("coin", obj, "symbol")
	if err != nil {
		return err
	}
	status, err := requireString("coin", obj, "status")
	if err != nil {
		return err
	}
	*c = Coin{Name: name, Symbol: symbol, Status: status}
	return nil
}

// CoinMap is the symbol-keyed object form in which exchanges publish their
// coin listings.
type CoinMap map[string]Coin

// Symbols returns the listed symbols in sorted order.
func (m CoinMap) Symbols() []string {
	symbols := make([]string, 0, len(m))
	for s := range m {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
