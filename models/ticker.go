package models

import (
	"encoding/json"
	"time"

	"github.com/antonholmquist/jason"
)

// Quotation is one side of a market at a point in time. Time travels as
// unix seconds.
type Quotation struct {
	Price  float64
	Amount float64
	Time   time.Time
}

func (q Quotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Price  float64 `json:"price"`
		Amount float64 `json:"amount"`
		Time   int64   `json:"time"`
	}{q.Price, q.Amount, q.Time.Unix()})
}

func (q *Quotation) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("quotation", data)
	if err != nil {
		return err
	}
	parsed, err := decodeQuotation("quotation", obj)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func decodeQuotation(typ string, obj *jason.Object) (Quotation, error) {
	price, err := requireFloat(typ, obj, "price")
	if err != nil {
		return Quotation{}, err
	}
	amount, err := requireFloat(typ, obj, "amount")
	if err != nil {
		return Quotation{}, err
	}
	sec, err := requireInt(typ, obj, "time")
	if err != nil {
		return Quotation{}, err
	}
	return Quotation{Price: price, Amount: amount, Time: time.Unix(sec, 0)}, nil
}

// Ticker is the live bid/ask of a market.
type Ticker struct {
	Bid Quotation
	Ask Quotation
}

func (t Ticker) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bid Quotation `json:"bid"`
		Ask Quotation `json:"ask"`
	}{t.Bid, t.Ask})
}

func (t *Ticker) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("ticker", data)
	if err != nil {
		return err
	}
	bidObj, err := requireObject("ticker", obj, "bid")
	if err != nil {
		return err
	}
	bid, err := decodeQuotation("ticker", bidObj)
	if err != nil {
		return err
	}
	askObj, err := requireObject("ticker", obj, "ask")
	if err != nil {
		return err
	}
	ask, err := decodeQuotation("ticker", askObj)
	if err != nil {
		return err
	}
	*t = Ticker{Bid: bid, Ask: ask}
	return nil
}
