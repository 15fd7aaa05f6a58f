package models

import (
	"encoding/json"
	"time"
)

// Order is one order as the exchange reports it. The classifying fields are
// the exchange's own wording and are not constrained here.
type Order struct {
	Status    string // open, closed, cancelled
	OrderType string // limit & co
	Type      string // buy or sell
	Pair      CurrencyPair
	Open      time.Time
	Close     time.Time
	Volume    float64
	Cost      float64
	Fee       float64
	Price     float64
}

// MarshalJSON encodes the flat wire object. The pair travels as a single
// BASE_QUOTE string and the timestamps as unix seconds.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status    string  `json:"status"`
		OrderType string  `json:"orderType"`
		Type      string  `json:"type"`
		Pair      string  `json:"pair"`
		Open      int64   `json:"open"`
		Close     int64   `json:"close"`
		Volume    float64 `json:"volume"`
		Cost      float64 `json:"cost"`
		Fee       float64 `json:"fee"`
		Price     float64 `json:"price"`
	}{o.Status, o.OrderType, o.Type, o.Pair.String(), o.Open.Unix(), o.Close.Unix(), o.Volume, o.Cost, o.Fee, o.Price})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("order", data)
	if err != nil {
		return err
	}
	status, err := requireString("order", obj, "status")
	if err != nil {
		return err
	}
	orderType, err := requireString("order", obj, "orderType")
	if err != nil {
		return err
	}
	typ, err := requireString("order", obj, "type")
	if err != nil {
		return err
	}
	pair, err := requireString("order", obj, "pair")
	if err != nil {
		return err
	}
	open, err := requireInt("order", obj, "open")
	if err != nil {
		return err
	}
	closed, err := requireInt("order", obj, "close")
	if err != nil {
		return err
	}
	volume, err := requireFloat("order", obj, "volume")
	if err != nil {
		return err
	}
	cost, err := requireFloat("order", obj, "cost")
	if err != nil {
		return err
	}
	fee, err := requireFloat("order", obj, "fee")
	if err != nil {
		return err
	}
	price, err := requireFloat("order", obj, "price")
	if err != nil {
		return err
	}
	*o = Order{
		Status:    status,
		OrderType: orderType,
		Type:      typ,
		Pair:      ParseCurrencyPair(pair),
		Open:      time.Unix(open, 0),
		Close:     time.Unix(closed, 0),
		Volume:    volume,
		Cost:      cost,
		Fee:       fee,
		Price:     price,
	}
	return nil
}
