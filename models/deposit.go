package models

import (
	"encoding/json"

	"github.com/antonholmquist/jason"
)

// DepositLimit bounds a deposit amount. Nothing orders min against max here;
// records hold whatever the exchange sent.
type DepositLimit struct {
	Min float64
	Max float64
}

func NewDepositLimit(min float64, max float64) *DepositLimit {
	return &DepositLimit{
		Min: min,
		Max: max,
	}
}

func (d DepositLimit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}{d.Min, d.Max})
}

func (d *DepositLimit) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("deposit_limit", data)
	if err != nil {
		return err
	}
	lim, err := decodeDepositLimit("deposit_limit", obj)
	if err != nil {
		return err
	}
	*d = lim
	return nil
}

// decodeDepositLimit reads the {min,max} keys out of obj. Composite
// documents nest the same shape under a "limit" key and reuse this path.
func decodeDepositLimit(typ string, obj *jason.Object) (DepositLimit, error) {
	min, err := requireFloat(typ, obj, "min")
	if err != nil {
		return DepositLimit{}, err
	}
	max, err := requireFloat(typ, obj, "max")
	if err != nil {
		return DepositLimit{}, err
	}
	return DepositLimit{Min: min, Max: max}, nil
}

// DepositInfo describes one deposit channel: its bounds, the fee withheld,
// and the currency and method it applies to.
type DepositInfo struct {
	Limit    DepositLimit
	Fee      float64
	Currency string
	Method   string
}

func (d DepositInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Limit    DepositLimit `json:"limit"`
		Fee      float64      `json:"fee"`
		Currency string       `json:"currency"`
		Method   string       `json:"method"`
	}{d.Limit, d.Fee, d.Currency, d.Method})
}

func (d *DepositInfo) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("deposit_info", data)
	if err != nil {
		return err
	}
	limObj, err := requireObject("deposit_info", obj, "limit")
	if err != nil {
		return err
	}
	limit, err := decodeDepositLimit("deposit_info", limObj)
	if err != nil {
		return err
	}
	fee, err := requireFloat("deposit_info", obj, "fee")
	if err != nil {
		return err
	}
	currency, err := requireString("deposit_info", obj, "currency")
	if err != nil {
		return err
	}
	method, err := requireString("deposit_info", obj, "method")
	if err != nil {
		return err
	}
	*d = DepositInfo{Limit: limit, Fee: fee, Currency: currency, Method: method}
	return nil
}
