package models

import "encoding/json"

// ExchangeInfo is the quoted terms for converting one currency into another:
// the pair, the deposit bounds, the current rate and the miner fee withheld
// from the proceeds.
type ExchangeInfo struct {
	Pair     CurrencyPair
	Limit    DepositLimit
	Rate     float64
	MinerFee float64
}

func (e ExchangeInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pair     string       `json:"pair"`
		Limit    DepositLimit `json:"limit"`
		Rate     float64      `json:"rate"`
		MinerFee float64      `json:"miner_fee"`
	}{e.Pair.String(), e.Limit, e.Rate, e.MinerFee})
}

// UnmarshalJSON decodes the flat wire object. The pair travels as a single
// BASE_QUOTE string; a pair string with no underscore leaves the zero pair
// in place rather than failing.
func (e *ExchangeInfo) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("exchange_info", data)
	if err != nil {
		return err
	}
	limObj, err := requireObject("exchange_info", obj, "limit")
	if err != nil {
		return err
	}
	limit, err := decodeDepositLimit("exchange_info", limObj)
	if err != nil {
		return err
	}
	rate, err := requireFloat("exchange_info", obj, "rate")
	if err != nil {
		return err
	}
	minerFee, err := requireFloat("exchange_info", obj, "miner_fee")
	if err != nil {
		return err
	}
	pair, err := requireString("exchange_info", obj, "pair")
	if err != nil {
		return err
	}
	*e = ExchangeInfo{
		Pair:     ParseCurrencyPair(pair),
		Limit:    limit,
		Rate:     rate,
		MinerFee: minerFee,
	}
	return nil
}

// MarketInfo is the standing terms of one market: the pair, its limits and
// the maker/taker fee schedule.
type MarketInfo struct {
	Pair     CurrencyPair
	Limit    DepositLimit
	MakerFee float64
	TakerFee float64
}

func (m MarketInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pair     string       `json:"pair"`
		Limit    DepositLimit `json:"limit"`
		TakerFee float64      `json:"taker_fee"`
		MakerFee float64      `json:"maker_fee"`
	}{m.Pair.String(), m.Limit, m.TakerFee, m.MakerFee})
}

// UnmarshalJSON decodes the flat wire object; pair handling matches
// ExchangeInfo.
func (m *MarketInfo) UnmarshalJSON(data []byte) error {
	obj, err := objectDocument("market_info", data)
	if err != nil {
		return err
	}
	limObj, err := requireObject("market_info", obj, "limit")
	if err != nil {
		return err
	}
	limit, err := decodeDepositLimit("market_info", limObj)
	if err != nil {
		return err
	}
	makerFee, err := requireFloat("market_info", obj, "maker_fee")
	if err != nil {
		return err
	}
	takerFee, err := requireFloat("market_info", obj, "taker_fee")
	if err != nil {
		return err
	}
	pair, err := requireString("market_info", obj, "pair")
	if err != nil {
		return err
	}
	*m = MarketInfo{
		Pair:     ParseCurrencyPair(pair),
		Limit:    limit,
		MakerFee: makerFee,
		TakerFee: takerFee,
	}
	return nil
}
