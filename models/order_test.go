package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMarshal(t *testing.T) {
	o := Order{
		Status:    "open",
		OrderType: "limit",
		Type:      "buy",
		Pair:      NewCurrencyPair("ETH", "BTC"),
		Open:      time.Unix(1492681400, 0),
		Close:     time.Unix(1492681700, 0),
		Volume:    12.5,
		Cost:      0.65,
		Fee:       0.0013,
		Price:     0.052,
	}
	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status":"open",
		"orderType":"limit",
		"type":"buy",
		"pair":"ETH_BTC",
		"open":1492681400,
		"close":1492681700,
		"volume":12.5,
		"cost":0.65,
		"fee":0.0013,
		"price":0.052
	}`, string(data))
}

func TestOrderUnmarshal(t *testing.T) {
	raw := `{
		"status":"closed",
		"orderType":"market",
		"type":"sell",
		"pair":"usdt_omni_btc",
		"open":1492681400,
		"close":1492681700,
		"volume":100.0,
		"cost":0.0021,
		"fee":0.0000042,
		"price":0.000021
	}`
	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, "closed", o.Status)
	assert.Equal(t, "market", o.OrderType)
	assert.Equal(t, "sell", o.Type)
	assert.Equal(t, NewCurrencyPair("USDT_OMNI", "BTC"), o.Pair)
	assert.Equal(t, int64(1492681400), o.Open.Unix())
	assert.Equal(t, int64(1492681700), o.Close.Unix())
	assert.Equal(t, 100.0, o.Volume)
}

func TestOrderRoundTrip(t *testing.T) {
	orig := Order{
		Status:    "cancelled",
		OrderType: "limit",
		Type:      "sell",
		Pair:      NewCurrencyPair("BTC", "USD"),
		Open:      time.Unix(1492681400, 0),
		Close:     time.Unix(1492681700, 0),
		Volume:    1,
		Cost:      42000,
		Fee:       10.5,
		Price:     42000,
	}
	data, err := json.Marshal(orig)
	require.NoError(t, err)
	var back Order
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestOrderUnmarshalErrors(t *testing.T) {
	valid := map[string]interface{}{
		"status":    "open",
		"orderType": "limit",
		"type":      "buy",
		"pair":      "ETH_BTC",
		"open":      1492681400,
		"close":     1492681700,
		"volume":    12.5,
		"cost":      0.65,
		"fee":       0.0013,
		"price":     0.052,
	}
	for _, key := range []string{"status", "orderType", "type", "pair", "open", "close", "volume", "cost", "fee", "price"} {
		t.Run("missing "+key, func(t *testing.T) {
			partial := make(map[string]interface{}, len(valid))
			for k, v := range valid {
				if k != key {
					partial[k] = v
				}
			}
			data, err := json.Marshal(partial)
			require.NoError(t, err)

			var o Order
			err = json.Unmarshal(data, &o)
			require.Error(t, err)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "order", derr.Type)
			assert.Equal(t, key, derr.Key)
			assert.True(t, derr.Missing)
		})
	}
}
