package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinRoundTrip(t *testing.T) {
	orig := Coin{Name: "Bitcoin", Symbol: "BTC", Status: "available"}
	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bitcoin","symbol":"BTC","status":"available"}`, string(data))

	var back Coin
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestCoinUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		key     string
		missing bool
	}{
		{"missing symbol", `{"name":"Bitcoin","status":"available"}`, "symbol", true},
		{"name not a string", `{"name":1,"symbol":"BTC","status":"available"}`, "name", false},
		{"status null", `{"name":"Bitcoin","symbol":"BTC","status":null}`, "status", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coin
			err := json.Unmarshal([]byte(tt.in), &c)
			require.Error(t, err)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "coin", derr.Type)
			assert.Equal(t, tt.key, derr.Key)
			assert.Equal(t, tt.missing, derr.Missing)
		})
	}
}

func TestCoinMapUnmarshal(t *testing.T) {
	raw := `{
		"BTC": {"name":"Bitcoin","symbol":"BTC","status":"available"},
		"ETH": {"name":"Ether","symbol":"ETH","status":"available"},
		"XMR": {"name":"Monero","symbol":"XMR","status":"unavailable"}
	}`
	var m CoinMap
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Len(t, m, 3)
	assert.Equal(t, "Monero", m["XMR"].Name)
	assert.Equal(t, []string{"BTC", "ETH", "XMR"}, m.Symbols())
}

func TestCoinMapUnmarshalBadEntry(t *testing.T) {
	raw := `{"BTC": {"name":"Bitcoin","symbol":"BTC"}}`
	var m CoinMap
	err := json.Unmarshal([]byte(raw), &m)
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "status", derr.Key)
}

func TestCoinMapSymbolsEmpty(t *testing.T) {
	assert.Empty(t, CoinMap{}.Symbols())
}
