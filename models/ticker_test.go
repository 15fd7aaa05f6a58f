package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationMarshal(t *testing.T) {
	q := Quotation{Price: 42000.5, Amount: 0.25, Time: time.Unix(1136239445, 0)}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":42000.5,"amount":0.25,"time":1136239445}`, string(data))
}

func TestQuotationUnmarshal(t *testing.T) {
	var q Quotation
	require.NoError(t, json.Unmarshal([]byte(`{"price":42000.5,"amount":0.25,"time":1136239445}`), &q))
	assert.Equal(t, 42000.5, q.Price)
	assert.Equal(t, 0.25, q.Amount)
	assert.Equal(t, int64(1136239445), q.Time.Unix())
}

func TestQuotationSubsecondTruncated(t *testing.T) {
	orig := Quotation{Price: 1, Amount: 2, Time: time.Unix(1136239445, 999999999)}
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Quotation
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, time.Unix(1136239445, 0), back.Time)
}

func TestQuotationUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		key     string
		missing bool
	}{
		{"missing time", `{"price":1.0,"amount":2.0}`, "time", true},
		{"fractional time", `{"price":1.0,"amount":2.0,"time":1.5}`, "time", false},
		{"price as string", `{"price":"1.0","amount":2.0,"time":3}`, "price", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quotation
			err := json.Unmarshal([]byte(tt.in), &q)
			require.Error(t, err)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "quotation", derr.Type)
			assert.Equal(t, tt.key, derr.Key)
			assert.Equal(t, tt.missing, derr.Missing)
		})
	}
}

func TestTickerRoundTrip(t *testing.T) {
	orig := Ticker{
		Bid: Quotation{Price: 41999.5, Amount: 1.5, Time: time.Unix(1136239445, 0)},
		Ask: Quotation{Price: 42000.5, Amount: 0.75, Time: time.Unix(1136239446, 0)},
	}
	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"bid":{"price":41999.5,"amount":1.5,"time":1136239445},
		"ask":{"price":42000.5,"amount":0.75,"time":1136239446}
	}`, string(data))

	var back Ticker
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestTickerUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		key     string
		missing bool
	}{
		{"missing ask", `{"bid":{"price":1.0,"amount":2.0,"time":3}}`, "ask", true},
		{"bid not an object", `{"bid":5,"ask":{"price":1.0,"amount":2.0,"time":3}}`, "bid", false},
		{"nested amount missing", `{"bid":{"price":1.0,"time":3},"ask":{"price":1.0,"amount":2.0,"time":3}}`, "amount", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tk Ticker
			err := json.Unmarshal([]byte(tt.in), &tk)
			require.Error(t, err)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "ticker", derr.Type)
			assert.Equal(t, tt.key, derr.Key)
			assert.Equal(t, tt.missing, derr.Missing)
		})
	}
}
