package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/antonholmquist/jason"
	"github.com/julienkabongo/openat/feed"
	"github.com/julienkabongo/openat/logger"
	"github.com/julienkabongo/openat/models"
)

const markets = `[
	{"pair":"BTC_USD","limit":{"min":0.0001,"max":25.0},"taker_fee":0.0025,"maker_fee":0.001},
	{"pair":"ETH_BTC","limit":{"min":0.001,"max":500.0},"taker_fee":0.002,"maker_fee":0.001},
	{"pair":"USDT_OMNI_BTC","limit":{"min":1.0,"max":100000.0},"taker_fee":0.001,"maker_fee":0.0005},
	{"pair":"LTCUSD","limit":{"min":0.01,"max":800.0},"taker_fee":0.003,"maker_fee":0.0015}
]`

const rates = `[
	{"pair":"BTC_USD","limit":{"min":0.0001,"max":25.0},"rate":42000.5,"miner_fee":0.0004},
	{"pair":"ETH_BTC","limit":{"min":0.001,"max":500.0},"rate":0.052,"miner_fee":0.001},
	{"pair":"USDT_OMNI_BTC","limit":{"min":1.0,"max":100000.0},"rate":0.000021,"miner_fee":0.5}
]`

const coins = `{
	"btc": {"name":"Bitcoin","symbol":"BTC","status":"available"},
	"eth": {"name":"Ether","symbol":"ETH","status":"available"},
	"xmr": {"name":"Monero","symbol":"XMR","status":"unavailable"}
}`

const ticker = `{
	"bid":{"price":41999.5,"amount":1.5,"time":1755734400},
	"ask":{"price":42000.5,"amount":0.75,"time":1755734401}
}`

const order = `{
	"status":"open","orderType":"limit","type":"buy","pair":"ETH_BTC",
	"open":1755734400,"close":0,"volume":12.5,"cost":0.65,"fee":0.0013,"price":0.052
}`

const receipt = `{
	"status":"pending",
	"deposit":"{\"txid\":\"8a6be3\",\"vout\":0}",
	"rate":"42000.5",
	"fee":null,
	"confirmations":3
}`

func main() {
	defer logger.Sync()

	store := feed.NewUsingConfigFunc(func(c *feed.Config) {
		c.CacheDuration = time.Minute
	})
	if err := store.UpdateMarkets([]byte(markets)); err != nil {
		fmt.Println(err)
		panic(err)
	}
	if err := store.UpdateRates([]byte(rates)); err != nil {
		fmt.Println(err)
		panic(err)
	}
	if err := store.UpdateCoins([]byte(coins)); err != nil {
		fmt.Println(err)
		panic(err)
	}

	pairs, err := store.CurrencyPairs()
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	for _, pair := range pairs {
		rate, err := store.Rate(pair.Base, pair.Quote)
		if err != nil {
			fmt.Println(err)
			continue
		}
		market, err := store.Market(pair.Base, pair.Quote)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s rate=%v taker_fee=%v\n", pair, rate, market.TakerFee)
	}

	listed, err := store.Coins()
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	fmt.Println("listed:", listed.Symbols())

	var tk models.Ticker
	if err := json.Unmarshal([]byte(ticker), &tk); err != nil {
		fmt.Println(err)
		panic(err)
	}
	fmt.Printf("BTC_USD bid %v / ask %v\n", tk.Bid.Price, tk.Ask.Price)

	var o models.Order
	if err := json.Unmarshal([]byte(order), &o); err != nil {
		fmt.Println(err)
		panic(err)
	}
	fmt.Printf("%s %s %s %v @ %v\n", o.Pair, o.Type, o.OrderType, o.Volume, o.Price)

	// A conversion receipt combines a status tag, an embedded hash and
	// numeric-or-null fields.
	obj, err := jason.NewObjectFromBytes([]byte(receipt))
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	tag, err := obj.GetString("status")
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	status, err := models.ParseStatus(tag)
	if err != nil {
		fmt.Println(err)
		panic(err)
	}

	raw, err := obj.GetString("deposit")
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	hash := models.Hash(raw)
	tree, err := hash.Tree()
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	deposit, err := tree.Object()
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	txid, err := deposit.GetString("txid")
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	vout := hash.Get("vout").Int()

	rate, err := models.NumericString(obj.Map()["rate"])
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	fee, err := models.NumericString(obj.Map()["fee"])
	if err != nil {
		fmt.Println(err)
		panic(err)
	}
	if _, err := models.NumericString(obj.Map()["confirmations"]); err != nil {
		// Bare numbers are not accepted in numeric-string position.
		fmt.Println(err)
	}

	fmt.Printf("deposit %s:%d is %s at rate %s, fee %s\n", txid, vout, status, rate, fee)
	logger.Get().Infof("decoded %d markets, %d coins, 1 receipt", len(pairs), len(listed))
}
