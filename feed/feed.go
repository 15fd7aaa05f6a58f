package feed

import (
	"strings"
	"sync"
	"time"

	"github.com/Jeffail/gabs"
	"github.com/julienkabongo/openat/logger"
	"github.com/julienkabongo/openat/models"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Config tunes a Store.
type Config struct {
	// CacheDuration bounds how long market and coin snapshots stay readable
	// after the document that carried them was applied.
	CacheDuration time.Duration
}

// DefaultCacheDuration is used when a Config does not set one.
const DefaultCacheDuration = 30 * time.Second

// Store holds the latest decoded exchange metadata: market terms, conversion
// rates and coin listings. It does no I/O of its own; callers hand it raw
// payload bytes from whatever transport they run, and malformed entries
// inside an otherwise well-formed batch are logged and skipped.
type Store struct {
	c *Config

	markets *cache.Cache
	coins   *cache.Cache

	rateMap map[string]map[string]float64
	rateM   *sync.Mutex
}

// New builds a Store with default settings.
func New() *Store {
	return NewUsingConfigFunc(func(*Config) {})
}

// NewUsingConfigFunc builds a Store after letting f adjust the defaults.
func NewUsingConfigFunc(f func(*Config)) *Store {
	conf := &Config{
		CacheDuration: DefaultCacheDuration,
	}
	f(conf)
	return &Store{
		c:       conf,
		markets: cache.New(conf.CacheDuration, conf.CacheDuration),
		coins:   cache.New(conf.CacheDuration, conf.CacheDuration),
		rateMap: make(map[string]map[string]float64),
		rateM:   new(sync.Mutex),
	}
}

// UpdateMarkets applies a market-info array document. Entries that do not
// decode, or whose pair string carries no underscore, are skipped.
func (s *Store) UpdateMarkets(payload []byte) error {
	doc, err := gabs.ParseJSON(payload)
	if err != nil {
		return errors.Wrap(err, "failed to parse markets payload")
	}
	entries, err := doc.Children()
	if err != nil {
		return errors.Wrap(err, "failed to parse markets payload")
	}
	for _, entry := range entries {
		var market models.MarketInfo
		if err := market.UnmarshalJSON(entry.Bytes()); err != nil {
			logger.Get().Warnf("skipping market entry: %v", err)
			continue
		}
		if market.Pair == (models.CurrencyPair{}) {
			logger.Get().Warnf("skipping market entry with unreadable pair %v", entry.Path("pair").Data())
			continue
		}
		s.markets.Set(market.Pair.String(), market, cache.DefaultExpiration)
	}
	return nil
}

// UpdateRates applies an exchange-info array document, refreshing the
// base to quote conversion rates. Rates do not expire; each batch overlays
// the previous one.
func (s *Store) UpdateRates(payload []byte) error {
	doc, err := gabs.ParseJSON(payload)
	if err != nil {
		return errors.Wrap(err, "failed to parse rates payload")
	}
	entries, err := doc.Children()
	if err != nil {
		return errors.Wrap(err, "failed to parse rates payload")
	}

	s.rateM.Lock()
	defer s.rateM.Unlock()
	for _, entry := range entries {
		var exchange models.ExchangeInfo
		if err := exchange.UnmarshalJSON(entry.Bytes()); err != nil {
			logger.Get().Warnf("skipping rate entry: %v", err)
			continue
		}
		if exchange.Pair == (models.CurrencyPair{}) {
			logger.Get().Warnf("skipping rate entry with unreadable pair %v", entry.Path("pair").Data())
			continue
		}
		quotes, ok := s.rateMap[exchange.Pair.Base]
		if !ok {
			quotes = make(map[string]float64)
			s.rateMap[exchange.Pair.Base] = quotes
		}
		quotes[exchange.Pair.Quote] = exchange.Rate
	}
	return nil
}

// UpdateCoins applies a symbol-keyed coin listing document.
func (s *Store) UpdateCoins(payload []byte) error {
	doc, err := gabs.ParseJSON(payload)
	if err != nil {
		return errors.Wrap(err, "failed to parse coins payload")
	}
	entries, err := doc.ChildrenMap()
	if err != nil {
		return errors.Wrap(err, "failed to parse coins payload")
	}
	for symbol, entry := range entries {
		var coin models.Coin
		if err := coin.UnmarshalJSON(entry.Bytes()); err != nil {
			logger.Get().Warnf("skipping coin entry %s: %v", symbol, err)
			continue
		}
		s.coins.Set(strings.ToUpper(symbol), coin, cache.DefaultExpiration)
	}
	return nil
}

// Market returns the stored terms for the trading/settlement market.
func (s *Store) Market(trading string, settlement string) (models.MarketInfo, error) {
	key := models.NewCurrencyPair(trading, settlement).String()
	v, ok := s.markets.Get(key)
	if !ok {
		return models.MarketInfo{}, errors.Errorf("no market info for %s", key)
	}
	return v.(models.MarketInfo), nil
}

// Rate returns the last applied conversion rate for trading against
// settlement.
func (s *Store) Rate(trading string, settlement string) (float64, error) {
	pair := models.NewCurrencyPair(trading, settlement)

	s.rateM.Lock()
	defer s.rateM.Unlock()
	quotes, ok := s.rateMap[pair.Base]
	if !ok {
		return 0, errors.Errorf("no rate for %s", pair.String())
	}
	rate, ok := quotes[pair.Quote]
	if !ok {
		return 0, errors.Errorf("no rate for %s", pair.String())
	}
	return rate, nil
}

// Coin returns the stored listing for symbol.
func (s *Store) Coin(symbol string) (models.Coin, error) {
	v, ok := s.coins.Get(strings.ToUpper(symbol))
	if !ok {
		return models.Coin{}, errors.Errorf("no coin listed as %s", strings.ToUpper(symbol))
	}
	return v.(models.Coin), nil
}

// Coins returns every listed coin still inside its cache window.
func (s *Store) Coins() (models.CoinMap, error) {
	items := s.coins.Items()
	if len(items) == 0 {
		return nil, errors.New("no coins listed")
	}
	all := make(models.CoinMap, len(items))
	for symbol, item := range items {
		all[symbol] = item.Object.(models.Coin)
	}
	return all, nil
}

// CurrencyPairs returns the pair of every market still inside its cache
// window.
func (s *Store) CurrencyPairs() ([]models.CurrencyPair, error) {
	items := s.markets.Items()
	if len(items) == 0 {
		return nil, errors.New("no markets stored")
	}
	pairs := make([]models.CurrencyPair, 0, len(items))
	for key := range items {
		pairs = append(pairs, models.ParseCurrencyPair(key))
	}
	return pairs, nil
}
