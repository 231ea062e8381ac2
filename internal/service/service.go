package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sapirguy-gs/Stocks-Status/internal/cache"
	"github.com/sapirguy-gs/Stocks-Status/pkg/market"
)

// ErrNotConfigured means no upstream API key is set. Requests that can't be
// served from cache fail with it until the configuration is fixed.
var ErrNotConfigured = errors.New("market data API key is not configured")

// companyNewsWindow is the rolling date range used for company news fetches.
const companyNewsWindow = 7 * 24 * time.Hour

const (
	SourceCache = "cache"
	SourceAPI   = "api"
)

// SymbolQuote is the assembled answer for one symbol: current price, recent
// news, and whether anything had to be fetched from the upstream.
type SymbolQuote struct {
	Symbol string           `json:"symbol"`
	Price  *float64         `json:"price"`
	News   []market.Article `json:"news"`
	Source string           `json:"source"`
}

// Service decides, per request, whether to answer from the cache store or to
// refresh from the upstream market data client.
type Service struct {
	store  *cache.Store
	client market.Client
	now    func() time.Time
}

// New builds a Service. client may be nil when no API key is configured;
// cached data is still served but refreshes fail with ErrNotConfigured.
func New(store *cache.Store, client market.Client) *Service {
	return &Service{
		store:  store,
		client: client,
		now:    time.Now,
	}
}

// GeneralNews returns the latest general market news, refreshing the cache
// from the upstream when the cached copy is stale.
func (s *Service) GeneralNews(ctx context.Context) ([]market.Article, error) {
	if e := s.store.General(); s.store.Valid(e) {
		if articles, ok := e.Data.([]market.Article); ok {
			return nonNil(articles), nil
		}
	}

	if s.client == nil {
		return nil, ErrNotConfigured
	}

	articles, err := s.client.MarketNews(ctx)
	if err != nil {
		return nil, err
	}
	s.store.SetGeneral(articles)
	return nonNil(articles), nil
}

// SymbolNews returns company news and the current price for a symbol. News
// and price are resolved independently: each is served from its own cache
// entry when fresh and refreshed on its own otherwise, so a failure on one
// never undoes a cache write the other already made. Source is "api" when at
// least one of the two went to the upstream.
func (s *Service) SymbolNews(ctx context.Context, symbol string) (*SymbolQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	fetched := false

	var news []market.Article
	if e := s.store.SymbolNews(symbol); s.store.Valid(e) {
		news, _ = e.Data.([]market.Article)
	} else {
		if s.client == nil {
			return nil, ErrNotConfigured
		}
		to := s.now()
		from := to.Add(-companyNewsWindow)
		got, err := s.client.CompanyNews(ctx, symbol, from, to)
		if err != nil {
			return nil, err
		}
		s.store.SetSymbolNews(symbol, got)
		news = got
		fetched = true
	}

	var price *float64
	if e := s.store.SymbolPrice(symbol); s.store.Valid(e) {
		price, _ = e.Data.(*float64)
	} else {
		if s.client == nil {
			return nil, ErrNotConfigured
		}
		got, err := s.client.Quote(ctx, symbol)
		if err != nil {
			return nil, err
		}
		s.store.SetSymbolPrice(symbol, got)
		price = got
		fetched = true
	}

	source := SourceCache
	if fetched {
		source = SourceAPI
	}

	return &SymbolQuote{
		Symbol: symbol,
		Price:  price,
		News:   nonNil(news),
		Source: source,
	}, nil
}

// nonNil coerces a missing or malformed news payload to an empty list so the
// client always receives a JSON array.
func nonNil(articles []market.Article) []market.Article {
	if articles == nil {
		return []market.Article{}
	}
	return articles
}
