package market

import (
	"context"
	"time"
)

// Article is a news item as served by the upstream API. Field names and
// JSON keys mirror the upstream payload so responses pass through unchanged.
type Article struct {
	ID       int64  `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Image    string `json:"image,omitempty"`
	Related  string `json:"related,omitempty"`
	Source   string `json:"source"`
	Summary  string `json:"summary,omitempty"`
	URL      string `json:"url"`
}

// Client is a market data source providing news and quotes.
type Client interface {
	// MarketNews returns the latest general market news.
	MarketNews(ctx context.Context) ([]Article, error)

	// CompanyNews returns news for a symbol within [from, to] (calendar dates).
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error)

	// Quote returns the current price for a symbol, or nil if the upstream
	// did not report one.
	Quote(ctx context.Context, symbol string) (*float64, error)
}
