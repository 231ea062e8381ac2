package market

import (
	"context"
	"net/http"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubClient implements Client over the official Finnhub SDK.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) MarketNews(ctx context.Context) ([]Article, error) {
	res, httpRes, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, classify(httpRes, err)
	}
	return fromMarketNews(res), nil
}

func (c *FinnhubClient) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error) {
	res, httpRes, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, classify(httpRes, err)
	}
	return fromCompanyNews(res), nil
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (*float64, error) {
	res, httpRes, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, classify(httpRes, err)
	}
	if !res.HasC() {
		return nil, nil
	}
	price := float64(res.GetC())
	return &price, nil
}

// The SDK models carry every field as a pointer; the nil-safe getters turn
// absent fields into zero values so articles marshal cleanly.

func fromMarketNews(items []finnhub.MarketNews) []Article {
	articles := make([]Article, 0, len(items))
	for _, n := range items {
		articles = append(articles, Article{
			ID:       n.GetId(),
			Category: n.GetCategory(),
			Datetime: n.GetDatetime(),
			Headline: n.GetHeadline(),
			Image:    n.GetImage(),
			Related:  n.GetRelated(),
			Source:   n.GetSource(),
			Summary:  n.GetSummary(),
			URL:      n.GetUrl(),
		})
	}
	return articles
}

func fromCompanyNews(items []finnhub.CompanyNews) []Article {
	articles := make([]Article, 0, len(items))
	for _, n := range items {
		articles = append(articles, Article{
			ID:       n.GetId(),
			Category: n.GetCategory(),
			Datetime: n.GetDatetime(),
			Headline: n.GetHeadline(),
			Image:    n.GetImage(),
			Related:  n.GetRelated(),
			Source:   n.GetSource(),
			Summary:  n.GetSummary(),
			URL:      n.GetUrl(),
		})
	}
	return articles
}

// classify maps an SDK error to an UpstreamError, preserving the HTTP status
// when one was received. Transport and decode failures carry status 0.
func classify(httpRes *http.Response, err error) error {
	status := 0
	if httpRes != nil && httpRes.StatusCode >= http.StatusMultipleChoices {
		status = httpRes.StatusCode
	}
	return &UpstreamError{StatusCode: status, Message: err.Error()}
}
