package service

import (
	"context"
	"strings"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
)

// MarketDataClient is the narrow capability contract with the external
// quote provider. client.YahooClient is the production implementation;
// tests substitute a stub.
type MarketDataClient interface {
	FetchQuote(ctx context.Context, symbol string) (*model.Quote, error)
	FetchDailyHistory(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error)
}

// QuoteService exposes current and historical prices. Stateless: every
// call re-queries the provider (see CachedQuoteService for the optional
// cached variant).
type QuoteService interface {
	GetCurrentPrice(ctx context.Context, symbol string) (*model.Quote, error)
	GetHistory(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error)
}

type QuoteServiceImpl struct {
	client MarketDataClient
}

func NewQuoteService(client MarketDataClient) QuoteService {
	return &QuoteServiceImpl{client: client}
}

func (s *QuoteServiceImpl) GetCurrentPrice(ctx context.Context, symbol string) (*model.Quote, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return s.client.FetchQuote(ctx, sym)
}

func (s *QuoteServiceImpl) GetHistory(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if rng == "" {
		rng = model.Range1mo
	}
	return s.client.FetchDailyHistory(ctx, sym, rng)
}

// NormalizeSymbol trims and uppercases a caller-supplied symbol.
// Anything left empty is a validation error, not a lookup failure.
func NormalizeSymbol(symbol string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return "", customerrors.InvalidInput("symbol must not be empty")
	}
	return sym, nil
}
