package service

import (
	"context"
	"time"

	localCache "github.com/cblythe8/Stock-Crypto-Tracker/cache"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
)

// CachedQuoteService wraps a QuoteService with the shared in-process
// quote cache. This is a documented enhancement behind a config flag:
// with it disabled (the default) every lookup hits the provider, which
// is the contract the rest of the system assumes. Failures are never
// cached.
type CachedQuoteService struct {
	inner QuoteService
	ttl   time.Duration
}

func NewCachedQuoteService(inner QuoteService, ttl time.Duration) *CachedQuoteService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedQuoteService{inner: inner, ttl: ttl}
}

func (s *CachedQuoteService) GetCurrentPrice(ctx context.Context, symbol string) (*model.Quote, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	cacheKey := "quote_" + sym
	if cached, found := localCache.QuoteCache.Get(cacheKey); found {
		return cached.(*model.Quote), nil
	}

	quote, err := s.inner.GetCurrentPrice(ctx, sym)
	if err != nil {
		return nil, err
	}
	localCache.QuoteCache.Set(cacheKey, quote, s.ttl)
	return quote, nil
}

func (s *CachedQuoteService) GetHistory(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if rng == "" {
		rng = model.Range1mo
	}

	cacheKey := "history_" + sym + "_" + string(rng)
	if cached, found := localCache.QuoteCache.Get(cacheKey); found {
		return cached.(*model.HistoricalSeries), nil
	}

	series, err := s.inner.GetHistory(ctx, sym, rng)
	if err != nil {
		return nil, err
	}
	localCache.QuoteCache.Set(cacheKey, series, s.ttl)
	return series, nil
}
