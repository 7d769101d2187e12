package service

import (
	"context"
	"fmt"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/util"
)

// ChartService produces chart-ready series. Rendering is external; the
// only contract here is one ordered series per symbol, optionally
// normalized to percent change from the first data point so different
// price scales can share one chart.
type ChartService interface {
	Compare(ctx context.Context, symbols []string, rng model.YahooTimeRange, normalize bool) ([]model.HistoricalSeries, error)
}

type ChartServiceImpl struct {
	quotes QuoteService
}

func NewChartService(quotes QuoteService) ChartService {
	return &ChartServiceImpl{quotes: quotes}
}

func (s *ChartServiceImpl) Compare(ctx context.Context, symbols []string, rng model.YahooTimeRange, normalize bool) ([]model.HistoricalSeries, error) {
	if len(symbols) == 0 {
		return nil, customerrors.InvalidInput("at least one symbol is required")
	}

	out := make([]model.HistoricalSeries, 0, len(symbols))
	for _, sym := range symbols {
		series, err := s.quotes.GetHistory(ctx, sym, rng)
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", sym, err)
		}
		if normalize {
			out = append(out, normalizeToPercent(*series))
		} else {
			out = append(out, *series)
		}
	}

	return out, nil
}

// normalizeToPercent rescales a series to percent change from its first
// point. Empty series pass through unchanged.
func normalizeToPercent(s model.HistoricalSeries) model.HistoricalSeries {
	if len(s.Points) == 0 || s.Points[0].Price <= 0 {
		return s
	}

	base := s.Points[0].Price
	points := make([]model.PricePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = model.PricePoint{
			Date:  p.Date,
			Price: util.RoundToTwo((p.Price/base - 1) * 100),
		}
	}

	s.Points = points
	s.Normalized = true
	return s
}
