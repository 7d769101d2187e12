package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/middleware"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/util"

	"github.com/go-resty/resty/v2"
)

const defaultChartBaseUrl = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooClient talks to the Yahoo Finance v8 chart API. One client per
// process; it holds no per-request state beyond the resty transport.
type YahooClient struct {
	client *resty.Client
}

func NewYahooClient(cfg *model.EnvConfig) *YahooClient {
	baseUrl := defaultChartBaseUrl
	timeout := 10 * time.Second
	if cfg != nil {
		if cfg.MarketBaseUrl != "" {
			baseUrl = cfg.MarketBaseUrl
		}
		if cfg.RequestTimeoutSeconds > 0 {
			timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
		}
	}

	client := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{client: client}
}

// FetchQuote returns the latest known price for symbol.
func (y *YahooClient) FetchQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	result, err := y.fetchChart(ctx, symbol, model.Range1d)
	if err != nil {
		return nil, err
	}

	price := result.Meta.RegularMarketPrice
	if price == 0 {
		// Some instruments report only bar data; fall back to the last close.
		closes := closesOf(result)
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] > 0 {
				price = closes[i]
				break
			}
		}
	}
	if price <= 0 {
		return nil, customerrors.SymbolNotFound(symbol)
	}

	quoted := result.Meta.Symbol
	if quoted == "" {
		quoted = symbol
	}
	currency := result.Meta.Currency
	if currency == "" {
		currency = "USD"
	}
	ts := time.Now().UTC()
	if result.Meta.RegularMarketTime > 0 {
		ts = time.Unix(result.Meta.RegularMarketTime, 0).UTC()
	}

	return &model.Quote{
		Symbol:    quoted,
		Name:      result.Meta.ShortName,
		Price:     price,
		Currency:  currency,
		Timestamp: ts,
	}, nil
}

// FetchDailyHistory returns daily closes for symbol over the named
// range, oldest first. A known symbol with no bars in the window yields
// an empty series, not an error.
func (y *YahooClient) FetchDailyHistory(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error) {
	result, err := y.fetchChart(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}

	quoted := result.Meta.Symbol
	if quoted == "" {
		quoted = symbol
	}
	series := &model.HistoricalSeries{
		Symbol: quoted,
		Range:  rng,
		Points: make([]model.PricePoint, 0, len(result.Timestamp)),
	}

	closes := closesOf(result)
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] <= 0 {
			continue // null bar (holiday or halted session)
		}
		series.Points = append(series.Points, model.PricePoint{
			Date:  util.FormatBarDate(ts),
			Price: util.RoundToTwo(closes[i]),
		})
	}

	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Date < series.Points[j].Date
	})

	return series, nil
}

func (y *YahooClient) fetchChart(ctx context.Context, symbol string, rng model.YahooTimeRange) (*model.ChartResult, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(rng),
			"interval": string(model.Range1d),
		}).
		Get("/" + url.PathEscape(symbol))

	if err != nil {
		return nil, customerrors.ProviderUnavailable(symbol, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, customerrors.SymbolNotFound(symbol)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, customerrors.ProviderUnavailable(symbol, fmt.Errorf("rate limited (status %d)", resp.StatusCode()))
	case !resp.IsSuccess():
		return nil, customerrors.ProviderUnavailable(symbol, fmt.Errorf("status %d", resp.StatusCode()))
	}

	var chart model.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		return nil, customerrors.ProviderUnavailable(symbol, fmt.Errorf("chart decode error: %w", err))
	}

	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, customerrors.SymbolNotFound(symbol)
		}
		return nil, customerrors.ProviderUnavailable(symbol, fmt.Errorf("chart api error: %s", chart.Chart.Error.Description))
	}
	if len(chart.Chart.Result) == 0 {
		return nil, customerrors.SymbolNotFound(symbol)
	}

	return &chart.Chart.Result[0], nil
}

func closesOf(result *model.ChartResult) []float64 {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}
	return result.Indicators.Quote[0].Close
}
