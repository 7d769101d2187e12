package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
)

// stubQuoteService serves fixed prices per symbol and lets single
// symbols fail with a chosen error.
type stubQuoteService struct {
	prices map[string]float64
	errs   map[string]error
	calls  []string
}

func (s *stubQuoteService) GetCurrentPrice(_ context.Context, symbol string) (*model.Quote, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	s.calls = append(s.calls, sym)
	if err, ok := s.errs[sym]; ok {
		return nil, err
	}
	price, ok := s.prices[sym]
	if !ok {
		return nil, customerrors.SymbolNotFound(sym)
	}
	return &model.Quote{Symbol: sym, Price: price, Currency: "USD"}, nil
}

func (s *stubQuoteService) GetHistory(_ context.Context, symbol string, rng model.YahooTimeRange) (*model.HistoricalSeries, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if err, ok := s.errs[sym]; ok {
		return nil, err
	}
	return &model.HistoricalSeries{Symbol: sym, Range: rng}, nil
}

func TestValuateTotalsAndOrder(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{
		"AAPL":    150,
		"MSFT":    400,
		"BTC-USD": 60000,
	}}
	svc := NewPortfolioService(stub)

	holdings := []model.Holding{
		{Symbol: "AAPL", Quantity: 10},
		{Symbol: "MSFT", Quantity: 5},
		{Symbol: "BTC-USD", Quantity: 0.5},
	}
	report, err := svc.Valuate(context.Background(), holdings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTotal := 10*150.0 + 5*400.0 + 0.5*60000.0
	if report.TotalValue != wantTotal {
		t.Errorf("expected total %v, got %v", wantTotal, report.TotalValue)
	}

	wantOrder := []string{"AAPL", "MSFT", "BTC-USD"}
	if len(report.Positions) != len(wantOrder) {
		t.Fatalf("expected %d positions, got %d", len(wantOrder), len(report.Positions))
	}
	for i, sym := range wantOrder {
		if report.Positions[i].Symbol != sym {
			t.Errorf("position %d: expected %s, got %s", i, sym, report.Positions[i].Symbol)
		}
	}
	if report.Positions[2].Value != 30000 {
		t.Errorf("expected BTC-USD value 30000, got %v", report.Positions[2].Value)
	}
}

func TestValuateEmptyHoldings(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{}}
	svc := NewPortfolioService(stub)

	report, err := svc.Valuate(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalValue != 0 {
		t.Errorf("expected total 0, got %v", report.TotalValue)
	}
	if len(report.Positions) != 0 {
		t.Errorf("expected 0 positions, got %d", len(report.Positions))
	}
	if len(stub.calls) != 0 {
		t.Errorf("expected no provider calls, got %d", len(stub.calls))
	}
}

func TestValuateAbortsOnLookupFailure(t *testing.T) {
	stub := &stubQuoteService{
		prices: map[string]float64{"AAPL": 150},
		errs:   map[string]error{"MSFT": customerrors.ProviderUnavailable("MSFT", errors.New("timeout"))},
	}
	svc := NewPortfolioService(stub)

	holdings := []model.Holding{
		{Symbol: "AAPL", Quantity: 10},
		{Symbol: "MSFT", Quantity: 5},
	}
	report, err := svc.Valuate(context.Background(), holdings)
	if report != nil {
		t.Error("expected no partial report on failure")
	}
	if !errors.Is(err, customerrors.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestValuateInvalidInput(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{"AAPL": 150}}
	svc := NewPortfolioService(stub)

	tests := []struct {
		name     string
		holdings []model.Holding
	}{
		{
			name:     "negative quantity",
			holdings: []model.Holding{{Symbol: "AAPL", Quantity: -1}},
		},
		{
			name:     "empty symbol",
			holdings: []model.Holding{{Symbol: "  ", Quantity: 1}},
		},
		{
			name: "duplicate symbol",
			holdings: []model.Holding{
				{Symbol: "AAPL", Quantity: 1},
				{Symbol: "aapl", Quantity: 2},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Valuate(context.Background(), tc.holdings)
			if !errors.Is(err, customerrors.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if len(stub.calls) != 0 {
		t.Errorf("validation must run before any provider call, got %d calls", len(stub.calls))
	}
}

func TestValuateZeroQuantityAllowed(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{"AAPL": 150}}
	svc := NewPortfolioService(stub)

	report, err := svc.Valuate(context.Background(), []model.Holding{{Symbol: "AAPL", Quantity: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalValue != 0 {
		t.Errorf("expected total 0, got %v", report.TotalValue)
	}
}
