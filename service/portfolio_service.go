package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/validator"
)

// PortfolioService values a caller-supplied holdings list against live
// prices. Nothing is stored; the report is derived per call.
type PortfolioService interface {
	Valuate(ctx context.Context, holdings []model.Holding) (*model.PortfolioReport, error)
}

type PortfolioServiceImpl struct {
	quotes QuoteService
}

func NewPortfolioService(quotes QuoteService) PortfolioService {
	return &PortfolioServiceImpl{quotes: quotes}
}

// Valuate computes quantity * price per holding plus the total. Any
// single lookup failure fails the whole valuation: no partial reports.
// Positions keep the input order.
func (s *PortfolioServiceImpl) Valuate(ctx context.Context, holdings []model.Holding) (*model.PortfolioReport, error) {
	seen := make(map[string]bool, len(holdings))
	for i := range holdings {
		if err := validator.ValidateHolding(&holdings[i]); err != nil {
			return nil, err
		}
		sym, err := NormalizeSymbol(holdings[i].Symbol)
		if err != nil {
			return nil, err
		}
		if seen[sym] {
			return nil, customerrors.InvalidInput(fmt.Sprintf("duplicate holding %q", sym))
		}
		seen[sym] = true
	}

	report := &model.PortfolioReport{
		Positions: make([]model.Position, 0, len(holdings)),
		AsOf:      time.Now().UTC(),
	}

	for _, h := range holdings {
		quote, err := s.quotes.GetCurrentPrice(ctx, h.Symbol)
		if err != nil {
			return nil, fmt.Errorf("valuate %s: %w", h.Symbol, err)
		}

		value := h.Quantity * quote.Price
		report.Positions = append(report.Positions, model.Position{
			Symbol:   quote.Symbol,
			Name:     quote.Name,
			Quantity: h.Quantity,
			Price:    quote.Price,
			Value:    value,
			Currency: quote.Currency,
		})
		report.TotalValue += value
	}

	return report, nil
}
