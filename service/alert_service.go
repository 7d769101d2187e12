package service

import (
	"context"
	"time"

	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/validator"
)

// AlertService evaluates target-price rules against live prices. Each
// evaluation is stateless: alerts are never marked or mutated.
type AlertService interface {
	CheckAlerts(ctx context.Context, alerts []model.AlertSpec) (*model.AlertReport, error)
}

type AlertServiceImpl struct {
	quotes QuoteService
}

func NewAlertService(quotes QuoteService) AlertService {
	return &AlertServiceImpl{quotes: quotes}
}

// CheckAlerts returns the alerts currently satisfied, in input order.
// A failed price lookup never aborts the remaining checks; the alert is
// reported under Failed so callers can tell "not triggered" apart from
// "could not check". Both comparisons are inclusive.
func (s *AlertServiceImpl) CheckAlerts(ctx context.Context, alerts []model.AlertSpec) (*model.AlertReport, error) {
	for i := range alerts {
		if err := validator.ValidateAlertSpec(&alerts[i]); err != nil {
			return nil, err
		}
	}

	report := &model.AlertReport{
		Triggered: make([]model.TriggeredAlert, 0, len(alerts)),
		CheckedAt: time.Now().UTC(),
	}

	for _, a := range alerts {
		quote, err := s.quotes.GetCurrentPrice(ctx, a.Symbol)
		if err != nil {
			report.Failed = append(report.Failed, model.FailedCheck{
				Symbol:    a.Symbol,
				Target:    a.Target,
				Direction: a.Direction,
				Error:     err.Error(),
			})
			continue
		}

		triggered := false
		switch a.Direction {
		case model.AlertAbove:
			triggered = quote.Price >= a.Target
		case model.AlertBelow:
			triggered = quote.Price <= a.Target
		}

		if triggered {
			report.Triggered = append(report.Triggered, model.TriggeredAlert{
				Symbol:    a.Symbol,
				Name:      quote.Name,
				Target:    a.Target,
				Direction: a.Direction,
				Current:   quote.Price,
			})
		}
	}

	return report, nil
}
