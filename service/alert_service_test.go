package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
)

func TestCheckAlertsDirections(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		target    float64
		direction model.AlertDirection
		triggered bool
	}{
		{"above - triggered", 210, 200, model.AlertAbove, true},
		{"above - not triggered", 190, 200, model.AlertAbove, false},
		{"above - boundary inclusive", 200, 200, model.AlertAbove, true},
		{"below - triggered", 90, 100, model.AlertBelow, true},
		{"below - not triggered", 110, 100, model.AlertBelow, false},
		{"below - boundary inclusive", 100, 100, model.AlertBelow, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubQuoteService{prices: map[string]float64{"AAPL": tc.price}}
			svc := NewAlertService(stub)

			report, err := svc.CheckAlerts(context.Background(), []model.AlertSpec{
				{Symbol: "AAPL", Target: tc.target, Direction: tc.direction},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.triggered {
				if len(report.Triggered) != 1 {
					t.Fatalf("expected 1 triggered alert, got %d", len(report.Triggered))
				}
				if report.Triggered[0].Current != tc.price {
					t.Errorf("expected current %v, got %v", tc.price, report.Triggered[0].Current)
				}
			} else if len(report.Triggered) != 0 {
				t.Errorf("expected no triggered alerts, got %d", len(report.Triggered))
			}
		})
	}
}

func TestCheckAlertsPreservesOrder(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{
		"A": 50,  // not triggered
		"B": 210, // triggered
		"C": 310, // triggered
	}}
	svc := NewAlertService(stub)

	report, err := svc.CheckAlerts(context.Background(), []model.AlertSpec{
		{Symbol: "A", Target: 100, Direction: model.AlertAbove},
		{Symbol: "B", Target: 200, Direction: model.AlertAbove},
		{Symbol: "C", Target: 300, Direction: model.AlertAbove},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Triggered) != 2 {
		t.Fatalf("expected 2 triggered alerts, got %d", len(report.Triggered))
	}
	if report.Triggered[0].Symbol != "B" || report.Triggered[1].Symbol != "C" {
		t.Errorf("expected order [B C], got [%s %s]",
			report.Triggered[0].Symbol, report.Triggered[1].Symbol)
	}
}

func TestCheckAlertsIsolatesLookupFailures(t *testing.T) {
	stub := &stubQuoteService{
		prices: map[string]float64{"B": 210},
		errs:   map[string]error{"A": customerrors.ProviderUnavailable("A", errors.New("timeout"))},
	}
	svc := NewAlertService(stub)

	report, err := svc.CheckAlerts(context.Background(), []model.AlertSpec{
		{Symbol: "A", Target: 100, Direction: model.AlertAbove},
		{Symbol: "B", Target: 200, Direction: model.AlertAbove},
	})
	if err != nil {
		t.Fatalf("one failed lookup must not abort the evaluation: %v", err)
	}

	if len(report.Triggered) != 1 || report.Triggered[0].Symbol != "B" {
		t.Fatalf("expected B triggered, got %+v", report.Triggered)
	}
	if len(report.Failed) != 1 || report.Failed[0].Symbol != "A" {
		t.Fatalf("expected A marked as failed, got %+v", report.Failed)
	}
	if !strings.Contains(report.Failed[0].Error, "unavailable") {
		t.Errorf("failed check should carry the lookup error, got %q", report.Failed[0].Error)
	}
}

func TestCheckAlertsInvalidSpecs(t *testing.T) {
	stub := &stubQuoteService{prices: map[string]float64{"AAPL": 150}}
	svc := NewAlertService(stub)

	tests := []struct {
		name  string
		alert model.AlertSpec
	}{
		{"empty symbol", model.AlertSpec{Symbol: "", Target: 100, Direction: model.AlertAbove}},
		{"zero target", model.AlertSpec{Symbol: "AAPL", Target: 0, Direction: model.AlertAbove}},
		{"negative target", model.AlertSpec{Symbol: "AAPL", Target: -5, Direction: model.AlertBelow}},
		{"bad direction", model.AlertSpec{Symbol: "AAPL", Target: 100, Direction: "sideways"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CheckAlerts(context.Background(), []model.AlertSpec{tc.alert})
			if !errors.Is(err, customerrors.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCheckAlertsEmptyList(t *testing.T) {
	svc := NewAlertService(&stubQuoteService{})

	report, err := svc.CheckAlerts(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Triggered) != 0 || len(report.Failed) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
