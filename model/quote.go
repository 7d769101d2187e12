package model

import "time"

// Quote is a single current-price observation for one symbol.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name,omitempty"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// PricePoint is one daily close in a historical series.
type PricePoint struct {
	Date  string  `json:"date"` // formatted as 2006-01-02
	Price float64 `json:"price"`
}

// HistoricalSeries holds daily closing prices for one symbol,
// ordered oldest to newest. An empty Points slice is a valid result
// (market closed for the whole window).
type HistoricalSeries struct {
	Symbol     string         `json:"symbol"`
	Range      YahooTimeRange `json:"range"`
	Normalized bool           `json:"normalized,omitempty"`
	Points     []PricePoint   `json:"points"`
}

// SeriesSummary carries the headline numbers shown next to a chart.
type SeriesSummary struct {
	Current float64 `json:"current"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
}

// Summary computes current/high/low over the series, or nil when the
// series is empty.
func (s *HistoricalSeries) Summary() *SeriesSummary {
	if len(s.Points) == 0 {
		return nil
	}
	sum := &SeriesSummary{
		Current: s.Points[len(s.Points)-1].Price,
		High:    s.Points[0].Price,
		Low:     s.Points[0].Price,
	}
	for _, p := range s.Points {
		if p.Price > sum.High {
			sum.High = p.Price
		}
		if p.Price < sum.Low {
			sum.Low = p.Price
		}
	}
	return sum
}
