package model

import "time"

// Holding is one (symbol, quantity) pair supplied by the caller.
// Holdings are never persisted; each valuation receives a fresh list.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
}

// Position is one valued holding inside a portfolio report.
type Position struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name,omitempty"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// PortfolioReport is the derived, read-only valuation result.
// Positions keep the insertion order of the input holdings.
type PortfolioReport struct {
	Positions  []Position `json:"positions"`
	TotalValue float64    `json:"totalValue"`
	AsOf       time.Time  `json:"asOf"`
}
