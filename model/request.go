package model

// ValuateRequest carries the holdings to value. Order matters: report
// rows come back in the same order.
type ValuateRequest struct {
	Holdings []Holding `json:"holdings"`
}

// CheckAlertsRequest carries the alert rules to evaluate.
type CheckAlertsRequest struct {
	Alerts []AlertSpec `json:"alerts"`
}

// CompareRequest asks for chart-ready series for several symbols over
// one window. With Normalize set, each series is converted to percent
// change from its first data point.
type CompareRequest struct {
	Symbols   []string `json:"symbols"`
	Range     string   `json:"range"`
	Normalize bool     `json:"normalize"`
}
