package model

type YahooTimeRange string

// Simple constants with direct string values
const (
	Range1d  YahooTimeRange = "1d"
	Range5d  YahooTimeRange = "5d"
	Range1mo YahooTimeRange = "1mo"
	Range3mo YahooTimeRange = "3mo"
	Range6mo YahooTimeRange = "6mo"
	Range1y  YahooTimeRange = "1y"
	Range2y  YahooTimeRange = "2y"
	Range5y  YahooTimeRange = "5y"
	Range10y YahooTimeRange = "10y"
	RangeYtd YahooTimeRange = "ytd"
	RangeMax YahooTimeRange = "max"
)

var validRanges = map[YahooTimeRange]bool{
	Range1d: true, Range5d: true, Range1mo: true, Range3mo: true,
	Range6mo: true, Range1y: true, Range2y: true, Range5y: true,
	Range10y: true, RangeYtd: true, RangeMax: true,
}

// ParseTimeRange validates a caller-supplied range string. The empty
// string defaults to one month, matching the original tool.
func ParseTimeRange(s string) (YahooTimeRange, bool) {
	if s == "" {
		return Range1mo, true
	}
	r := YahooTimeRange(s)
	return r, validRanges[r]
}

// YahooChartResponse is the top-level container
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ChartResult struct {
	Meta       ChartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	ShortName          string  `json:"shortName"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	RegularMarketTime  int64   `json:"regularMarketTime"`
}

type Indicators struct {
	Quote []ChartQuote `json:"quote"`
}

// Null bars (market holidays) decode as zeros and are skipped during mapping.
type ChartQuote struct {
	Low    []float64 `json:"low"`
	High   []float64 `json:"high"`
	Open   []float64 `json:"open"`
	Volume []int64   `json:"volume"`
	Close  []float64 `json:"close"`
}
