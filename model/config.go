package model

// EnvConfig holds sensitive environment settings
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
	FrontendUrl string `json:"frontendUrl"`

	// MarketBaseUrl overrides the Yahoo Finance chart endpoint,
	// mainly for tests. Empty means the public endpoint.
	MarketBaseUrl string `json:"marketBaseUrl"`

	// RequestTimeoutSeconds bounds each outbound provider call.
	RequestTimeoutSeconds int `json:"requestTimeoutSeconds"`

	// QuoteCache enables the in-process quote cache. Off by default:
	// the uncached contract is one provider call per lookup.
	QuoteCache           bool `json:"quoteCache"`
	QuoteCacheTtlSeconds int  `json:"quoteCacheTtlSeconds"`

	RateLimiter bool `json:"rateLimiter"`
}
