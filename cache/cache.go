package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// QuoteCache backs the optional cached quote service. Entry TTL is set
// per item from config; the defaults here only govern janitor sweeps.
var QuoteCache = cache.New(1*time.Minute, 5*time.Minute)

// RateLimiterCache keeps one token bucket per client IP.
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
