package service

import (
	"context"
	"testing"
	"time"

	"github.com/cblythe8/Stock-Crypto-Tracker/model"
)

func TestCachedQuoteServiceServesSecondCallFromCache(t *testing.T) {
	stub := &stubMarketClient{quotes: map[string]*model.Quote{
		"CACHETEST": {Symbol: "CACHETEST", Price: 42, Currency: "USD"},
	}}
	svc := NewCachedQuoteService(NewQuoteService(stub), time.Minute)

	for i := 0; i < 3; i++ {
		quote, err := svc.GetCurrentPrice(context.Background(), "CACHETEST")
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if quote.Price != 42 {
			t.Errorf("call %d: expected price 42, got %v", i, quote.Price)
		}
	}

	if stub.quoteCalls != 1 {
		t.Errorf("expected 1 provider call with caching enabled, got %d", stub.quoteCalls)
	}
}

func TestCachedQuoteServiceDoesNotCacheFailures(t *testing.T) {
	stub := &stubMarketClient{quotes: map[string]*model.Quote{}}
	svc := NewCachedQuoteService(NewQuoteService(stub), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := svc.GetCurrentPrice(context.Background(), "CACHEMISS"); err == nil {
			t.Fatalf("call %d: expected lookup error", i)
		}
	}
	if stub.quoteCalls != 2 {
		t.Errorf("failures must not be cached, expected 2 provider calls, got %d", stub.quoteCalls)
	}
}
