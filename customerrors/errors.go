package customerrors

import (
	"errors"
	"fmt"
)

// The three failure kinds callers can distinguish with errors.Is.
var (
	// ErrSymbolNotFound: the provider does not know the symbol, or has
	// no data for the requested range.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrProviderUnavailable: transient failure reaching the provider
	// (network error, timeout, rate limit, upstream 5xx).
	ErrProviderUnavailable = errors.New("market data provider unavailable")

	// ErrInvalidInput: malformed caller input (empty symbol, negative
	// quantity, bad alert direction).
	ErrInvalidInput = errors.New("invalid input")
)

func SymbolNotFound(symbol string) error {
	return fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
}

func ProviderUnavailable(symbol string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, symbol)
	}
	return fmt.Errorf("%w: %s: %v", ErrProviderUnavailable, symbol, cause)
}

func InvalidInput(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, detail)
}
