package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")

	// ErrProviderTimeout marks a provider call that ran out of time on its own clock.
	ErrProviderTimeout = errors.New("provider timeout")
	// ErrProviderRateLimited marks an HTTP 429. The manager moves on without retrying.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError ties a failure to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusError is implemented by the API errors of the vendor clients.
type statusError interface {
	HTTPStatus() int
}

// classify tags vendor errors with ErrProviderRateLimited or ErrProviderTimeout.
func classify(err error) error {
	var se statusError
	if errors.As(err, &se) {
		switch se.HTTPStatus() {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		return err
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}
