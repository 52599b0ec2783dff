package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gdd-roadmap/pkg/log"
)

// Manager tries providers in priority order, retrying each before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config controls retry and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	// RetryDelay grows linearly: attempt n waits n*RetryDelay.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain, retries and fallbacks included. Zero disables it.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the provider names in the order they are tried.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// GenerateContent returns the first successful response. When every provider fails the error
// wraps ErrAllProvidersFailed and the last provider's error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("gave up after %d provider(s): %w", len(m.providers), err)
		}

		resp, err := m.tryProvider(ctx, provider, req)
		if err == nil {
			m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
				provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
			provider.Name(), provider.Model(), err)
		lastErr = err
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) attempts() int {
	return max(1, m.config.RetryAttempts)
}

// tryProvider calls one provider up to attempts() times. A rate limited provider is not retried.
func (m *Manager) tryProvider(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error
	for attempt := range m.attempts() {
		if attempt > 0 {
			if err := sleep(ctx, time.Duration(attempt)*m.config.RetryDelay); err != nil {
				return nil, err
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return normalize(resp, provider), nil
		}

		lastErr = &ProviderError{Provider: provider.Name(), Err: err}
		if ctx.Err() != nil || errors.Is(err, ErrProviderRateLimited) {
			break
		}
	}
	return nil, lastErr
}

func normalize(resp *Response, provider Provider) *Response {
	if resp.ProviderName == "" {
		resp.ProviderName = provider.Name()
	}
	if resp.ModelName == "" {
		resp.ModelName = provider.Model()
	}
	if resp.Usage == nil {
		resp.Usage = &Usage{}
	}
	return resp
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
