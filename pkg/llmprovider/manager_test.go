package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	failWith   error
	delay      time.Duration
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(text string) *Response {
	return &Response{
		Content: Message{Role: "assistant", Parts: []Part{{Text: text}}},
		Usage:   &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("Hello from primary provider")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if resp.Content.Text() != "Hello from primary provider" {
		t.Errorf("unexpected text %q", resp.Content.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("Hello from secondary provider")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("unused")}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "primary" {
		t.Errorf("expected ProviderError from primary, got: %v", err)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{RetryAttempts: 3}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", response: okResponse("x")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("provider must not be called for an empty request")
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, response: okResponse("late")}
	backup := &mockProvider{name: "backup", response: okResponse("never")}
	manager := NewManager([]Provider{slow, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
		MaxTotalTimeout: 50 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("unexpected error: %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("global timeout not honoured, took %s", time.Since(start))
	}
	if slow.callCount != 1 {
		t.Errorf("expected no retries after the deadline, got %d calls", slow.callCount)
	}
	if backup.callCount != 0 {
		t.Errorf("backup must not be called after the deadline")
	}
}

func TestGenerateContent_FillsProviderName(t *testing.T) {
	p := &mockProvider{name: "gemini", model: "m", response: &Response{Content: Message{Parts: []Part{{Text: "{}"}}}}}
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "gemini" || resp.Usage == nil {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGenerateContent_RateLimitedSkipsRetries(t *testing.T) {
	limited := &mockProvider{name: "limited", failWith: fmt.Errorf("%w: slow down", ErrProviderRateLimited)}
	backup := &mockProvider{name: "backup", model: "b-1", response: okResponse("ok")}
	manager := NewManager([]Provider{limited, backup}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limited.callCount != 1 {
		t.Errorf("rate limited provider retried %d times", limited.callCount)
	}
	if resp.ProviderName != "backup" || resp.ModelName != "b-1" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGenerateContent_ZeroAttemptsStillCalls(t *testing.T) {
	p := &mockProvider{name: "p", response: okResponse("ok")}
	manager := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), UserPrompt("Hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.callCount != 1 {
		t.Errorf("expected one call, got %d", p.callCount)
	}
}

func TestManager_Providers(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "gemini"}, &mockProvider{name: "deepseek"}}, &Config{}, &mockLogger{})
	got := manager.Providers()
	if len(got) != 2 || got[0] != "gemini" || got[1] != "deepseek" {
		t.Errorf("Providers() = %v", got)
	}
}
