package openaicompat

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration. Vendor picks the default BaseURL and Model.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills vendor defaults
func (c *Config) Validate() error {
	c.Vendor = strings.ToLower(strings.TrimSpace(c.Vendor))
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	d, known := defaults[c.Vendor]
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("openaicompat: BaseURL is required for vendor %q", c.Vendor)
		}
		c.BaseURL = d[0]
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("openaicompat: Model is required for vendor %q", c.Vendor)
		}
		c.Model = d[1]
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Request represents a chat completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Response represents a chat completion response
type Response struct {
	Content      string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
