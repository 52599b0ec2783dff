package llmprovider

import (
	"context"

	"gdd-roadmap/pkg/gemini"
	"gdd-roadmap/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text()}},
		}
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{
			Role:  geminiRole(msg.Role),
			Parts: []gemini.Part{{Text: msg.Text()}},
		}
	}
	if req.JSONResponse {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, classify(err)
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text()}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CandidatesTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// OpenAICompatAdapter adapts pkg/openaicompat (qwen, deepseek) to the Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter for an OpenAI-compatible vendor
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openaicompat.Request{
		Messages:    make([]openaicompat.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONResponse,
	}
	if req.SystemInstruction != nil {
		chatReq.System = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		chatReq.Messages[i] = openaicompat.Message{Role: msg.Role, Content: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, classify(err)
	}

	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Vendor()
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
