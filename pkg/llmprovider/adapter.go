package llmprovider

import (
	"context"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"brme/pkg/gemini"
	"brme/pkg/ollama"
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
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: msg.Role, Text: msg.Text}
	}
	if req.JSONMode {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OllamaAdapter adapts the native Ollama chat API
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &ollama.ChatRequest{
		Options: &ollama.Options{Temperature: req.Temperature, NumPredict: req.MaxTokens},
	}
	if req.SystemInstruction != "" {
		chatReq.Messages = append(chatReq.Messages, ollama.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, ollama.Message{Role: msg.Role, Content: msg.Text})
	}
	if req.JSONMode {
		chatReq.Format = ollama.FormatJSON
	}

	resp, err := a.client.Chat(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter talks to any OpenAI-compatible chat completions endpoint
// (OpenAI, DeepSeek, Qwen/DashScope, Ollama's /v1).
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter for an OpenAI-compatible endpoint.
// An empty baseURL targets api.openai.com; a nil httpClient uses the library default.
func NewOpenAIAdapter(name, apiKey, baseURL, model string, httpClient *http.Client) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		name:   name,
		model:  model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
