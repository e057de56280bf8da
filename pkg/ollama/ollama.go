package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		host:       strings.TrimRight(cfg.Host, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

// Chat posts to /api/chat with streaming disabled.
func (o *ollamaImpl) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	body := *req
	if body.Model == "" {
		body.Model = o.model
	}
	body.Stream = false

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/chat", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ollama: failed to decode response: %w", err)
	}
	return &result, nil
}
