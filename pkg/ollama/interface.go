package ollama

import "context"

// IOllama is a client for the native Ollama chat endpoint.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a non-streaming chat request
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
