package ollama

import (
	"net/http"
	"time"
)

const (
	DefaultHost    = "http://localhost:11434"
	DefaultModel   = "llama3.1"
	DefaultTimeout = 60 * time.Second

	// FormatJSON constrains the model output to a JSON value.
	FormatJSON = "json"
)

// Config holds the Ollama client configuration.
type Config struct {
	Host       string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults. Ollama needs no credentials.
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is a chat turn. Role is "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Format   string    `json:"format,omitempty"`
	Options  *Options  `json:"options,omitempty"`
}

// Options are the sampling parameters.
type Options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ChatResponse is the non-streaming answer of /api/chat.
type ChatResponse struct {
	Model           string  `json:"model"`
	Message         Message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

type ollamaImpl struct {
	host       string
	model      string
	httpClient *http.Client
}
