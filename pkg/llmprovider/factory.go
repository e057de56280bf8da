package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"brme/config"
	"brme/pkg/gemini"
	"brme/pkg/log"
	"brme/pkg/ollama"
)

// Default OpenAI-compatible endpoints by provider name
var compatibleBaseURLs = map[string]string{
	"openai":   "",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			logger.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// ManagerConfig converts the string durations of config.LLMConfig.
func ManagerConfig(cfg *config.LLMConfig) *Config {
	out := DefaultConfig()
	if cfg == nil {
		return out
	}
	out.FallbackEnabled = cfg.FallbackEnabled
	if cfg.RetryAttempts > 0 {
		out.RetryAttempts = cfg.RetryAttempts
	}
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil {
		out.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil {
		out.MaxTotalTimeout = d
	}
	return out
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	httpClient := &http.Client{}
	if d, err := time.ParseDuration(cfg.Timeout); err == nil && d > 0 {
		httpClient.Timeout = d
	}

	name := strings.ToLower(cfg.Name)
	switch name {
	case "ollama":
		client, err := ollama.New(ollama.Config{
			Host:       cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen", "alibaba", "openai-compatible":
		if cfg.APIKey == "" && name != "openai-compatible" {
			return nil, fmt.Errorf("API key is required")
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compatibleBaseURLs[name]
		}
		if name == "openai-compatible" && baseURL == "" {
			return nil, fmt.Errorf("base_url is required")
		}
		return NewOpenAIAdapter(name, cfg.APIKey, baseURL, cfg.Model, httpClient), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
