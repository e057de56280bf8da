package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Event resolution
	Resolver ResolverConfig

	// Collaborators
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ResolverConfig drives the temporal resolution engine.
type ResolverConfig struct {
	TimezoneName   string
	TimezoneOffset string
	// Estimator is "rule" or "llm".
	Estimator string
	// CacheTTL memoizes estimator drafts; zero disables the cache.
	CacheTTL time.Duration
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	SecretToken     string
	CommandPrefix   string
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CalendarID      string
	CredentialsPath string
	ClientID        string
	ClientSecret    string
	RedirectURI     string
	RefreshToken    string
}

// Enabled reports whether enough credentials are present to create events.
func (g GoogleCalendarConfig) Enabled() bool {
	return g.CredentialsPath != "" || (g.ClientID != "" && g.ClientSecret != "" && g.RefreshToken != "")
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

const (
	EstimatorRule = "rule"
	EstimatorLLM  = "llm"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/brme/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the default locations.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/brme/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Resolver
	cfg.Resolver.TimezoneName = v.GetString("resolver.timezone_name")
	cfg.Resolver.TimezoneOffset = v.GetString("resolver.timezone_offset")
	cfg.Resolver.Estimator = strings.ToLower(v.GetString("resolver.estimator"))
	cfg.Resolver.CacheTTL = v.GetDuration("resolver.cache_ttl")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.CommandPrefix = v.GetString("telegram.command_prefix")
	cfg.Telegram.RateLimitPerMin = v.GetInt("telegram.rate_limit_per_min")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google Calendar: the GOOGLE_* names are the ones the OAuth bootstrap prints.
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.ClientID = firstNonEmpty(v.GetString("google_client_id"), v.GetString("google_calendar.client_id"))
	cfg.GoogleCalendar.ClientSecret = firstNonEmpty(v.GetString("google_client_secret"), v.GetString("google_calendar.client_secret"))
	cfg.GoogleCalendar.RedirectURI = firstNonEmpty(v.GetString("google_redirect_uri"), v.GetString("google_calendar.redirect_uri"))
	cfg.GoogleCalendar.RefreshToken = firstNonEmpty(v.GetString("google_refresh_token"), v.GetString("google_calendar.refresh_token"))
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  expandEnvVar(v, getStringFromMap(providerMap, "base_url")),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("resolver.timezone_name", "America/Sao_Paulo")
	v.SetDefault("resolver.timezone_offset", "-03:00")
	v.SetDefault("resolver.estimator", EstimatorRule)
	v.SetDefault("resolver.cache_ttl", "0s")

	v.SetDefault("telegram.command_prefix", "brme")
	v.SetDefault("telegram.rate_limit_per_min", 20)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.redirect_uri", "http://localhost:3000/oauth2callback")

	// LLM defaults: one attempt per provider, the core never retries on its own
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func validate(cfg *Config) error {
	switch cfg.Resolver.Estimator {
	case EstimatorRule:
	case EstimatorLLM:
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	default:
		return fmt.Errorf("resolver.estimator must be %q or %q, got %q", EstimatorRule, EstimatorLLM, cfg.Resolver.Estimator)
	}
	if cfg.Resolver.TimezoneOffset == "" {
		return fmt.Errorf("resolver.timezone_offset is required")
	}
	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}
