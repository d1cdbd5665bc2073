package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8501" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM
	LLMProvider  string        `env:"LLM_PROVIDER" envDefault:"gemini" validate:"oneof=gemini openai"` // "gemini" (Google Gemini API) or "openai"
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	LLMModel     string        `env:"LLM_MODEL"` // empty selects the provider default
	LLMBaseURL   string        `env:"LLM_BASE_URL" validate:"omitempty,url"`
	LLMTimeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"60s" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from environment variables with defaults. A value
// that does not parse (e.g. LLM_TIMEOUT=30 without a unit) is an error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom is Load over an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints. It does not check the credential; see APIKey.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIKey
	}
	return c.GeminiAPIKey
}

// APIKeyEnv names the environment variable APIKey reads from.
func (c Config) APIKeyEnv() string {
	if c.LLMProvider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}
