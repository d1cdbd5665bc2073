package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"health-assistant/internal/assistant"
	"health-assistant/internal/config"
	"health-assistant/internal/llm"
	"health-assistant/internal/logger"
)

// Deps bundles common runtime dependencies for services.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Assistant *assistant.Bridge
}

// Build loads env, config, and shared components.
func Build(ctx context.Context) (Deps, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Deps{}, err
	}
	return New(ctx, cfg)
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (config.Config, error) {
	if err := loadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// New wires Deps from an already loaded config. A blank credential for the
// selected provider fails with assistant.ErrMissingCredential.
func New(ctx context.Context, cfg config.Config) (Deps, error) {
	if err := cfg.Validate(); err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel)

	if strings.TrimSpace(cfg.APIKey()) == "" {
		return Deps{}, fmt.Errorf("%s is required when LLM_PROVIDER=%s: %w",
			cfg.APIKeyEnv(), cfg.LLMProvider, assistant.ErrMissingCredential)
	}

	llmClient, err := buildLLM(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	bridge, err := assistant.New(llmClient, assistant.Options{
		APIKey: cfg.APIKey(),
		Model:  cfg.LLMModel,
		Log:    log,
	})
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize assistant: %w", err)
	}
	return Deps{
		Config:    cfg,
		Log:       log,
		Assistant: bridge,
	}, nil
}

// BuildModelLister returns a Gemini model lister regardless of LLM_PROVIDER.
func BuildModelLister(ctx context.Context, cfg config.Config) (llm.ModelLister, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required to list models: %w", assistant.ErrMissingCredential)
	}
	client, err := llm.NewGeminiClient(ctx, llm.GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return client, nil
}

func buildLLM(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		client, err := llm.NewGeminiClient(ctx, llm.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM client", "model", modelOrDefault(cfg.LLMModel, llm.DefaultGeminiModel))
		return client, nil
	case config.ProviderOpenAI:
		client, err := llm.NewOpenAIClient(llm.OpenAIOptions{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", modelOrDefault(cfg.LLMModel, string(llm.DefaultOpenAIModel)))
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}
}

func modelOrDefault(model, def string) string {
	if model == "" {
		return def
	}
	return model
}

// loadDotEnv loads .env files into the process environment. Missing files are
// skipped; variables already set win.
func loadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load environment variables from %s: %w", name, err)
		}
	}
	return nil
}
