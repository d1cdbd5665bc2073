// Package assistant forwards a health question to a text-generation service
// and returns the generated answer.
package assistant

import (
	"context"
	"log/slog"
	"strings"

	"health-assistant/internal/llm"
)

// Temperature is the sampling temperature sent with every request.
const Temperature float32 = 0.4

// Options configures a Bridge.
type Options struct {
	APIKey string
	Model  string
	Log    *slog.Logger
}

// Bridge answers one question per call. It holds no per-request state and is
// safe for concurrent use.
type Bridge struct {
	client llm.Client
	apiKey string
	model  string
	log    *slog.Logger
}

// New returns ErrMissingCredential when opts.APIKey is blank.
func New(client llm.Client, opts Options) (*Bridge, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingCredential
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		client: client,
		apiKey: opts.APIKey,
		model:  opts.Model,
		log:    log,
	}, nil
}

// Model is the configured model identifier, possibly empty.
func (b *Bridge) Model() string { return b.model }

// Answer returns the service's text verbatim, ErrEmptyInput or
// ErrMissingCredential without calling the service, or a *RemoteFailure.
func (b *Bridge) Answer(ctx context.Context, question string) (string, error) {
	if b == nil || b.client == nil || strings.TrimSpace(b.apiKey) == "" {
		return "", ErrMissingCredential
	}
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyInput
	}

	text, err := b.client.Generate(ctx, llm.Request{
		Model:       b.model,
		Prompt:      BuildPrompt(question),
		Temperature: Temperature,
	})
	if err != nil {
		b.log.Warn("generation failed", "model", b.model, "err", err)
		return "", &RemoteFailure{Message: err.Error(), Err: err}
	}
	return text, nil
}
