package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "models/gemini-2.5-pro"

const defaultGenerateTimeout = 60 * time.Second

// GeminiOptions configures NewGeminiClient.
type GeminiOptions struct {
	APIKey  string
	BaseURL string // empty uses the public Gemini API endpoint
	Timeout time.Duration
}

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGeminiClient builds a client against the Gemini API backend.
func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGenerateTimeout
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: opts.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: cli, timeout: opts.Timeout}, nil
}

// Generate sends one generateContent request. Cancellation of ctx is ignored
// once the call is issued; only the client timeout ends it early.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	model := req.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(reqCtx, model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	})
	if err != nil {
		return "", geminiError(err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini: prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	text := resp.Text()
	if text == "" {
		return "", emptyResponseError(resp)
	}
	return text, nil
}

// emptyResponseError keeps the candidate's finish reason, e.g. SAFETY, so the
// user sees why no text came back.
func emptyResponseError(resp *genai.GenerateContentResponse) error {
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].FinishReason == "" {
		return fmt.Errorf("gemini: empty response")
	}
	cand := resp.Candidates[0]
	if cand.FinishMessage != "" {
		return fmt.Errorf("gemini: no text returned (finish reason: %s): %s", cand.FinishReason, cand.FinishMessage)
	}
	return fmt.Errorf("gemini: no text returned (finish reason: %s)", cand.FinishReason)
}

// ListModels returns every model visible to the API key.
func (c *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("nil gemini client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out []ModelInfo
	for m, err := range c.client.Models.All(reqCtx) {
		if err != nil {
			return nil, geminiError(err)
		}
		out = append(out, ModelInfo{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			Description:      m.Description,
			SupportedMethods: m.SupportedActions,
		})
	}
	return out, nil
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{Provider: "gemini", StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &APIError{Provider: "gemini", StatusCode: apiErrPtr.Code, Message: apiErrPtr.Message, Err: err}
	}
	return err
}
