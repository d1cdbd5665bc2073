package llm

import (
	"context"
	"slices"
)

// Request is a single-shot text generation request.
type Request struct {
	Model       string
	Prompt      string
	Temperature float32
}

// Client is a minimal LLM interface to allow pluggable providers.
// Implementations issue exactly one remote call per Generate and never retry.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ModelInfo describes a model offered by the remote service.
type ModelInfo struct {
	Name             string
	DisplayName      string
	Description      string
	SupportedMethods []string
}

// ModelLister enumerates remote models. Development-time only.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// MethodGenerateContent is the generation method a model must support to serve answers.
const MethodGenerateContent = "generateContent"

// SupportsGeneration reports whether m can be used for text generation.
func SupportsGeneration(m ModelInfo) bool {
	return slices.Contains(m.SupportedMethods, MethodGenerateContent)
}
