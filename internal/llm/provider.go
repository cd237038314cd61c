// Package llm generates optional plain-language contract summaries.
// Summaries are advisory text layered on top of a finished report;
// they never feed back into scoring.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a plain-language summary.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for summarization.
type SummarizeRequest struct {
	// Report is the finished analysis report.
	Report *model.Report

	// Text is the contract text; long documents are truncated in the
	// prompt.
	Text string

	// Prompt overrides the default prompt when set.
	Prompt string

	// Model overrides the configured model when set.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse contains the summary output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled). OpenAI-compatible
	// endpoints work through BaseURL.
	Provider string

	// Model name.
	Model string

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL points at a custom OpenAI-compatible endpoint.
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults with the LLM disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts the process configuration into an LLM
// provider configuration.
func ConfigFromModel(mc model.LLMConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = mc.Provider
	cfg.Model = mc.Model
	cfg.APIKey = mc.APIKey
	cfg.BaseURL = mc.BaseURL
	return cfg
}

// NewProvider creates a provider from configuration. An empty provider
// name returns (nil, nil): summaries disabled.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}
