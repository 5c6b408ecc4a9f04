// Package llm wraps chat-completion backends behind a single Provider
// interface and builds the generation and classification prompts on top.
package llm

import (
	"context"
	"time"
)

// ChatRequest is a single chat-completion exchange.
type ChatRequest struct {
	// System sets the persona/instruction message.
	System string

	// User is the user-turn content.
	User string

	// Model overrides the provider's configured model when non-empty.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls sampling. Zero means deterministic output and is
	// passed through as an explicit zero, not the provider default.
	Temperature float64
}

// Provider is a chat-completion backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends one exchange and returns the assistant's text.
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, mock servers)
	BaseURL string

	// Timeout per API request
	Timeout time.Duration

	// MaxTokens default for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30 * time.Second,
		MaxTokens: 800,
	}
}
