package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/jwhan/biaslens/internal/cache"
	"github.com/jwhan/biaslens/internal/llm"
	"github.com/jwhan/biaslens/internal/model"
	"github.com/spf13/viper"
)

// loadConfig merges the built-in defaults with whatever viper picked up from
// the config file and BIASLENS_* environment variables.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	return cfg, nil
}

// resolveAPIKey pulls provider credentials from the conventional environment
// variables. Keys never live in the config file.
func resolveAPIKey(provider string, cfg *model.ClassifierConfig) error {
	switch provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
	}
	return nil
}

// newProvider builds the chat provider for the given stage settings.
func newProvider(provider, modelName string, cc model.ClassifierConfig) (llm.Provider, error) {
	if err := resolveAPIKey(provider, &cc); err != nil {
		return nil, err
	}
	p, err := llm.NewProvider(llm.Config{
		Provider:  provider,
		Model:     modelName,
		APIKey:    cc.APIKey,
		BaseURL:   cc.BaseURL,
		Timeout:   cc.Timeout,
		MaxTokens: cc.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	return p, nil
}

// newVerdictCache builds the layered verdict cache, nil when disabled.
func newVerdictCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}
	dir := cfg.Dir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".biaslens", "cache")
		}
	}
	if dir == "" {
		return cache.NewMemoryCache(cfg.TTL, cfg.TTL)
	}
	return cache.NewLayeredCache(cfg.TTL, dir, cfg.TTL)
}

// newClassifier assembles the full classification stack from configuration.
func newClassifier(cfg *model.Config) (*llm.Classifier, error) {
	provider, err := newProvider(cfg.Classifier.Provider, cfg.Classifier.Model, cfg.Classifier)
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return llm.NewClassifier(provider, llm.ClassifierOptions{
		Cache:       newVerdictCache(cfg.Cache),
		Limiter:     limiter,
		MaxAttempts: cfg.Classifier.MaxAttempts,
		RetryDelay:  cfg.Classifier.RetryDelay,
		MaxTokens:   cfg.Classifier.MaxTokens,
		Temperature: cfg.Classifier.Temperature,
		CacheTTL:    cfg.Cache.TTL,
		Verbose:     cfg.Output.Verbose,
	}), nil
}

// newGenerator assembles the article generator from configuration.
func newGenerator(cfg *model.Config) (*llm.Generator, error) {
	cc := cfg.Classifier
	cc.MaxTokens = cfg.Generation.MaxTokens
	provider, err := newProvider(cfg.Generation.Provider, cfg.Generation.Model, cc)
	if err != nil {
		return nil, err
	}

	return llm.NewGenerator(provider, llm.GeneratorOptions{
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: cfg.Generation.Temperature,
		Verbose:     cfg.Output.Verbose,
	}), nil
}
