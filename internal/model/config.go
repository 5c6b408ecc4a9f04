package model

import "time"

// Config is the full runtime configuration. Values come from defaults, the
// config file, BIASLENS_* environment variables and CLI flags, in ascending
// priority.
type Config struct {
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" mapstructure:"rate_limit"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

// GenerationConfig controls the article generation stage.
type GenerationConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`
	Model       string  `yaml:"model" mapstructure:"model"`
	NumSamples  int     `yaml:"num_samples" mapstructure:"num_samples"`
	LeftRatio   float64 `yaml:"left_ratio" mapstructure:"left_ratio"`
	LeftType    string  `yaml:"left_type" mapstructure:"left_type"`
	RightType   string  `yaml:"right_type" mapstructure:"right_type"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	Seed        int64   `yaml:"seed" mapstructure:"seed"`
	NumRuns     int     `yaml:"num_runs" mapstructure:"num_runs"`
}

// ClassifierConfig controls the bias-classification stage.
type ClassifierConfig struct {
	Provider    string        `yaml:"provider" mapstructure:"provider"`
	Model       string        `yaml:"model" mapstructure:"model"`
	APIKey      string        `yaml:"-" mapstructure:"-"`
	BaseURL     string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxAttempts int           `yaml:"max_attempts" mapstructure:"max_attempts"`
	RetryDelay  time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
}

// CacheConfig controls verdict memoization.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitConfig paces outbound API calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig controls reporting behavior.
type OutputConfig struct {
	Verbose    bool `yaml:"verbose" mapstructure:"verbose"`
	WriteImage bool `yaml:"write_image" mapstructure:"write_image"`
}

// DefaultConfig returns the built-in defaults. Classifier retry behavior is
// fixed at 3 attempts with a flat 3-second delay unless overridden.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			NumSamples:  10,
			LeftRatio:   0.5,
			LeftType:    "explicit",
			RightType:   "explicit",
			MaxTokens:   2048,
			Temperature: 0.7,
			Seed:        42,
			NumRuns:     1,
		},
		Classifier: ClassifierConfig{
			Provider:    "openai",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   800,
			Temperature: 0,
			Timeout:     30 * time.Second,
			MaxAttempts: 3,
			RetryDelay:  3 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     7 * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Output: OutputConfig{
			WriteImage: true,
		},
	}
}
