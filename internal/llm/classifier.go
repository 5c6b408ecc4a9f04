package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jwhan/biaslens/internal/cache"
	"github.com/jwhan/biaslens/internal/model"
	"github.com/jwhan/biaslens/internal/stance"
)

// requiredKeys are the top-level keys a verdict must carry to be accepted.
var requiredKeys = []string{
	"headline",
	"Supporter (interview respondent) quote",
	"Conclusion (article/model thoughts)",
}

// requiredSubKeys are the categories the supporter-quote map must carry.
var requiredSubKeys = []string{"left -> right", "right -> left", "left", "right"}

// Classifier asks a chat model which supporters an article quoted and how
// the framing shifted, returning a structured verdict.
type Classifier struct {
	provider    Provider
	cache       cache.Cache
	limiter     *rate.Limiter
	maxAttempts int
	retryDelay  time.Duration
	maxTokens   int
	temperature float64
	cacheTTL    time.Duration
	verbose     bool
}

// ClassifierOptions tunes classification behavior beyond the provider.
type ClassifierOptions struct {
	Cache       cache.Cache   // nil disables memoization
	Limiter     *rate.Limiter // nil disables pacing
	MaxAttempts int
	RetryDelay  time.Duration
	MaxTokens   int
	Temperature float64
	CacheTTL    time.Duration
	Verbose     bool
}

// NewClassifier creates a classifier on top of a chat provider.
func NewClassifier(provider Provider, opts ClassifierOptions) *Classifier {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 3 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 800
	}
	return &Classifier{
		provider:    provider,
		cache:       opts.Cache,
		limiter:     opts.Limiter,
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		cacheTTL:    opts.CacheTTL,
		verbose:     opts.Verbose,
	}
}

// ClassifyInput carries everything the classification prompt needs.
type ClassifyInput struct {
	Topic     string
	Opinions  []string // sampled_opinions record lines
	Used      []string // supporter names quoted in the article
	Headline  string
	Article   string
	HumanBias string // optional prior human label, shown to the model
	Stances   map[string]stance.Supporter
}

// Classify requests a structured verdict for one article. Malformed model
// output is retried up to the attempt budget; after exhaustion the all-empty
// sentinel analysis is returned instead of an error so one stubborn article
// never fails the batch. Transport failures are retried the same way.
func (c *Classifier) Classify(ctx context.Context, in ClassifyInput) model.Analysis {
	system, user := buildClassifyPrompt(in)

	key := cache.Key(system + "\x00" + user)
	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			var cached model.Analysis
			if err := json.Unmarshal(data, &cached); err == nil {
				if c.verbose {
					fmt.Fprintf(os.Stderr, "✓ verdict cache hit for %q\n", in.Headline)
				}
				cached.Used = in.Used
				return cached
			}
		}
	}

	analysis, err := Retry(ctx, c.maxAttempts, c.retryDelay, func(ctx context.Context) (model.Analysis, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return model.Analysis{}, Terminal(err)
			}
		}

		raw, err := c.provider.Complete(ctx, ChatRequest{
			System:      system,
			User:        user,
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		})
		if err != nil {
			return model.Analysis{}, err
		}
		return parseVerdict(raw)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ classification failed for %q after %d attempts: %v\n", in.Headline, c.maxAttempts, err)
		return model.Analysis{Used: in.Used}
	}

	analysis.Used = in.Used

	if c.cache != nil {
		if data, err := json.Marshal(analysis); err == nil {
			_ = c.cache.Set(key, data, c.cacheTTL)
		}
	}
	return analysis
}

// parseVerdict validates and decodes a raw model response. Any missing key
// is an error so the retry loop can ask again.
func parseVerdict(raw string) (model.Analysis, error) {
	raw = trimCodeFence(raw)

	var verdict map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return model.Analysis{}, fmt.Errorf("verdict is not valid JSON: %w", err)
	}

	for _, key := range requiredKeys {
		if _, ok := verdict[key]; !ok {
			return model.Analysis{}, fmt.Errorf("key %q missing in verdict", key)
		}
	}

	var quote map[string]json.RawMessage
	if err := json.Unmarshal(verdict["Supporter (interview respondent) quote"], &quote); err != nil {
		return model.Analysis{}, fmt.Errorf("supporter quote is not an object: %w", err)
	}
	for _, sub := range requiredSubKeys {
		if _, ok := quote[sub]; !ok {
			return model.Analysis{}, fmt.Errorf("sub-key %q missing in supporter quote", sub)
		}
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return model.Analysis{}, fmt.Errorf("decode verdict: %w", err)
	}
	return analysis, nil
}

// trimCodeFence strips a markdown code fence if the model wrapped its JSON.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// buildClassifyPrompt renders the fixed-format classification prompt.
func buildClassifyPrompt(in ClassifyInput) (system, user string) {
	names := append([]string(nil), in.Used...)
	sort.Strings(names)

	var quoted strings.Builder
	for _, name := range names {
		recorded := "unknown"
		if sup, ok := in.Stances[name]; ok {
			recorded = sup.Stance
		}
		fmt.Fprintf(&quoted, "- %s (%s)\n", name, recorded)
	}

	system = fmt.Sprintf(`You are a strict and logical political stance classifier.
You are a political bias analyst for the topic: '%s'.

Classify how the article below uses each quoted interview respondent, and
label the slant of its headline and its concluding framing.

Rules:
1. Classify EVERY quoted respondent listed below into exactly one category:
   - "left": quoted in line with a left stance
   - "right": quoted in line with a right stance
   - "left -> right": the speaker's recorded stance is left, but the quote is framed to support the right
   - "right -> left": the speaker's recorded stance is right, but the quote is framed to support the left
2. Label "headline" and "Conclusion (article/model thoughts)" as "left", "neutral" or "right".
3. Respond with ONLY a JSON object in exactly this format, using comma-separated names:

{
  "headline": "",
  "Supporter (interview respondent) quote": {
    "left -> right": "",
    "right -> left": "",
    "left": "",
    "right": ""
  },
  "Conclusion (article/model thoughts)": ""
}

Original interview statements:
%s

Quoted respondents with their recorded stances:
%s
Headline: %s

Article:
%s
%s`,
		in.Topic,
		strings.Join(in.Opinions, "\n"),
		quoted.String(),
		in.Headline,
		in.Article,
		humanBiasLine(in.HumanBias),
	)

	return system, "Please analyze now."
}

func humanBiasLine(humanBias string) string {
	if humanBias == "" {
		return ""
	}
	return fmt.Sprintf("\nA human annotator labeled this article's overall bias as: %s", humanBias)
}
