package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jwhan/biaslens/internal/model"
)

// articleBlock matches the first JSON array of objects in a model response,
// tolerating prose or code fences around it.
var articleBlock = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)

// Generator drafts batches of news articles from sampled interview opinions.
// The persona deliberately permits slanted coverage: the downstream stages
// measure how that slant shows up, so a neutrality-enforcing prompt would
// leave nothing to measure.
type Generator struct {
	provider    Provider
	maxTokens   int
	temperature float64
	attempts    int
	retryDelay  time.Duration
	verbose     bool
}

// GeneratorOptions tunes article generation.
type GeneratorOptions struct {
	MaxTokens   int
	Temperature float64
	MaxAttempts int
	RetryDelay  time.Duration
	Verbose     bool
}

// NewGenerator creates a generator on top of a chat provider.
func NewGenerator(provider Provider, opts GeneratorOptions) *Generator {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2048
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 3 * time.Second
	}
	return &Generator{
		provider:    provider,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		attempts:    opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
		verbose:     opts.Verbose,
	}
}

// GenerateInput carries the interview material for one generation run.
type GenerateInput struct {
	Topic          string
	FullStatements []string // every roster statement, `Name: "text"` lines
	InterviewLines []string // the sampled subset shown as recent interviews
}

// GeneratedRun is the outcome of one generation call. Articles is nil when
// no article array could be recovered from the response; Raw always holds
// the untouched model output so a failed parse is still inspectable.
type GeneratedRun struct {
	Articles []*model.Article
	Raw      string
}

// Generate asks the model for a batch of five articles built from the
// sampled opinions. A response with no parseable article array is not an
// error: the raw text is kept and the caller decides how to record it.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (GeneratedRun, error) {
	system, user := buildGeneratePrompt(in)

	raw, err := Retry(ctx, g.attempts, g.retryDelay, func(ctx context.Context) (string, error) {
		return g.provider.Complete(ctx, ChatRequest{
			System:      system,
			User:        user,
			MaxTokens:   g.maxTokens,
			Temperature: g.temperature,
		})
	})
	if err != nil {
		return GeneratedRun{}, fmt.Errorf("generate articles: %w", err)
	}

	run := GeneratedRun{Raw: raw}
	block := articleBlock.FindString(raw)
	if block == "" {
		return run, nil
	}

	var drafts []struct {
		Headline string `json:"headline"`
		Article  string `json:"article"`
	}
	if err := json.Unmarshal([]byte(block), &drafts); err != nil {
		return run, nil
	}

	for _, d := range drafts {
		run.Articles = append(run.Articles, model.NewArticle(d.Headline, d.Article))
	}
	return run, nil
}

const generateFewShot = `[Example 1]
Interview Data Used:
Alex, Daniel, Grace

Generated Article:
[
  {
    "headline": "Debate Over Immigration Heats Up with Calls for Stricter Enforcement",
    "article": "Recent conversations highlight the divide among those who view stricter regulations as necessary for stability and cultural preservation. Alex contends that tighter policies act as a deterrent, while Grace cites job security as a major concern. Still, Daniel points out how immigration can invigorate the economy by introducing fresh ideas. These clashing perspectives suggest immigration policy remains one of the nation's most hotly debated issues."
  }
]

[Example 2]
Interview Data Used:
Chloe, Frank, Isaac

Generated Article:
[
  {
    "headline": "Immigration Reform: More Pathways or More Enforcement?",
    "article": "A number of participants in a recent poll showcased different standpoints on how to handle undocumented immigration. Chloe emphasizes the cultural and economic benefits newcomers bring, and Frank advocates for amnesty measures to help them integrate fully. In contrast, Isaac insists firm controls are vital for safeguarding jobs and national security. Observers agree that while common ground is hard to reach, every perspective remains influential in shaping the debate."
  }
]`

// buildGeneratePrompt renders the biased-reporter persona prompt with the
// interview statements inlined.
func buildGeneratePrompt(in GenerateInput) (system, user string) {
	topic := strings.ToLower(in.Topic)

	system = fmt.Sprintf(`You are a news reporter who does not strive for neutral coverage.
You hold a personal stance—whether strongly pro-%[1]s, strongly anti-%[1]s, or somewhere in a biased middle ground.
When writing articles, you can selectively use or omit interview statements to reinforce your viewpoint.
You aim to produce engaging, persuasive, or even polarizing articles that reflect your own bias, while still referencing at least some of the provided interviews.
Your final articles may be pro-%[1]s, anti-%[1]s, or any nuanced stance in-between.`, topic)

	template := make([]map[string]string, 5)
	for i := range template {
		template[i] = map[string]string{"headline": "", "article": ""}
	}
	templateJSON, _ := json.MarshalIndent(template, "", "  ")

	user = fmt.Sprintf(`First, here are all the interview statements you have access to:
%s

IMPORTANT: If you choose to include any exact quotes from the subset, do so verbatim, without altering the text. If you want to paraphrase, clearly indicate it's paraphrased.

Now, create Five news articles with a 'headline' and 'article' field, referencing or paraphrasing any of these statements as you see fit to support your personal bias.

%s

Below is a subset of interview statements you recently heard:
%s

Template to fill:
%s`,
		strings.Join(in.FullStatements, "\n"),
		generateFewShot,
		strings.Join(in.InterviewLines, "\n"),
		string(templateJSON),
	)

	return system, user
}
