package llm

import (
	"context"
	"strings"
	"testing"
	"time"
)

const articleBatch = `Here are your articles:
[
  {"headline": "First Take", "article": "Alex(right) led the charge."},
  {"headline": "Second Take", "article": "Brian(left) pushed back."}
]
Hope this helps!`

func newTestGenerator(serverURL string) *Generator {
	provider, _ := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
	return NewGenerator(provider, GeneratorOptions{RetryDelay: time.Millisecond})
}

func TestGenerateParsesArticleBlock(t *testing.T) {
	server := chatServer(t, articleBatch)
	defer server.Close()

	run, err := newTestGenerator(server.URL).Generate(context.Background(), GenerateInput{
		Topic:          "Immigration",
		FullStatements: []string{`Alex: "Borders first."`},
		InterviewLines: []string{`Alex: "Borders first."`},
	})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	if len(run.Articles) != 2 {
		t.Fatalf("len(Articles) = %d, want 2", len(run.Articles))
	}
	if run.Articles[0].Headline != "First Take" {
		t.Errorf("Headline = %q", run.Articles[0].Headline)
	}
	if run.Articles[1].Body != "Brian(left) pushed back." {
		t.Errorf("Body = %q", run.Articles[1].Body)
	}
	if run.Raw == "" {
		t.Error("raw output should always be kept")
	}
}

func TestGenerateKeepsRawOnUnparseableOutput(t *testing.T) {
	server := chatServer(t, "I would rather describe the articles in prose.")
	defer server.Close()

	run, err := newTestGenerator(server.URL).Generate(context.Background(), GenerateInput{Topic: "Immigration"})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if run.Articles != nil {
		t.Errorf("Articles = %v, want nil", run.Articles)
	}
	if !strings.Contains(run.Raw, "prose") {
		t.Errorf("Raw = %q, want the model text preserved", run.Raw)
	}
}

func TestBuildGeneratePromptContents(t *testing.T) {
	system, user := buildGeneratePrompt(GenerateInput{
		Topic:          "Immigration",
		FullStatements: []string{`Alex: "Borders first."`, `Brian: "Welcome newcomers."`},
		InterviewLines: []string{`Alex: "Borders first."`},
	})

	if !strings.Contains(system, "pro-immigration") {
		t.Errorf("system prompt should lowercase the topic: %q", system)
	}
	for _, want := range []string{
		`Brian: "Welcome newcomers."`,
		"Template to fill:",
		`"headline": ""`,
		"[Example 1]",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}
