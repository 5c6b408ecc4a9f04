package model

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleArticleJSON = `{
  "headline": "Border Debate Intensifies",
  "article": "Alex(right) said borders come first.",
  "Human's Bias": "right",
  "Human's Bias(1)": "neutral",
  "GPT's Bias": "right",
  "Human's analysis": {
    "headline": "right",
    "Supporter (interview respondent) quote": {
      "left -> right": "",
      "right -> left": "",
      "left": "",
      "right": "Alex"
    },
    "Conclusion (article/model thoughts)": "right"
  },
  "reviewer_note": "double-checked by second annotator"
}`

func TestArticleUnmarshalLegacyKeys(t *testing.T) {
	var art Article
	if err := json.Unmarshal([]byte(sampleArticleJSON), &art); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if art.Headline != "Border Debate Intensifies" {
		t.Errorf("Headline = %q", art.Headline)
	}
	if art.Bias(RaterHuman) != "right" || art.Bias(RaterHuman2) != "neutral" || art.Bias(RaterModel) != "right" {
		t.Errorf("biases = %q/%q/%q", art.Bias(RaterHuman), art.Bias(RaterHuman2), art.Bias(RaterModel))
	}
	if got := art.Analysis(RaterHuman).Supporters.Right; got != "Alex" {
		t.Errorf("human analysis right supporters = %q", got)
	}
	if !art.Analysis(RaterHuman2).IsZero() {
		t.Error("second human analysis should be absent")
	}
}

func TestArticleRoundTripPreservesUnknownKeys(t *testing.T) {
	var art Article
	if err := json.Unmarshal([]byte(sampleArticleJSON), &art); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	out, err := json.Marshal(&art)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if !strings.Contains(string(out), `"reviewer_note"`) {
		t.Error("unknown key dropped on round trip")
	}
	if !strings.Contains(string(out), `"Human's Bias(1)"`) {
		t.Error("second human bias key dropped on round trip")
	}

	var again Article
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal error = %v", err)
	}
	if again.Bias(RaterHuman2) != "neutral" {
		t.Errorf("Bias(RaterHuman2) = %q after round trip", again.Bias(RaterHuman2))
	}
}

func TestArticleMarshalOmitsUnsetRaters(t *testing.T) {
	art := NewArticle("Quiet Day at the Capitol", "Nothing happened.")

	out, err := json.Marshal(art)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	for _, key := range []string{"Human's Bias", "GPT's analysis"} {
		if strings.Contains(string(out), key) {
			t.Errorf("unannotated article should not emit %q", key)
		}
	}

	art.SetBias(RaterModel, BiasNeutral)
	out, err = json.Marshal(art)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if !strings.Contains(string(out), `"GPT's Bias":"neutral"`) {
		t.Errorf("set bias missing from output: %s", out)
	}
}

func TestSupporterQuoteByName(t *testing.T) {
	q := SupporterQuote{
		Left:        "Chloe, Daniel",
		Right:       "Alex",
		LeftToRight: "Brian",
	}

	byName := q.ByName()
	if byName["Alex"] != CategoryRight {
		t.Errorf("Alex = %v", byName["Alex"])
	}
	if byName["Brian"] != CategoryLeftToRight {
		t.Errorf("Brian = %v", byName["Brian"])
	}
	if byName["Chloe"] != CategoryLeft || byName["Daniel"] != CategoryLeft {
		t.Errorf("left names = %v/%v", byName["Chloe"], byName["Daniel"])
	}
	if len(byName) != 4 {
		t.Errorf("len(byName) = %d, want 4", len(byName))
	}
}

func TestSupporterQuoteByNameLastCategoryWins(t *testing.T) {
	// A name listed twice keeps the later category in column order.
	q := SupporterQuote{Left: "Alex", Right: "Alex"}
	if got := q.ByName()["Alex"]; got != CategoryRight {
		t.Errorf("Alex = %v, want %v", got, CategoryRight)
	}
}
