package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwhan/biaslens/internal/model"
)

func writeCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const unlabeledRun = `[
  {
    "run_index": 1,
    "sampled_opinions": ["Alex: (right) Borders first."],
    "articles": [
      {
        "headline": "Border Debate",
        "article": "Alex(right) spoke.",
        "Human's Bias": "left",
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
        "GPT's analysis": {
          "headline": "right",
          "Supporter (interview respondent) quote": {
            "left -> right": "",
            "right -> left": "",
            "left": "",
            "right": "Alex"
          },
          "Conclusion (article/model thoughts)": "right"
        }
      }
    ]
  }
]`

func TestEnrichFileFillsEmptySlots(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "runs.json", unlabeledRun)

	changed, err := NewEnricher(false).EnrichFile(path)
	if err != nil {
		t.Fatalf("EnrichFile error = %v", err)
	}
	if !changed {
		t.Fatal("EnrichFile reported no change for a file with empty slots")
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	art := doc.Runs[0].Articles[0]

	// Human label present on disk stays as entered, even though the stored
	// analysis scores right.
	if got := art.Bias(model.RaterHuman); got != "left" {
		t.Errorf("human bias = %q, want the original %q", got, "left")
	}
	// Model slot was empty and gets scored: headline 2 + conclusion 2 +
	// one right supporter 1 = 5 -> right.
	if got := art.Bias(model.RaterModel); got != "right" {
		t.Errorf("model bias = %q, want %q", got, "right")
	}
	// Second human never filed an analysis; an empty one scores neutral.
	if got := art.Bias(model.RaterHuman2); got != "neutral" {
		t.Errorf("second human bias = %q, want %q", got, "neutral")
	}
}

func TestEnrichFileLeavesFullyLabeledAlone(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "done.json", `[
  {
    "articles": [
      {
        "headline": "H",
        "article": "B",
        "Human's Bias": "left",
        "Human's Bias(1)": "left",
        "GPT's Bias": "neutral"
      }
    ]
  }
]`)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := NewEnricher(false).EnrichFile(path)
	if err != nil {
		t.Fatalf("EnrichFile error = %v", err)
	}
	if changed {
		t.Error("fully labeled file reported as changed")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("fully labeled file was rewritten")
	}
}

func TestEnrichDirSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "good.json", unlabeledRun)
	writeCorpusFile(t, dir, "bad.json", `{"articles": [broken`)

	stats, err := NewEnricher(false).EnrichDir(dir)
	if err != nil {
		t.Fatalf("EnrichDir error = %v", err)
	}
	if stats.Updated != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 1 updated and 1 skipped", stats)
	}
}

func TestDiscoverWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "batch1")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeCorpusFile(t, dir, "top.json", "[]")
	writeCorpusFile(t, sub, "nested.json", "[]")
	writeCorpusFile(t, dir, "notes.txt", "ignored")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Discover found %d files, want 2: %v", len(files), files)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "runs.json", unlabeledRun)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	doc.Runs[0].Articles[0].SetBias(model.RaterModel, model.BiasRight)

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not a run list: %v", err)
	}
}
