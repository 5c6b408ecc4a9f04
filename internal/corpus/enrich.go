package corpus

import (
	"fmt"
	"os"

	"github.com/jwhan/biaslens/internal/model"
	"github.com/jwhan/biaslens/internal/score"
)

// Enricher fills empty bias slots from each rater's stored analysis. Labels
// already on disk are never overwritten, so human annotations always win
// over recomputation.
type Enricher struct {
	scorer  *score.Scorer
	verbose bool
}

// NewEnricher creates an enricher.
func NewEnricher(verbose bool) *Enricher {
	return &Enricher{scorer: score.NewScorer(), verbose: verbose}
}

// EnrichFile scores every (article, rater) pair whose bias slot is empty and
// reports whether the file was rewritten. A file where every slot is already
// populated is left untouched on disk.
func (e *Enricher) EnrichFile(path string) (bool, error) {
	doc, err := Load(path)
	if err != nil {
		return false, err
	}

	modified := false
	for _, run := range doc.Runs {
		for _, art := range run.Articles {
			for _, r := range model.Raters {
				if art.Bias(r) != "" {
					continue
				}
				art.SetBias(r, e.scorer.Score(art.Analysis(r)))
				modified = true
			}
		}
	}

	if !modified {
		return false, nil
	}
	if err := Save(path, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Stats summarizes one enrichment pass over a directory.
type Stats struct {
	Updated   int
	Unchanged int
	Skipped   int
}

// EnrichDir processes every JSON file under root sequentially. Malformed
// files are logged and skipped; nothing partial is written for them.
func (e *Enricher) EnrichDir(root string) (Stats, error) {
	files, err := Discover(root)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, path := range files {
		changed, err := e.EnrichFile(path)
		if err != nil {
			st.Skipped++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		if changed {
			st.Updated++
			if e.verbose {
				fmt.Fprintf(os.Stderr, "✓ updated %s\n", path)
			}
		} else {
			st.Unchanged++
			if e.verbose {
				fmt.Fprintf(os.Stderr, "- no update %s\n", path)
			}
		}
	}
	return st, nil
}
