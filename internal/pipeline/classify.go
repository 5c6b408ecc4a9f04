package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jwhan/biaslens/internal/corpus"
	"github.com/jwhan/biaslens/internal/llm"
	"github.com/jwhan/biaslens/internal/model"
	"github.com/jwhan/biaslens/internal/stance"
)

// ClassifyOptions configures one machine-annotation job.
type ClassifyOptions struct {
	Topic   string
	Root    string
	Verbose bool
}

// ClassifyStats summarizes a machine-annotation pass.
type ClassifyStats struct {
	FilesUpdated   int
	FilesUnchanged int
	FilesSkipped   int
	Articles       int
}

// Classify walks every run file under root and fills in the model rater's
// structured analysis for each article. Files that fail to parse are logged
// and skipped. An article with no detectable quoted supporters is left
// untouched: there is nothing to classify.
func Classify(ctx context.Context, cls *llm.Classifier, opts ClassifyOptions) (ClassifyStats, error) {
	var stats ClassifyStats

	files, err := corpus.Discover(opts.Root)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("no .json files under %s", opts.Root)
	}

	for _, path := range files {
		doc, err := corpus.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ skipping %s: %v\n", path, err)
			stats.FilesSkipped++
			continue
		}

		modified := 0
		for _, run := range doc.Runs {
			stances := stance.ParseStances(run.SampledOpinions)

			for _, art := range run.Articles {
				if err := ctx.Err(); err != nil {
					return stats, err
				}

				used := usedSupporters(art, stances)
				if len(used) == 0 {
					continue
				}

				analysis := cls.Classify(ctx, llm.ClassifyInput{
					Topic:     opts.Topic,
					Opinions:  run.SampledOpinions,
					Used:      used,
					Headline:  art.Headline,
					Article:   art.Body,
					HumanBias: art.Bias(model.RaterHuman),
					Stances:   stances,
				})

				art.SetAnalysis(model.RaterModel, analysis)
				modified++
				stats.Articles++
			}
		}

		if modified == 0 {
			stats.FilesUnchanged++
			if opts.Verbose {
				fmt.Fprintf(os.Stderr, "  no changes for %s\n", path)
			}
			continue
		}
		if err := corpus.Save(path, doc); err != nil {
			return stats, err
		}
		stats.FilesUpdated++
		fmt.Fprintf(os.Stderr, "✓ updated %s (%d articles)\n", path, modified)
	}

	return stats, nil
}

// usedSupporters resolves which respondents an article quoted. A used list
// recorded by an earlier pass wins; otherwise inline Name(stance) citations
// in the article text are detected. The result is sorted for stable prompts.
func usedSupporters(art *model.Article, stances map[string]stance.Supporter) []string {
	if used := art.Analysis(model.RaterModel).Used; len(used) > 0 {
		return used
	}

	quoted := stance.ExtractQuoted(art.Body, stances)
	if len(quoted) == 0 {
		return nil
	}
	names := make([]string, 0, len(quoted))
	for name := range quoted {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
