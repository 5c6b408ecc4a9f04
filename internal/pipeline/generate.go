// Package pipeline drives the multi-stage study workflow: article
// generation, machine annotation and corpus grading.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/jwhan/biaslens/internal/llm"
	"github.com/jwhan/biaslens/internal/model"
	"github.com/jwhan/biaslens/internal/opinion"
)

// GenerateOptions configures one generation job.
type GenerateOptions struct {
	Topic      string
	DataPath   string
	OutputPath string

	NumSamples int
	LeftRatio  float64
	LeftType   string
	RightType  string
	Seed       int64
	NumRuns    int

	Verbose bool
}

// Generate samples opinions, asks the model for article batches and writes
// the resulting run document. Each run draws a fresh sample from the shared
// seeded sequence, so run N is reproducible given the seed.
func Generate(ctx context.Context, gen *llm.Generator, opts GenerateOptions) error {
	dataset, err := opinion.LoadDataset(opts.DataPath)
	if err != nil {
		return err
	}

	sampler := opinion.NewSampler(opts.Seed)
	numRuns := opts.NumRuns
	if numRuns < 1 {
		numRuns = 1
	}

	runs := make([]*model.Run, 0, numRuns)
	for runIdx := 1; runIdx <= numRuns; runIdx++ {
		samples, err := sampler.Sample(dataset, opts.NumSamples, opts.LeftRatio, opts.LeftType, opts.RightType)
		if err != nil {
			return fmt.Errorf("run %d: %w", runIdx, err)
		}

		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "run %d/%d: sampled %d opinions\n", runIdx, numRuns, len(samples))
		}

		result, err := gen.Generate(ctx, llm.GenerateInput{
			Topic:          opts.Topic,
			FullStatements: opinion.InterviewLines(samples),
			InterviewLines: opinion.InterviewLines(samples),
		})
		if err != nil {
			return fmt.Errorf("run %d: %w", runIdx, err)
		}

		run := &model.Run{
			RunIndex:        runIdx,
			SampledOpinions: opinion.MappedOpinions(samples),
			Articles:        result.Articles,
		}
		if len(result.Articles) == 0 {
			run.RawOutput = result.Raw
			fmt.Fprintf(os.Stderr, "✗ run %d: no article JSON in model output, kept raw text\n", runIdx)
		} else if opts.Verbose {
			fmt.Fprintf(os.Stderr, "✓ run %d: %d articles\n", runIdx, len(result.Articles))
		}
		runs = append(runs, run)
	}

	doc := model.NewDocument(runs)
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := os.WriteFile(opts.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}

	fmt.Fprintf(os.Stderr, "✓ saved %d run(s) to %s\n", len(runs), opts.OutputPath)
	return nil
}
