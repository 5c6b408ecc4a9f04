package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jwhan/biaslens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	clsTopic    string
	clsProvider string
	clsModel    string
	clsNoCache  bool
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <root>",
	Short: "Annotate generated articles with the model rater's analysis",
	Long: `Classify walks every run file under the given root, asks the
configured model how each article used its quoted respondents, and
writes the structured verdict back into the file under the model
rater's analysis key.

Verdicts are cached by prompt, so re-running over an unchanged corpus
is cheap.

Example:
  biaslens classify ./runs --topic Immigration
  biaslens classify ./runs --topic Immigration --provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&clsTopic, "topic", "", "study topic, e.g. Immigration (required)")
	classifyCmd.Flags().StringVar(&clsProvider, "provider", "", "LLM provider override (openai, anthropic, ollama)")
	classifyCmd.Flags().StringVar(&clsModel, "model", "", "LLM model override")
	classifyCmd.Flags().BoolVar(&clsNoCache, "no-cache", false, "disable the verdict cache")

	_ = classifyCmd.MarkFlagRequired("topic")
}

func runClassify(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if clsProvider != "" {
		cfg.Classifier.Provider = clsProvider
	}
	if clsModel != "" {
		cfg.Classifier.Model = clsModel
	}
	if clsNoCache {
		cfg.Cache.Enabled = false
	}

	cls, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	stats, err := pipeline.Classify(context.Background(), cls, pipeline.ClassifyOptions{
		Topic:   clsTopic,
		Root:    root,
		Verbose: cfg.Output.Verbose,
	})
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ classified %d article(s): %d file(s) updated, %d unchanged, %d skipped\n",
		stats.Articles, stats.FilesUpdated, stats.FilesUnchanged, stats.FilesSkipped)
	return nil
}
