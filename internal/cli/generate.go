package cli

import (
	"context"
	"fmt"

	"github.com/jwhan/biaslens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	genTopic      string
	genData       string
	genOutput     string
	genSamples    int
	genLeftRatio  float64
	genLeftType   string
	genRightType  string
	genSeed       int64
	genRuns       int
	genProvider   string
	genModel      string
	genMaxTokens  int
	genTemp       float64
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate news articles from sampled interview opinions",
	Long: `Generate samples left/right interview opinions from a dataset,
assigns each a respondent name, and asks the configured model to write
five news articles per run. Runs are reproducible given the same seed.

Example:
  biaslens generate --topic Immigration --data opinions.json --output runs.json
  biaslens generate --topic Immigration --data opinions.json --runs 5 --left-ratio 0.3`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genTopic, "topic", "", "study topic, e.g. Immigration (required)")
	generateCmd.Flags().StringVar(&genData, "data", "", "opinion dataset path (required)")
	generateCmd.Flags().StringVar(&genOutput, "output", "test_output.json", "output run file path")
	generateCmd.Flags().IntVar(&genSamples, "samples", 10, "opinions sampled per run")
	generateCmd.Flags().Float64Var(&genLeftRatio, "left-ratio", 0.5, "fraction of sampled opinions drawn from the left side")
	generateCmd.Flags().StringVar(&genLeftType, "left-type", "explicit", "left wording style (explicit, implicit)")
	generateCmd.Flags().StringVar(&genRightType, "right-type", "explicit", "right wording style (explicit, implicit)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "sampling seed")
	generateCmd.Flags().IntVar(&genRuns, "runs", 1, "number of generation runs")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "LLM provider override (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "LLM model override")
	generateCmd.Flags().IntVar(&genMaxTokens, "max-tokens", 0, "generation token budget override")
	generateCmd.Flags().Float64Var(&genTemp, "temperature", -1, "generation temperature override")

	_ = generateCmd.MarkFlagRequired("topic")
	_ = generateCmd.MarkFlagRequired("data")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flag overrides
	cfg.Generation.NumSamples = genSamples
	cfg.Generation.LeftRatio = genLeftRatio
	cfg.Generation.LeftType = genLeftType
	cfg.Generation.RightType = genRightType
	cfg.Generation.Seed = genSeed
	cfg.Generation.NumRuns = genRuns
	if genProvider != "" {
		cfg.Generation.Provider = genProvider
	}
	if genModel != "" {
		cfg.Generation.Model = genModel
	}
	if genMaxTokens > 0 {
		cfg.Generation.MaxTokens = genMaxTokens
	}
	if genTemp >= 0 {
		cfg.Generation.Temperature = genTemp
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	if err := pipeline.Generate(context.Background(), gen, pipeline.GenerateOptions{
		Topic:      genTopic,
		DataPath:   genData,
		OutputPath: genOutput,
		NumSamples: cfg.Generation.NumSamples,
		LeftRatio:  cfg.Generation.LeftRatio,
		LeftType:   cfg.Generation.LeftType,
		RightType:  cfg.Generation.RightType,
		Seed:       cfg.Generation.Seed,
		NumRuns:    cfg.Generation.NumRuns,
		Verbose:    cfg.Output.Verbose,
	}); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}
	return nil
}
