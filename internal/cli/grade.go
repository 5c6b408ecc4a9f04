package cli

import (
	"fmt"
	"os"

	"github.com/jwhan/biaslens/internal/corpus"
	"github.com/spf13/cobra"
)

// gradeCmd represents the grade command
var gradeCmd = &cobra.Command{
	Use:   "grade <root>",
	Short: "Derive overall bias labels from stored analyses",
	Long: `Grade walks every run file under the given root and fills in each
rater's overall bias label from that rater's structured analysis:
headline and conclusion slants weigh 2 points each, quoted supporters
1 point each, and stance switches 3 points. A negative total is left,
a positive total right, zero neutral.

Labels already present are never overwritten, so human annotations
always survive a re-run.

Example:
  biaslens grade ./runs`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	root := args[0]

	enricher := corpus.NewEnricher(verbose)
	stats, err := enricher.EnrichDir(root)
	if err != nil {
		return fmt.Errorf("grade failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ graded %s: %d file(s) updated, %d unchanged, %d skipped\n",
		root, stats.Updated, stats.Unchanged, stats.Skipped)
	return nil
}
