package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwhan/biaslens/internal/agreement"
	"github.com/jwhan/biaslens/internal/render"
	"github.com/spf13/cobra"
)

var kappaNoImage bool

// kappaCmd represents the kappa command
var kappaCmd = &cobra.Command{
	Use:   "kappa <root>",
	Short: "Measure inter-rater agreement with Fleiss' kappa",
	Long: `Kappa scans every run file under the given root and computes
Fleiss' kappa across the three raters for four dimensions: overall
bias, headline slant, conclusion slant, and per-supporter category.

Outputs written into the scanned root:
  disagreement_cases.json  one record per article where raters differ
  fleiss_kappa_table.png   the summary table as an image

Example:
  biaslens kappa ./runs
  biaslens kappa ./runs --no-image`,
	Args: cobra.ExactArgs(1),
	RunE: runKappa,
}

func init() {
	rootCmd.AddCommand(kappaCmd)

	kappaCmd.Flags().BoolVar(&kappaNoImage, "no-image", false, "skip writing the kappa table image")
}

func runKappa(cmd *cobra.Command, args []string) error {
	root := args[0]

	engine := agreement.NewEngine(verbose)
	report, err := engine.Scan(root)
	if err != nil {
		return fmt.Errorf("kappa failed: %w", err)
	}

	render.Summary(os.Stdout, report)

	casesPath := filepath.Join(root, "disagreement_cases.json")
	if err := render.WriteDisagreements(casesPath, report.Disagreements); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ wrote %s\n", casesPath)

	if !kappaNoImage {
		imagePath := filepath.Join(root, "fleiss_kappa_table.png")
		if err := render.KappaTablePNG(imagePath, report.Results); err != nil {
			return fmt.Errorf("render kappa table: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ wrote %s\n", imagePath)
	}

	return nil
}
