// Package render writes the agreement engine's outputs: the stdout summary,
// the disagreement audit log, and the kappa table image.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jwhan/biaslens/internal/model"
)

// dimensionTitles maps dimension identifiers to their display names.
var dimensionTitles = map[model.Dimension]string{
	model.DimensionBias:       "Bias",
	model.DimensionHeadline:   "Headline",
	model.DimensionConclusion: "Conclusion",
	model.DimensionSupporter:  "Supporter",
}

// Title returns the display name for a dimension.
func Title(dim model.Dimension) string {
	if t, ok := dimensionTitles[dim]; ok {
		return t
	}
	return string(dim)
}

// Summary prints the per-dimension kappa table and scan counts.
func Summary(w io.Writer, report *model.AgreementReport) {
	fmt.Fprintf(w, "\n=== Fleiss' kappa (3 raters) ===\n")
	for _, r := range report.Results {
		if r.Available {
			fmt.Fprintf(w, "%-12s %.3f  (%d items)\n", Title(r.Dimension), r.Kappa, r.Items)
		} else {
			fmt.Fprintf(w, "%-12s N/A\n", Title(r.Dimension))
		}
	}
	fmt.Fprintf(w, "\nFiles scanned: %d", report.FilesScanned)
	if report.FilesSkipped > 0 {
		fmt.Fprintf(w, " (skipped %d)", report.FilesSkipped)
	}
	fmt.Fprintf(w, "\nDisagreements: %d\n", len(report.Disagreements))
}

// WriteDisagreements writes the audit log as a JSON array, overwriting any
// previous run's output.
func WriteDisagreements(path string, cases []model.Disagreement) error {
	if cases == nil {
		cases = []model.Disagreement{}
	}
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal disagreements: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
