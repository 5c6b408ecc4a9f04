package model

// Dimension names one axis of inter-rater agreement.
type Dimension string

const (
	DimensionBias       Dimension = "bias"
	DimensionHeadline   Dimension = "headline"
	DimensionConclusion Dimension = "conclusion"
	DimensionSupporter  Dimension = "supporter"
)

// Dimensions lists the agreement axes in report order.
var Dimensions = []Dimension{
	DimensionBias,
	DimensionHeadline,
	DimensionConclusion,
	DimensionSupporter,
}

// Differences records every dimension on which the three raters diverged for
// one article. Triples are stored in rater order: Human, Human2, Model.
type Differences struct {
	Bias       []string            `json:"bias,omitempty"`
	Headline   []string            `json:"headline,omitempty"`
	Conclusion []string            `json:"conclusion,omitempty"`
	Supporter  map[string][]string `json:"supporter,omitempty"`
}

// IsZero reports whether no dimension diverged.
func (d Differences) IsZero() bool {
	return len(d.Bias) == 0 && len(d.Headline) == 0 && len(d.Conclusion) == 0 && len(d.Supporter) == 0
}

// Disagreement is one audit entry, carrying enough context to re-examine the
// case by hand.
type Disagreement struct {
	SourceFile   string      `json:"source_file"`
	RunIndex     int         `json:"run_index"`
	ArticleIndex int         `json:"article_index"`
	Headline     string      `json:"headline"`
	Article      string      `json:"article"`
	Differences  Differences `json:"differences"`
}

// KappaResult is the agreement statistic for one dimension. Available is
// false when the dimension had no eligible triples (or the chance-agreement
// model was degenerate), in which case Kappa is meaningless and reported as
// N/A, never as zero.
type KappaResult struct {
	Dimension Dimension `json:"dimension"`
	Kappa     float64   `json:"kappa"`
	Items     int       `json:"items"`
	Available bool      `json:"available"`
}

// AgreementReport is the outcome of one corpus scan.
type AgreementReport struct {
	Results       []KappaResult  `json:"results"`
	Disagreements []Disagreement `json:"disagreements"`
	FilesScanned  int            `json:"files_scanned"`
	FilesSkipped  int            `json:"files_skipped"`
}
