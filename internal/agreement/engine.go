package agreement

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jwhan/biaslens/internal/corpus"
	"github.com/jwhan/biaslens/internal/model"
)

// Engine scans a corpus of annotated runs and aggregates rating triples,
// Fleiss' kappa per dimension, and per-article disagreement records. The
// scan is read-only: source files are never modified.
type Engine struct {
	verbose bool
}

// NewEngine creates an agreement engine.
func NewEngine(verbose bool) *Engine {
	return &Engine{verbose: verbose}
}

// collected accumulates eligible rating triples per dimension.
type collected struct {
	bias       [][]string
	headline   [][]string
	conclusion [][]string
	supporter  [][]string
}

// Scan walks every JSON file under root in a single pass. Malformed files
// are logged and skipped; the rest of the corpus still contributes.
func (e *Engine) Scan(root string) (*model.AgreementReport, error) {
	files, err := corpus.Discover(root)
	if err != nil {
		return nil, err
	}

	report := &model.AgreementReport{Disagreements: []model.Disagreement{}}
	var tr collected

	for _, path := range files {
		doc, err := corpus.Load(path)
		if err != nil {
			report.FilesSkipped++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		report.FilesScanned++
		if e.verbose {
			fmt.Fprintf(os.Stderr, "✓ scanned %s\n", path)
		}

		for runIdx, run := range doc.Runs {
			for artIdx, art := range run.Articles {
				e.collectArticle(path, runIdx, artIdx, art, &tr, report)
			}
		}
	}

	scalar := labelStrings(model.Biases)
	supporter := categoryStrings(model.SupporterCategories)
	report.Results = []model.KappaResult{
		kappaFor(model.DimensionBias, tr.bias, scalar),
		kappaFor(model.DimensionHeadline, tr.headline, scalar),
		kappaFor(model.DimensionConclusion, tr.conclusion, scalar),
		kappaFor(model.DimensionSupporter, tr.supporter, supporter),
	}
	return report, nil
}

// collectArticle builds this article's rating triples and, when at least one
// dimension diverges, a single multi-dimension disagreement record.
func (e *Engine) collectArticle(path string, runIdx, artIdx int, art *model.Article, tr *collected, report *model.AgreementReport) {
	triBias := biasTriple(art)
	triHead := analysisTriple(art, func(a model.Analysis) string { return a.Headline })
	triConcl := analysisTriple(art, func(a model.Analysis) string { return a.Conclusion })

	// Supporter triples need all three raters to have categorized the name;
	// partial coverage is excluded, never imputed.
	lookups := [3]map[string]model.SupporterCategory{}
	for _, r := range model.Raters {
		lookups[r] = art.Analysis(r).Supporters.ByName()
	}

	supDiff := make(map[string][]string)
	for _, name := range unionNames(lookups) {
		c1, ok1 := lookups[model.RaterHuman][name]
		c2, ok2 := lookups[model.RaterHuman2][name]
		c3, ok3 := lookups[model.RaterModel][name]
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		tri := []string{string(c1), string(c2), string(c3)}
		tr.supporter = append(tr.supporter, tri)
		if !allEqual(tri) {
			supDiff[name] = tri
		}
	}

	validBias := allValid(triBias)
	validHead := allValid(triHead)
	validConcl := allValid(triConcl)

	if validBias {
		tr.bias = append(tr.bias, triBias)
	}
	if validHead {
		tr.headline = append(tr.headline, triHead)
	}
	if validConcl {
		tr.conclusion = append(tr.conclusion, triConcl)
	}

	var diff model.Differences
	if validBias && !allEqual(triBias) {
		diff.Bias = triBias
	}
	if validHead && !allEqual(triHead) {
		diff.Headline = triHead
	}
	if validConcl && !allEqual(triConcl) {
		diff.Conclusion = triConcl
	}
	if len(supDiff) > 0 {
		diff.Supporter = supDiff
	}

	if !diff.IsZero() {
		report.Disagreements = append(report.Disagreements, model.Disagreement{
			SourceFile:   path,
			RunIndex:     runIdx,
			ArticleIndex: artIdx,
			Headline:     art.Headline,
			Article:      art.Body,
			Differences:  diff,
		})
	}
}

// kappaFor reduces one dimension's triples to a result row. A dimension with
// no eligible triples, or degenerate marginals, is reported unavailable.
func kappaFor(dim model.Dimension, triples [][]string, categories []string) model.KappaResult {
	res := model.KappaResult{Dimension: dim, Items: len(triples)}
	if len(triples) == 0 {
		return res
	}
	k, err := FleissKappa(BuildMatrix(triples, categories))
	if err != nil {
		return res
	}
	res.Kappa = k
	res.Available = true
	return res
}

// biasTriple reads the three stored article-level labels in rater order.
func biasTriple(art *model.Article) []string {
	tri := make([]string, len(model.Raters))
	for _, r := range model.Raters {
		tri[r] = strings.TrimSpace(art.Bias(r))
	}
	return tri
}

// analysisTriple reads one scalar field out of each rater's analysis.
func analysisTriple(art *model.Article, field func(model.Analysis) string) []string {
	tri := make([]string, len(model.Raters))
	for _, r := range model.Raters {
		tri[r] = strings.TrimSpace(field(art.Analysis(r)))
	}
	return tri
}

// allValid reports whether every label is in the scalar vocabulary.
func allValid(tri []string) bool {
	for _, label := range tri {
		if _, ok := model.ParseBias(label); !ok {
			return false
		}
	}
	return true
}

func allEqual(tri []string) bool {
	for _, label := range tri[1:] {
		if label != tri[0] {
			return false
		}
	}
	return true
}

// unionNames merges the raters' supporter lookups into a sorted name list so
// scans are deterministic.
func unionNames(lookups [3]map[string]model.SupporterCategory) []string {
	seen := make(map[string]bool)
	for _, lookup := range lookups {
		for name := range lookup {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func labelStrings(labels []model.Bias) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

func categoryStrings(cats []model.SupporterCategory) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
