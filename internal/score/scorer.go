// Package score maps a structured bias analysis to a categorical bias label
// using a fixed additive weighting rule.
package score

import (
	"strings"

	"github.com/jwhan/biaslens/internal/model"
)

// Weight tables. Stance-switch quote categories outweigh same-stance quotes
// and labeled headlines/conclusions: a quote reframed against the speaker's
// recorded stance is the strongest single piece of slant evidence.
var (
	labelWeights = map[model.Bias]int{
		model.BiasLeft:    -2,
		model.BiasNeutral: 0,
		model.BiasRight:   2,
	}

	supporterWeights = map[model.SupporterCategory]int{
		model.CategoryLeft:        -1,
		model.CategoryRight:       1,
		model.CategoryLeftToRight: 3,
		model.CategoryRightToLeft: -3,
	}
)

// Scorer converts structured analyses into bias labels.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score sums the headline, conclusion and supporter-quote contributions and
// buckets the total: negative is left, positive is right, zero is neutral.
// The function is total over its input: empty or unrecognized fields
// contribute zero.
func (s *Scorer) Score(a model.Analysis) model.Bias {
	total := 0

	if b, ok := model.ParseBias(strings.TrimSpace(a.Headline)); ok {
		total += labelWeights[b]
	}
	if b, ok := model.ParseBias(strings.TrimSpace(a.Conclusion)); ok {
		total += labelWeights[b]
	}

	for _, cat := range model.SupporterCategories {
		names := model.SplitNames(a.Supporters.Get(cat))
		total += len(names) * supporterWeights[cat]
	}

	switch {
	case total < 0:
		return model.BiasLeft
	case total > 0:
		return model.BiasRight
	}
	return model.BiasNeutral
}
