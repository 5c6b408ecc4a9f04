package score

import (
	"testing"

	"github.com/jwhan/biaslens/internal/model"
)

func TestScorer_EmptyAnalysisIsNeutral(t *testing.T) {
	scorer := NewScorer()

	if got := scorer.Score(model.Analysis{}); got != model.BiasNeutral {
		t.Errorf("Expected neutral for empty analysis, got %s", got)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()

	a := model.Analysis{
		Headline:   "left",
		Conclusion: "right",
		Supporters: model.SupporterQuote{Left: "Alex, Brian", RightToLeft: "Chloe"},
	}

	first := scorer.Score(a)
	second := scorer.Score(a)
	if first != second {
		t.Errorf("Expected identical output on identical input, got %s then %s", first, second)
	}
}

func TestScorer_LabelWeights(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name       string
		headline   string
		conclusion string
		want       model.Bias
	}{
		{"left headline", "left", "", model.BiasLeft},
		{"right conclusion", "", "right", model.BiasRight},
		{"opposing labels cancel", "left", "right", model.BiasNeutral},
		{"neutral labels score zero", "neutral", "neutral", model.BiasNeutral},
		{"unknown label ignored", "leftish", "", model.BiasNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model.Analysis{Headline: tt.headline, Conclusion: tt.conclusion}
			if got := scorer.Score(a); got != tt.want {
				t.Errorf("Score() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScorer_StanceSwitchWeights(t *testing.T) {
	scorer := NewScorer()

	// One left -> right switch alone is +3, decisively right.
	a := model.Analysis{Supporters: model.SupporterQuote{LeftToRight: "Alex"}}
	if got := scorer.Score(a); got != model.BiasRight {
		t.Errorf("Expected right for single left -> right switch, got %s", got)
	}

	// One right -> left switch alone is -3, decisively left.
	a = model.Analysis{Supporters: model.SupporterQuote{RightToLeft: "Brian"}}
	if got := scorer.Score(a); got != model.BiasLeft {
		t.Errorf("Expected left for single right -> left switch, got %s", got)
	}

	// A switch (+3) beats two same-stance quotes on the other side (-2).
	a = model.Analysis{Supporters: model.SupporterQuote{LeftToRight: "Alex", Left: "Brian, Chloe"}}
	if got := scorer.Score(a); got != model.BiasRight {
		t.Errorf("Expected switch weight to dominate, got %s", got)
	}
}

func TestScorer_BalancedSupportersAreNeutral(t *testing.T) {
	scorer := NewScorer()

	a := model.Analysis{Supporters: model.SupporterQuote{Left: "Alex", Right: "Brian"}}
	if got := scorer.Score(a); got != model.BiasNeutral {
		t.Errorf("Expected one left and one right supporter to cancel, got %s", got)
	}
}

func TestScorer_NameListParsing(t *testing.T) {
	scorer := NewScorer()

	// Messy comma lists: whitespace trimmed, empties dropped. Three left
	// names (-3) against one right name (+1) lands left.
	a := model.Analysis{Supporters: model.SupporterQuote{
		Left:  " Alex ,, Brian,  Chloe ",
		Right: "Daniel",
	}}
	if got := scorer.Score(a); got != model.BiasLeft {
		t.Errorf("Expected left, got %s", got)
	}
}

func TestScorer_CombinedLabelAndSupporterScale(t *testing.T) {
	scorer := NewScorer()

	// left headline (-2) + left conclusion (-2) + left -> right switch (+3)
	// = -1, still left.
	a := model.Analysis{
		Headline:   "left",
		Conclusion: "left",
		Supporters: model.SupporterQuote{LeftToRight: "Alex"},
	}
	if got := scorer.Score(a); got != model.BiasLeft {
		t.Errorf("Expected left for total -1, got %s", got)
	}

	// Adding one right supporter (+1) brings the total to zero.
	a.Supporters.Right = "Brian"
	if got := scorer.Score(a); got != model.BiasNeutral {
		t.Errorf("Expected neutral for total 0, got %s", got)
	}
}
