package model

import (
	"encoding/json"
	"fmt"
)

// Rater identifies one of the three annotators of an article.
type Rater int

const (
	RaterHuman Rater = iota
	RaterHuman2
	RaterModel
)

// Raters lists all annotators in storage order.
var Raters = []Rater{RaterHuman, RaterHuman2, RaterModel}

func (r Rater) String() string {
	switch r {
	case RaterHuman:
		return "human"
	case RaterHuman2:
		return "human2"
	case RaterModel:
		return "model"
	}
	return "unknown"
}

// BiasKey returns the legacy JSON key holding this rater's bias label.
func (r Rater) BiasKey() string {
	switch r {
	case RaterHuman:
		return "Human's Bias"
	case RaterHuman2:
		return "Human's Bias(1)"
	default:
		return "GPT's Bias"
	}
}

// AnalysisKey returns the legacy JSON key holding this rater's structured
// analysis.
func (r Rater) AnalysisKey() string {
	switch r {
	case RaterHuman:
		return "Human's analysis"
	case RaterHuman2:
		return "Human's analysis(1)"
	default:
		return "GPT's analysis"
	}
}

// SupporterQuote maps each supporter category to a comma-separated list of
// respondent names.
type SupporterQuote struct {
	LeftToRight string `json:"left -> right"`
	RightToLeft string `json:"right -> left"`
	Left        string `json:"left"`
	Right       string `json:"right"`
}

// Get returns the raw comma-separated name list for a category.
func (q SupporterQuote) Get(cat SupporterCategory) string {
	switch cat {
	case CategoryLeft:
		return q.Left
	case CategoryRight:
		return q.Right
	case CategoryLeftToRight:
		return q.LeftToRight
	case CategoryRightToLeft:
		return q.RightToLeft
	}
	return ""
}

// IsZero reports whether every category list is empty.
func (q SupporterQuote) IsZero() bool {
	return q == SupporterQuote{}
}

// ByName inverts the quote into a per-name category lookup. A name listed
// under several categories keeps the last one in SupporterCategories order.
func (q SupporterQuote) ByName() map[string]SupporterCategory {
	out := make(map[string]SupporterCategory)
	for _, cat := range SupporterCategories {
		for _, name := range SplitNames(q.Get(cat)) {
			out[name] = cat
		}
	}
	return out
}

// Analysis is one rater's structured verdict for a single article.
type Analysis struct {
	Headline   string         `json:"headline"`
	Conclusion string         `json:"Conclusion (article/model thoughts)"`
	Supporters SupporterQuote `json:"Supporter (interview respondent) quote"`
	Used       []string       `json:"used supporter,omitempty"`
}

// IsZero reports whether the analysis carries no information. The zero value
// doubles as the sentinel returned when classification fails permanently.
func (a Analysis) IsZero() bool {
	return a.Headline == "" && a.Conclusion == "" && a.Supporters.IsZero() && len(a.Used) == 0
}

// Article is a generated news article plus up to three raters' bias labels
// and structured analyses.
//
// The rater keys predate this tool and contain an apostrophe ("Human's
// Bias"), which encoding/json rejects in struct tags, so marshaling is done
// by hand. Unknown keys are preserved verbatim across a load/save cycle:
// annotators edit these files directly and their additions must survive
// enrichment.
type Article struct {
	Headline string
	Body     string

	biases   [3]string
	analyses [3]Analysis

	present map[string]bool            // known keys seen on load
	extra   map[string]json.RawMessage // unrecognized keys, kept as-is
}

// NewArticle builds a fresh article record with no annotations.
func NewArticle(headline, body string) *Article {
	return &Article{Headline: headline, Body: body}
}

// Bias returns the rater's stored bias label, "" when unset.
func (a *Article) Bias(r Rater) string {
	return a.biases[r]
}

// SetBias stores a bias label for the rater.
func (a *Article) SetBias(r Rater, b Bias) {
	a.biases[r] = string(b)
	a.markPresent(r.BiasKey())
}

// Analysis returns the rater's structured analysis, zero when unset.
func (a *Article) Analysis(r Rater) Analysis {
	return a.analyses[r]
}

// SetAnalysis stores a structured analysis for the rater.
func (a *Article) SetAnalysis(r Rater, an Analysis) {
	a.analyses[r] = an
	a.markPresent(r.AnalysisKey())
}

func (a *Article) markPresent(key string) {
	if a.present == nil {
		a.present = make(map[string]bool)
	}
	a.present[key] = true
}

// UnmarshalJSON decodes the legacy key layout, routing known keys to fields
// and stashing everything else for re-emission.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Article{
		present: make(map[string]bool, len(raw)),
		extra:   make(map[string]json.RawMessage),
	}

	for key, val := range raw {
		var err error
		switch key {
		case "headline":
			err = json.Unmarshal(val, &a.Headline)
		case "article":
			err = json.Unmarshal(val, &a.Body)
		default:
			known := false
			for _, r := range Raters {
				switch key {
				case r.BiasKey():
					err = json.Unmarshal(val, &a.biases[r])
					known = true
				case r.AnalysisKey():
					err = json.Unmarshal(val, &a.analyses[r])
					known = true
				}
			}
			if !known {
				a.extra[key] = val
				continue
			}
		}
		if err != nil {
			return fmt.Errorf("article key %q: %w", key, err)
		}
		a.present[key] = true
	}
	return nil
}

// MarshalJSON re-emits the legacy key layout. Rater keys are written when
// they were present on load or have since been populated, so enrichment can
// add labels without inventing empty analysis objects elsewhere.
func (a *Article) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 8+len(a.extra))
	out["headline"] = a.Headline
	out["article"] = a.Body
	for _, r := range Raters {
		if a.biases[r] != "" || a.present[r.BiasKey()] {
			out[r.BiasKey()] = a.biases[r]
		}
		if !a.analyses[r].IsZero() || a.present[r.AnalysisKey()] {
			out[r.AnalysisKey()] = a.analyses[r]
		}
	}
	for key, val := range a.extra {
		out[key] = val
	}
	return json.Marshal(out)
}
