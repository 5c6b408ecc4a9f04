package model

import "strings"

// Bias is the closed label vocabulary shared by article-level bias labels and
// the headline/conclusion fields of a structured analysis.
type Bias string

const (
	BiasLeft    Bias = "left"
	BiasNeutral Bias = "neutral"
	BiasRight   Bias = "right"
)

// Biases is the fixed column order for scalar-dimension agreement matrices.
var Biases = []Bias{BiasLeft, BiasNeutral, BiasRight}

// ParseBias validates a raw label string. Empty or unrecognized strings are
// not labels; callers exclude them rather than defaulting to a category.
func ParseBias(s string) (Bias, bool) {
	switch Bias(s) {
	case BiasLeft, BiasNeutral, BiasRight:
		return Bias(s), true
	}
	return "", false
}

// SupporterCategory classifies how a supporter quote was framed relative to
// the speaker's recorded stance. The two arrow categories mark stance
// switches: the article quotes the speaker as if they held the opposite view.
type SupporterCategory string

const (
	CategoryLeft        SupporterCategory = "left"
	CategoryRight       SupporterCategory = "right"
	CategoryLeftToRight SupporterCategory = "left -> right"
	CategoryRightToLeft SupporterCategory = "right -> left"
)

// SupporterCategories is the fixed column order for the supporter agreement
// matrix. Iteration order also decides which category wins when a name is
// listed under more than one: the last listing wins.
var SupporterCategories = []SupporterCategory{
	CategoryLeft,
	CategoryRight,
	CategoryLeftToRight,
	CategoryRightToLeft,
}

// SplitNames splits a comma-separated name list, trimming whitespace and
// dropping empty entries.
func SplitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
