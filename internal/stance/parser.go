// Package stance recovers which interview respondents an article quoted and
// what stance each respondent originally recorded.
package stance

import (
	"regexp"
	"strings"
)

// DefaultRoster is the fixed set of interview respondent names used across
// the generation and classification stages.
var DefaultRoster = []string{
	"Alex", "Brian", "Chloe", "Daniel", "Emily",
	"Frank", "Grace", "Hannah", "Isaac", "Julia",
}

// Supporter is one respondent's recorded stance and original statement line.
type Supporter struct {
	Stance   string `json:"stance"`
	FullText string `json:"full_text"`
}

var (
	rosterAlt = strings.Join(DefaultRoster, "|")

	// "Name: (stance) text" opinion lines.
	stanceLine = regexp.MustCompile(`(?i)^(` + rosterAlt + `):?\s*\((right|left)\)`)

	// "Name(stance)" inline citations in article bodies.
	inlineQuote = regexp.MustCompile(`(?i)\b(` + rosterAlt + `)\((right|left)\)`)
)

// ParseStances extracts each respondent's stance from "Name: (stance) text"
// opinion lines. Lines that do not match the pattern are skipped, not an
// error. A duplicated name keeps its last occurrence.
func ParseStances(opinions []string) map[string]Supporter {
	out := make(map[string]Supporter)
	for _, line := range opinions {
		m := stanceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out[m[1]] = Supporter{
			Stance:   strings.ToLower(m[2]),
			FullText: strings.TrimSpace(line),
		}
	}
	return out
}

// ExtractQuoted finds inline "Name(stance)" citations in article text,
// keeping only respondents present in stances. The returned entries carry the
// originally recorded stance, not the stance the article printed.
func ExtractQuoted(articleText string, stances map[string]Supporter) map[string]Supporter {
	out := make(map[string]Supporter)
	for _, m := range inlineQuote.FindAllStringSubmatch(articleText, -1) {
		if sup, ok := stances[m[1]]; ok {
			out[m[1]] = sup
		}
	}
	return out
}
