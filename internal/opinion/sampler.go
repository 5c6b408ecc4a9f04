// Package opinion loads interview opinion datasets and draws seeded samples
// with a configurable left/right split.
package opinion

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/jwhan/biaslens/internal/stance"
)

// Pair is one dataset entry: a left-leaning and a right-leaning phrasing of
// the same underlying opinion, each offered in one or more wording styles
// (typically "explicit" and "implicit").
type Pair struct {
	Left  map[string]string `json:"left"`
	Right map[string]string `json:"right"`
}

// LoadDataset reads a JSON array of opinion pairs.
func LoadDataset(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return pairs, nil
}

// Sampled is one drawn opinion with its assigned respondent name.
type Sampled struct {
	Name   string
	Stance string // "left" or "right"
	Text   string
}

// Sampler draws deterministic opinion samples. The same seed yields the
// same draw, which is what makes generation runs reproducible.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded for reproducible draws.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws n opinions from the dataset: floor(n*leftRatio) left ones in
// the leftType wording and the remainder right ones in the rightType
// wording, shuffled together and assigned roster names in draw order. Fewer
// candidates than requested shrinks the draw rather than failing; names run
// out after len(stance.DefaultRoster) entries, which caps n in practice.
func (s *Sampler) Sample(dataset []Pair, n int, leftRatio float64, leftType, rightType string) ([]Sampled, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}
	if n > len(stance.DefaultRoster) {
		return nil, fmt.Errorf("sample size %d exceeds the %d available respondent names", n, len(stance.DefaultRoster))
	}

	leftN := int(float64(n) * leftRatio)
	rightN := n - leftN

	var leftTexts, rightTexts []string
	for _, pair := range dataset {
		if text, ok := pair.Left[leftType]; ok {
			leftTexts = append(leftTexts, text)
		}
		if text, ok := pair.Right[rightType]; ok {
			rightTexts = append(rightTexts, text)
		}
	}

	drawn := make([]Sampled, 0, n)
	for _, text := range s.draw(leftTexts, leftN) {
		drawn = append(drawn, Sampled{Stance: "left", Text: text})
	}
	for _, text := range s.draw(rightTexts, rightN) {
		drawn = append(drawn, Sampled{Stance: "right", Text: text})
	}

	s.rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	for i := range drawn {
		drawn[i].Name = stance.DefaultRoster[i]
	}
	return drawn, nil
}

// draw picks k distinct entries from texts, fewer when texts is short.
func (s *Sampler) draw(texts []string, k int) []string {
	if k > len(texts) {
		k = len(texts)
	}
	if k <= 0 {
		return nil
	}
	idx := s.rng.Perm(len(texts))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, texts[i])
	}
	return out
}

// InterviewLines renders the samples as `Name: "text"` quote lines for the
// generation prompt.
func InterviewLines(samples []Sampled) []string {
	out := make([]string, 0, len(samples))
	for _, sm := range samples {
		out = append(out, fmt.Sprintf("%s: %q", sm.Name, sm.Text))
	}
	return out
}

// MappedOpinions renders the samples as "Name: (stance) text" record lines,
// the format the stance parser reads back during classification.
func MappedOpinions(samples []Sampled) []string {
	out := make([]string, 0, len(samples))
	for _, sm := range samples {
		out = append(out, fmt.Sprintf("%s: (%s) %s", sm.Name, sm.Stance, sm.Text))
	}
	return out
}
