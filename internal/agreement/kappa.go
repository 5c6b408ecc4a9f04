// Package agreement computes inter-rater agreement statistics and extracts
// disagreement cases across a corpus of annotated runs.
package agreement

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned when a dimension has no eligible rating triples.
var ErrNoItems = errors.New("no eligible rating triples")

// ErrDegenerate is returned when every rating falls into a single category,
// leaving the chance-agreement correction undefined.
var ErrDegenerate = errors.New("degenerate category marginals")

// FleissKappa computes Fleiss' kappa for an item × category count matrix.
// Each row holds, per category, how many raters assigned the item to it;
// every row must sum to the same rater count.
func FleissKappa(matrix [][]int) (float64, error) {
	items := len(matrix)
	if items == 0 {
		return 0, ErrNoItems
	}

	raters := 0
	for _, c := range matrix[0] {
		raters += c
	}
	if raters < 2 {
		return 0, fmt.Errorf("need at least 2 ratings per item, got %d", raters)
	}

	// Mean observed pairwise agreement per item.
	colTotals := make([]float64, len(matrix[0]))
	var pObserved float64
	for i, row := range matrix {
		sum, sq := 0, 0
		for j, c := range row {
			sum += c
			sq += c * c
			colTotals[j] += float64(c)
		}
		if sum != raters {
			return 0, fmt.Errorf("row %d has %d ratings, expected %d", i, sum, raters)
		}
		pObserved += float64(sq-raters) / float64(raters*(raters-1))
	}
	pObserved /= float64(items)

	// Expected agreement under the marginal category-proportion null model.
	total := float64(items * raters)
	var pExpected float64
	for _, ct := range colTotals {
		p := ct / total
		pExpected += p * p
	}

	denom := 1 - pExpected
	if denom < 1e-12 {
		return 0, ErrDegenerate
	}
	return (pObserved - pExpected) / denom, nil
}

// BuildMatrix counts, per triple, how many raters chose each category.
// Labels outside the category vocabulary are not counted; callers are
// expected to have filtered invalid triples out beforehand.
func BuildMatrix(triples [][]string, categories []string) [][]int {
	index := make(map[string]int, len(categories))
	for j, c := range categories {
		index[c] = j
	}

	matrix := make([][]int, len(triples))
	for i, tri := range triples {
		row := make([]int, len(categories))
		for _, label := range tri {
			if j, ok := index[label]; ok {
				row[j]++
			}
		}
		matrix[i] = row
	}
	return matrix
}
