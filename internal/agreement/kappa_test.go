package agreement

import (
	"errors"
	"math"
	"testing"
)

func TestFleissKappa_UnanimousIsOne(t *testing.T) {
	// Two items, three raters each, unanimous, two categories represented
	// in the marginals.
	matrix := [][]int{
		{3, 0, 0},
		{0, 0, 3},
	}

	k, err := FleissKappa(matrix)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if math.Abs(k-1.0) > 1e-9 {
		t.Errorf("Expected kappa 1.0 for unanimous ratings, got %f", k)
	}
}

func TestFleissKappa_EmptyMatrix(t *testing.T) {
	_, err := FleissKappa(nil)
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("Expected ErrNoItems for empty matrix, got %v", err)
	}
}

func TestFleissKappa_DegenerateMarginals(t *testing.T) {
	// Every rating in one category: chance agreement is 1, kappa undefined.
	matrix := [][]int{
		{3, 0, 0},
		{3, 0, 0},
	}

	_, err := FleissKappa(matrix)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate, got %v", err)
	}
}

func TestFleissKappa_HandComputedValue(t *testing.T) {
	// Triples (left,left,right) and (left,right,right):
	//   P_i = (2² + 1² - 3) / (3·2) = 1/3 for both rows, so P̄ = 1/3.
	//   Marginals: left 3/6, right 3/6, so P̄ₑ = 0.5.
	//   kappa = (1/3 - 1/2) / (1 - 1/2) = -1/3.
	matrix := BuildMatrix([][]string{
		{"left", "left", "right"},
		{"left", "right", "right"},
	}, []string{"left", "neutral", "right"})

	k, err := FleissKappa(matrix)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if math.Abs(k-(-1.0/3.0)) > 1e-9 {
		t.Errorf("Expected kappa -1/3, got %f", k)
	}
}

func TestFleissKappa_InconsistentRowRejected(t *testing.T) {
	matrix := [][]int{
		{3, 0, 0},
		{1, 0, 1}, // only two ratings
	}

	if _, err := FleissKappa(matrix); err == nil {
		t.Error("Expected error for inconsistent rater counts")
	}
}

func TestBuildMatrix_Counts(t *testing.T) {
	matrix := BuildMatrix([][]string{
		{"left", "neutral", "left"},
		{"right", "right", "right"},
	}, []string{"left", "neutral", "right"})

	want := [][]int{
		{2, 1, 0},
		{0, 0, 3},
	}
	for i := range want {
		for j := range want[i] {
			if matrix[i][j] != want[i][j] {
				t.Errorf("matrix[%d][%d] = %d, want %d", i, j, matrix[i][j], want[i][j])
			}
		}
	}
}
