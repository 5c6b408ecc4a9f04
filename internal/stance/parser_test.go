package stance

import "testing"

func TestParseStances_BasicLines(t *testing.T) {
	opinions := []string{
		"Alex: (right) In my view, safeguarding our borders matters most.",
		"Brian: (left) I strongly believe that embracing immigrants helps everyone.",
		"not a stance line at all",
		"Chloe (LEFT) no colon, uppercase stance",
	}

	stances := ParseStances(opinions)

	if len(stances) != 3 {
		t.Fatalf("Expected 3 parsed stances, got %d", len(stances))
	}

	alex, ok := stances["Alex"]
	if !ok {
		t.Fatal("Expected Alex to be parsed")
	}
	if alex.Stance != "right" {
		t.Errorf("Expected Alex stance right, got %s", alex.Stance)
	}
	if alex.FullText != "Alex: (right) In my view, safeguarding our borders matters most." {
		t.Errorf("Unexpected full text: %q", alex.FullText)
	}

	chloe, ok := stances["Chloe"]
	if !ok {
		t.Fatal("Expected Chloe to be parsed without a colon")
	}
	if chloe.Stance != "left" {
		t.Errorf("Expected stance lowered to left, got %s", chloe.Stance)
	}
}

func TestParseStances_LastOccurrenceWins(t *testing.T) {
	opinions := []string{
		"Emily: (left) first version",
		"Emily: (right) second version",
	}

	stances := ParseStances(opinions)

	if len(stances) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(stances))
	}
	if stances["Emily"].Stance != "right" {
		t.Errorf("Expected last occurrence to win, got %s", stances["Emily"].Stance)
	}
}

func TestParseStances_UnknownNameSkipped(t *testing.T) {
	stances := ParseStances([]string{"Zelda: (left) not on the roster"})
	if len(stances) != 0 {
		t.Errorf("Expected unknown names to be skipped, got %d entries", len(stances))
	}
}

func TestExtractQuoted(t *testing.T) {
	stances := ParseStances([]string{
		"Alex: (right) border security first.",
		"Daniel: (left) immigration grows the economy.",
	})

	article := "Alex(right) argues for enforcement, while Daniel(LEFT) disagrees. " +
		"Grace(right) is mentioned but was never interviewed this round."

	quoted := ExtractQuoted(article, stances)

	if len(quoted) != 2 {
		t.Fatalf("Expected 2 quoted supporters, got %d", len(quoted))
	}
	if _, ok := quoted["Grace"]; ok {
		t.Error("Expected Grace to be filtered out (not in stances)")
	}
	if quoted["Daniel"].Stance != "left" {
		t.Errorf("Expected Daniel's recorded stance, got %s", quoted["Daniel"].Stance)
	}
}

func TestExtractQuoted_NoInlineCitations(t *testing.T) {
	stances := ParseStances([]string{"Alex: (right) statement."})

	quoted := ExtractQuoted("Alex said something, but without the citation form.", stances)

	if len(quoted) != 0 {
		t.Errorf("Expected no matches for plain mentions, got %d", len(quoted))
	}
}
