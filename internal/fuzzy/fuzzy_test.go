//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"number", "numbr", 1},
		{"flag", "flog", 1},
		{"string", "sting", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindBest(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"flag", "string", "number"}

	tests := []struct {
		input string
		want  string
	}{
		{"numbr", "number"},
		{"flg", "flag"},
		{"sting", "string"},
		// too far, too short and exact: no suggestion
		{"xyzzy", ""},
		{"n", ""},
		{"number", ""},
	}

	for _, tt := range tests {
		if got := m.FindBest(tt.input, candidates); got != tt.want {
			t.Errorf("FindBest(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFindMatchesOrdering(t *testing.T) {
	m := NewMatcher(3)
	matches := m.FindMatches("strin", []string{"string", "str", "strung"})

	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	if matches[0].Value != "string" {
		t.Errorf("expected 'string' to rank first, got %q", matches[0].Value)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted by score: %v", matches)
		}
	}
}

func TestFindBestCaseInsensitive(t *testing.T) {
	m := NewMatcher(2)
	if got := m.FindBest("NUMBR", []string{"number"}); got != "number" {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
}

func TestFindBestOptionAndCommand(t *testing.T) {
	if got := FindBestOption("numbr", []string{"flag", "number"}, 2); got != "number" {
		t.Errorf("FindBestOption = %q, want 'number'", got)
	}
	if got := FindBestCommand("stats", []string{"status", "version"}, 2); got != "status" {
		t.Errorf("FindBestCommand = %q, want 'status'", got)
	}
}
