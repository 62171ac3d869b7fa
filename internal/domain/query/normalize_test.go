package query

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"filler stripped", "give me an outfit for a coffee date", "coffee date"},
		{"synonym fold dinner date", "dinner date", "date"},
		{"synonym fold job interview", "job interview outfit", "interview"},
		{"work maps to interview", "work outfit", "interview"},
		{"replacement order pinned", "a date for a casual outfit", "date casual"},
		{"lower-cased", "COFFEE Date", "coffee date"},
		{"dedup preserves first occurrence", "date night date", "date night"},
		{"entirely filler collapses to empty", "an outfit for", ""},
		{"empty input", "", ""},
		{"whitespace runs collapsed", "  beach   party  ", "beach party"},
		{"word boundary respected", "formal attire", "formal attire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// A key that is itself the output of an earlier rewrite must not be
// re-processed: "work" folds to "interview" exactly once.
func TestNormalize_SinglePassPerRule(t *testing.T) {
	if got := Normalize("work"); got != "interview" {
		t.Errorf("Normalize(\"work\") = %q, want \"interview\"", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"give me an outfit for a coffee date",
		"work outfit",
		"dinner date",
		"summer beach party",
		"",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", raw, twice, once)
		}
	}
}

func TestTerms(t *testing.T) {
	got := Terms("coffee date")
	if len(got) != 2 || got[0] != "coffee" || got[1] != "date" {
		t.Errorf("Terms(\"coffee date\") = %v", got)
	}
	if got := Terms(""); len(got) != 0 {
		t.Errorf("Terms(\"\") = %v, want empty", got)
	}
}
