package query

import (
	"regexp"
	"strings"
)

// rule is a single whole-word rewrite applied during normalization.
type rule struct {
	pattern *regexp.Regexp
	replace string
}

// rules are applied once each, in declared order, over the progressively
// rewritten string. Synonym folds come first so that filler removal cannot
// break a multi-word key apart.
var rules = []rule{
	word("dinner date", "date"),
	word("job interview", "interview"),
	word("work", "interview"),
	word("give me", ""),
	word("outfit", ""),
	word("a", ""),
	word("an", ""),
	word("for", ""),
}

func word(key, replace string) rule {
	return rule{
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`),
		replace: replace,
	}
}

// Normalize canonicalizes a free-text query: lower-cases it, folds synonyms
// and strips filler words as whole-word rewrites, then splits on whitespace
// and deduplicates tokens preserving first occurrence. The result may be
// empty when the input is entirely filler.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}

	seen := make(map[string]struct{})
	tokens := make([]string, 0, 4)
	for _, tok := range strings.Fields(s) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return strings.Join(tokens, " ")
}

// Terms splits a normalized query into its tokens.
func Terms(normalized string) []string {
	return strings.Fields(normalized)
}
