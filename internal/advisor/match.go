package advisor

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// ErrEmptyInput is returned when there is nothing to analyze.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputMessage is the guidance shown for ErrEmptyInput.
const EmptyInputMessage = "Please describe your current skills or interests."

// Normalize lowercases s, drops everything except a-z, 0-9 and whitespace,
// folds whitespace to plain spaces, and trims the ends.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// phrasePattern compiles a whole-word matcher for a keyword. Words of a
// multi-word keyword must appear contiguously, separated only by spaces.
// It reports false when the keyword normalizes to nothing.
func phrasePattern(keyword string) (*regexp.Regexp, bool) {
	words := strings.Fields(Normalize(keyword))
	if len(words) == 0 {
		return nil, false
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	// Normalized text holds only [a-z0-9 ], so a boundary is a space or an end.
	return regexp.MustCompile(`(?:^| )` + strings.Join(words, ` +`) + `(?: |$)`), true
}

// Match returns every catalog entry with at least one keyword occurring in
// text, in catalog order. When nothing matches it returns only Fallback().
// Blank text yields ErrEmptyInput.
func (c *Catalog) Match(text string) ([]Suggestion, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	subject := Normalize(text)
	var results []Suggestion
	for _, e := range c.entries {
		if e.matches(subject) {
			results = append(results, e.suggestion.clone())
		}
	}

	if len(results) == 0 {
		return []Suggestion{Fallback()}, nil
	}
	return results, nil
}

func (e entry) matches(subject string) bool {
	for _, re := range e.patterns {
		if re.MatchString(subject) {
			return true
		}
	}
	return false
}
