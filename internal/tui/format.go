package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/npratt/gadgets/internal/advisor"
)

// FormatSuggestion renders a suggestion as plain text for line output.
func FormatSuggestion(s advisor.Suggestion) string {
	return fmt.Sprintf("%s (%s)\n  %s", s.Skill, formatMonths(s.Months), s.Note)
}

// WriteSuggestions writes each suggestion as a plain text block separated by blank lines.
func WriteSuggestions(w io.Writer, results []advisor.Suggestion) error {
	blocks := make([]string, len(results))
	for i, s := range results {
		blocks[i] = FormatSuggestion(s)
	}
	_, err := fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
	return err
}
