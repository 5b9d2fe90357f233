package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/tui"
)

// adviseOutput is the JSON shape printed by "advise --json".
type adviseOutput struct {
	Input   string               `json:"input"`
	Results []advisor.Suggestion `json:"results"`
}

// catalogEntry is the JSON shape printed by "catalog --json".
// Unlike advise output it includes the keywords.
type catalogEntry struct {
	Skill    string   `json:"skill"`
	Months   int      `json:"months"`
	Note     string   `json:"note"`
	Keywords []string `json:"keywords"`
}

// adviseInput joins the arguments into one description, reading stdin for "-".
func adviseInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// runAdvise analyzes text once and writes the results.
// Blank text is reported as an error carrying the user-facing message.
func runAdvise(w io.Writer, catalog *advisor.Catalog, text string, asJSON bool) error {
	var session advisor.Session
	session.UpdateInput(text)
	session.Analyze(catalog)

	if msg := session.ErrorMessage(); msg != "" {
		return errors.New(msg)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(adviseOutput{
			Input:   session.Input,
			Results: session.Results,
		})
	}

	return tui.WriteSuggestions(w, session.Results)
}

// writeCatalog lists every catalog entry in order.
func writeCatalog(w io.Writer, catalog *advisor.Catalog, asJSON bool) error {
	suggestions := catalog.Suggestions()

	if asJSON {
		entries := make([]catalogEntry, len(suggestions))
		for i, s := range suggestions {
			entries[i] = catalogEntry{
				Skill:    s.Skill,
				Months:   s.Months,
				Note:     s.Note,
				Keywords: s.Keywords,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for i, s := range suggestions {
		if _, err := fmt.Fprintf(w, "%2d. %s\n    keywords: %s\n",
			i+1, tui.FormatSuggestion(s), strings.Join(s.Keywords, ", ")); err != nil {
			return err
		}
	}
	return nil
}
