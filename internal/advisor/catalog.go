// Package advisor matches free-text skill descriptions against a fixed
// catalog of learning-path suggestions.
package advisor

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Suggestion is a single learning-path recommendation.
type Suggestion struct {
	Skill    string   `yaml:"skill" json:"skill"`
	Months   int      `yaml:"months" json:"months"`
	Note     string   `yaml:"note" json:"note"`
	Keywords []string `yaml:"keywords" json:"-"` // Matching only, never displayed
}

// FallbackSkill is the skill name of the record returned when nothing matches.
const FallbackSkill = "General Tech Skills"

// Fallback returns the synthesized suggestion used when no catalog entry matches.
// It has no keywords and is never part of a catalog.
func Fallback() Suggestion {
	return Suggestion{
		Skill:  FallbackSkill,
		Months: 3,
		Note:   "Start with programming fundamentals in Python or JavaScript, learn Git, and build a few small projects to find what you enjoy most.",
	}
}

// entry pairs a suggestion with its compiled keyword patterns.
type entry struct {
	suggestion Suggestion
	patterns   []*regexp.Regexp
}

// Catalog is an ordered, read-only set of suggestions.
// It is safe for concurrent use because nothing mutates it after construction.
type Catalog struct {
	entries []entry
}

// NewCatalog validates the suggestions and compiles their keyword matchers.
// The input slice is copied.
func NewCatalog(suggestions []Suggestion) (*Catalog, error) {
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	entries := make([]entry, 0, len(suggestions))
	for i, s := range suggestions {
		if strings.TrimSpace(s.Skill) == "" {
			return nil, fmt.Errorf("entry %d: skill is required", i)
		}
		if s.Months <= 0 {
			return nil, fmt.Errorf("entry %d (%s): months must be positive, got %d", i, s.Skill, s.Months)
		}
		if len(s.Keywords) == 0 {
			return nil, fmt.Errorf("entry %d (%s): at least one keyword is required", i, s.Skill)
		}

		patterns := make([]*regexp.Regexp, 0, len(s.Keywords))
		for _, kw := range s.Keywords {
			re, ok := phrasePattern(kw)
			if !ok {
				return nil, fmt.Errorf("entry %d (%s): keyword %q is empty after normalization", i, s.Skill, kw)
			}
			patterns = append(patterns, re)
		}

		s.Keywords = append([]string(nil), s.Keywords...)
		entries = append(entries, entry{suggestion: s, patterns: patterns})
	}

	return &Catalog{entries: entries}, nil
}

// ParseCatalog decodes a YAML list of suggestions into a Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var suggestions []Suggestion
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(suggestions)
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("advisor: invalid built-in catalog: %v", err))
	}
	return c
})

// DefaultCatalog returns the built-in catalog. It is parsed once per process.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Suggestions returns a copy of the catalog entries in order.
func (c *Catalog) Suggestions() []Suggestion {
	out := make([]Suggestion, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.suggestion.clone()
	}
	return out
}

func (s Suggestion) clone() Suggestion {
	s.Keywords = append([]string(nil), s.Keywords...)
	return s
}
