// Package lexicon loads the fixed pattern lists the textual detectors
// depend on. The lists ship as embedded YAML data rather than code so
// patterns can be added without touching scorer logic.
package lexicon

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var patternsYAML []byte

// Category identifies one of the fixed pattern lists.
type Category string

const (
	Vague    Category = "vague"
	Template Category = "template"
	Filler   Category = "filler"
)

type patternFile struct {
	Vague    []string `yaml:"vague"`
	Template []string `yaml:"template"`
	Filler   []string `yaml:"filler"`
}

// Matcher holds the compiled pattern lists. Matching is case-insensitive
// whole-phrase matching at word boundaries; each list entry contributes at
// most one match per invocation regardless of repeat occurrences.
type Matcher struct {
	patterns map[Category][]*regexp.Regexp
}

// Load parses and compiles the embedded pattern lists.
func Load() (*Matcher, error) {
	return Parse(patternsYAML)
}

// MustLoad is Load panicking on error. The embedded lists are fixed, so a
// failure here is a build defect, not a runtime condition.
func MustLoad() *Matcher {
	m, err := Load()
	if err != nil {
		panic(err)
	}
	return m
}

// Parse compiles pattern lists from raw YAML.
func Parse(data []byte) (*Matcher, error) {
	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern lists: %w", err)
	}

	m := &Matcher{patterns: make(map[Category][]*regexp.Regexp, 3)}
	for category, entries := range map[Category][]string{
		Vague:    file.Vague,
		Template: file.Template,
		Filler:   file.Filler,
	} {
		if len(entries) == 0 {
			return nil, fmt.Errorf("pattern list %q is empty", category)
		}
		compiled, err := compile(entries)
		if err != nil {
			return nil, fmt.Errorf("pattern list %q: %w", category, err)
		}
		m.patterns[category] = compiled
	}
	return m, nil
}

func compile(entries []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(entries))
	for _, entry := range entries {
		re, err := regexp.Compile(`(?i)\b(?:` + entry + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", entry, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Count returns the number of distinct patterns in the category that match
// the text.
func (m *Matcher) Count(category Category, text string) int {
	hits := 0
	for _, re := range m.patterns[category] {
		if re.MatchString(text) {
			hits++
		}
	}
	return hits
}

// Size returns the number of patterns in a category.
func (m *Matcher) Size(category Category) int {
	return len(m.patterns[category])
}
