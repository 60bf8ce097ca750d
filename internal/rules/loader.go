package rules

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotcommander/archcritic/internal/cue"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML rule file, validates it against the embedded CUE schema and
// returns the decoded RuleSet.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes and validates YAML rule table content.
func Parse(data []byte) (*RuleSet, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if raw == nil {
		return nil, errors.New("rules file is empty")
	}

	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, err
	}
	violations, err := v.ValidateRuleSet(raw)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		msgs := make([]string, 0, len(violations))
		for _, violation := range violations {
			msgs = append(msgs, violation.String())
		}
		return nil, fmt.Errorf("invalid rules:\n  %s", strings.Join(msgs, "\n  "))
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate checks unique names, co-occurrence boosts that refer to a declared
// style keyword, and that every keyword is non-empty and lower-case.
func (r *RuleSet) Validate() error {
	seen := make(map[string]bool, len(r.Criteria))
	for _, c := range r.Criteria {
		if seen[c.Name] {
			return fmt.Errorf("duplicate criterion %q", c.Name)
		}
		seen[c.Name] = true
		if err := checkKeywords("criterion "+c.Name, c.Keywords); err != nil {
			return err
		}
	}

	styleKeywords := make(map[string]bool)
	seen = make(map[string]bool, len(r.Styles))
	for _, s := range r.Styles {
		if seen[s.Name] {
			return fmt.Errorf("duplicate style %q", s.Name)
		}
		seen[s.Name] = true
		if err := checkKeywords("style "+s.Name, s.Keywords); err != nil {
			return err
		}
		for _, k := range s.Keywords {
			styleKeywords[k] = true
		}
	}

	for _, b := range r.CoOccurrences {
		if !styleKeywords[b.Keyword] {
			return fmt.Errorf("co-occurrence keyword %q is not a style keyword", b.Keyword)
		}
		if err := checkKeywords("co-occurrence "+b.Keyword, []string{b.With}); err != nil {
			return err
		}
	}

	lists := []struct {
		name  string
		words []string
	}{
		{"technical_terms", r.TechnicalTerms},
		{"positive_words", r.PositiveWords},
		{"negative_words", r.NegativeWords},
		{"conceptual_indicators", r.ConceptualIndicators},
	}
	for _, l := range lists {
		if err := checkKeywords(l.name, l.words); err != nil {
			return err
		}
	}
	return nil
}

// checkKeywords rejects keywords that could never match lower-cased text, and
// empty ones, which would match everything.
func checkKeywords(owner string, keywords []string) error {
	for _, k := range keywords {
		switch {
		case k == "":
			return fmt.Errorf("%s: empty keyword", owner)
		case k != strings.ToLower(k):
			return fmt.Errorf("%s: keyword %q must be lower-case", owner, k)
		}
	}
	return nil
}

// Write encodes the rule set as YAML.
func (r *RuleSet) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error encoding rules: %w", err)
	}
	return enc.Close()
}
