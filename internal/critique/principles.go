package critique

import (
	"fmt"
	"strings"

	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/scoring"
)

func (c *Composer) principles(result analysis.Result) Section {
	var entries []string

	for _, criterion := range c.rules.Criteria {
		cs, ok := result.Criterion(criterion.Name)
		if !ok {
			continue
		}
		perf := scoring.PerformanceFromScore(cs.Score)

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s (%.1f/100) - %s\n", perf.Stars, strings.ToUpper(cs.Name), cs.Score, perf.Label)
		b.WriteString(criterion.Description + "\n")
		if len(cs.Matches) > 0 {
			fmt.Fprintf(&b, "IDENTIFIED ELEMENTS: %s\n", joinList(cs.Matches))
		}
		fmt.Fprintf(&b, "ASSESSMENT: %s\n", c.assessment(cs))
		entries = append(entries, b.String())
	}

	return Section{
		Kind:  SectionPrinciples,
		Title: "PRINCIPLE-BY-PRINCIPLE ANALYSIS",
		Body:  strings.Join(entries, "\n"),
	}
}

// assessment fills a template from the family matching the score. The detail is
// the first matched keyword, or a jargon phrase when nothing matched. Jargon is
// drawn either way so the number of random draws does not depend on the matches.
func (c *Composer) assessment(cs analysis.CriterionScore) string {
	template := c.selector.Select(c.templateFamily(cs.Score), thresholdTemplate)
	jargon := c.jargon()

	detail := jargon
	if len(cs.Matches) > 0 {
		detail = cs.Matches[0]
	}

	r := strings.NewReplacer(
		"{aspect}", strings.ToUpper(cs.Name),
		"{detail}", strings.ToUpper(detail),
	)
	return r.Replace(template)
}

func (c *Composer) templateFamily(score float64) []string {
	switch {
	case score >= 70:
		return c.rules.Templates.Positive
	case score <= 30:
		return c.rules.Templates.Negative
	default:
		return c.rules.Templates.Neutral
	}
}

func (c *Composer) jargon() string {
	if len(c.rules.Jargon) == 0 {
		return ""
	}
	names := make([]string, len(c.rules.Jargon))
	for i, cat := range c.rules.Jargon {
		names[i] = cat.Name
	}
	chosen := c.selector.Select(names, thresholdJargonCategory)

	for _, cat := range c.rules.Jargon {
		if cat.Name == chosen {
			return c.selector.Select(cat.Phrases, thresholdJargonPhrase)
		}
	}
	return ""
}
