package critique

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/archcritic/internal/analysis"
)

func (c *Composer) recommendations(result analysis.Result, score float64) Section {
	var lines []string

	weak := weakCriteria(result.Criteria)
	if len(weak) > 0 {
		lines = append(lines, "PRIORITY AREAS FOR DEVELOPMENT:")
		for i, cs := range weak {
			if i == maxPriorityRecommendations {
				break
			}
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, c.recommendation(cs.Name)))
		}
	}

	g := guidanceFor(score)
	lines = append(lines, "", g.heading)
	for _, item := range g.items {
		lines = append(lines, "- "+item)
	}

	return Section{
		Kind:  SectionRecommendations,
		Title: "STRATEGIC RECOMMENDATIONS",
		Body:  strings.Join(lines, "\n"),
	}
}

// weakCriteria returns criteria scoring below 40, lowest first. Equal scores
// keep declaration order; a pairwise swap sort would not, so ties may list in a
// different order than such an implementation produces.
func weakCriteria(criteria []analysis.CriterionScore) []analysis.CriterionScore {
	var weak []analysis.CriterionScore
	for _, cs := range criteria {
		if cs.Score < weakCriterionScore {
			weak = append(weak, cs)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Score < weak[j].Score
	})
	return weak
}

func (c *Composer) recommendation(criterion string) string {
	crit, ok := c.rules.Criterion(criterion)
	if !ok || len(crit.Recommendations) == 0 {
		return "REVISIT " + strings.ToUpper(criterion)
	}
	return c.selector.Select(crit.Recommendations, thresholdRecommendation)
}
