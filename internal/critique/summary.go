package critique

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/scoring"
)

func (c *Composer) header(now time.Time, score float64) Section {
	body := "\n" + boxed(
		"ARCHCRITIC ANALYSIS",
		"GENERATED: "+now.Format(TimestampLayout),
		fmt.Sprintf("OVERALL SCORE: %.1f/100", score),
	)
	return Section{Kind: SectionHeader, Body: body}
}

func (c *Composer) summary(result analysis.Result, score float64) Section {
	class := scoring.Classify(score)

	var b strings.Builder
	fmt.Fprintf(&b, "CLASSIFICATION: %s\n\n", class.Label)
	fmt.Fprintf(&b, "THIS ARCHITECTURAL PROPOSITION %s OF DESIGN PRINCIPLES WITH A COMPLEXITY\n", class.Tone)
	fmt.Fprintf(&b, "RATING OF %.1f/100. THE SUBMISSION DEMONSTRATES %d CONCEPTUAL INDICATORS\n",
		result.Complexity, result.ConceptualDepth)
	fmt.Fprintf(&b, "AND ENCOMPASSES %d WORDS ACROSS %d SENTENCES.\n\n", result.WordCount, result.SentenceCount)
	fmt.Fprintf(&b, "PRIMARY STRENGTHS: %s\n", joinList(upperAll(strongest(result.Criteria, topCriteria))))
	fmt.Fprintf(&b, "AREAS FOR IMPROVEMENT: %s\n", joinList(upperAll(weakest(result.Criteria, topCriteria))))

	return Section{Kind: SectionSummary, Title: "EXECUTIVE SUMMARY", Body: b.String()}
}

// strongest returns up to n criterion names by descending score; equal scores
// keep declaration order.
func strongest(criteria []analysis.CriterionScore, n int) []string {
	return rankCriteria(criteria, n, func(a, b float64) bool { return a > b })
}

// weakest returns up to n criterion names by ascending score; equal scores keep
// declaration order.
func weakest(criteria []analysis.CriterionScore, n int) []string {
	return rankCriteria(criteria, n, func(a, b float64) bool { return a < b })
}

func rankCriteria(criteria []analysis.CriterionScore, n int, before func(a, b float64) bool) []string {
	ranked := append([]analysis.CriterionScore(nil), criteria...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return before(ranked[i].Score, ranked[j].Score)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	names := make([]string, len(ranked))
	for i, cs := range ranked {
		names[i] = cs.Name
	}
	return names
}
