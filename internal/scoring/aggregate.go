// Package scoring combines extracted features into a single bounded score and
// maps scores onto the descriptive tiers used in reports.
package scoring

import (
	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/rules"
)

// Aggregate weights every criterion score and adds the complexity, depth and
// style bonuses. The result is clamped to [0, 100].
func Aggregate(rs *rules.RuleSet, result analysis.Result) Score {
	var s Score

	for _, c := range rs.Criteria {
		cs, ok := result.Criterion(c.Name)
		if !ok {
			continue
		}
		multiplier := WeightMultiplier(c.Weight)
		weighted := cs.Score * c.Weight * multiplier

		s.Weighted += weighted
		s.Contributions = append(s.Contributions, Contribution{
			Criterion:  c.Name,
			Score:      cs.Score,
			Weight:     c.Weight,
			Multiplier: multiplier,
			Weighted:   weighted,
		})
	}

	s.ComplexityBonus = ComplexityBonus(result.Complexity)
	s.DepthBonus = DepthBonus(result.ConceptualDepth)
	s.StyleBonus = rs.StyleBonus(result.Style)
	s.Total = clamp(s.Weighted + s.ComplexityBonus + s.DepthBonus + s.StyleBonus)

	return s
}
