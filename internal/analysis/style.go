package analysis

import (
	"strings"

	"github.com/dotcommander/archcritic/internal/rules"
)

// StyleScore is the accumulated evidence for one style.
type StyleScore struct {
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
}

// DetectStyle scores every style against the lower-cased text and returns the
// strictly highest scorer. Earlier styles win ties; "" means nothing scored.
func DetectStyle(rs *rules.RuleSet, lower string) (string, []StyleScore) {
	scores := make([]StyleScore, 0, len(rs.Styles))
	best, bestScore := "", 0

	for _, style := range rs.Styles {
		score := 0
		for _, keyword := range style.Keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if boost, ok := rs.BoostFor(keyword); ok && strings.Contains(lower, boost.With) {
				score += boost.Points
			} else {
				score++
			}
		}
		scores = append(scores, StyleScore{Name: style.Name, Score: score})

		if score > bestScore {
			best, bestScore = style.Name, score
		}
	}
	return best, scores
}
