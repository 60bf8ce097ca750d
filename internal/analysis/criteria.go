package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/archcritic/internal/rules"
)

// minSubstringKeyword is the shortest keyword allowed to match inside a longer token.
// Shorter keywords ("eco", "use", "ada") only match whole tokens.
const minSubstringKeyword = 4

// CriterionScore is the evidence found for one criterion.
type CriterionScore struct {
	Name    string   `json:"name" yaml:"name"`
	Raw     int      `json:"raw" yaml:"raw"`
	Score   float64  `json:"score" yaml:"score"`
	Matches []string `json:"matches" yaml:"matches"`
}

// ScoreCriterion scores lower-cased tokens against a criterion's keywords and
// normalises the raw points by the input's word count.
func ScoreCriterion(c rules.Criterion, tokens []string, wordCount int) CriterionScore {
	raw := 0
	matches := []string{}

	for _, keyword := range c.Keywords {
		count := 0
		for _, token := range tokens {
			if matchesKeyword(token, keyword) {
				count++
			}
		}
		if count > 0 {
			raw += keywordPoints(count)
			matches = append(matches, keyword)
		}
	}
	raw += coverageBonus(len(matches))

	return CriterionScore{
		Name:    c.Name,
		Raw:     raw,
		Score:   normalize(raw, wordCount),
		Matches: matches,
	}
}

func matchesKeyword(token, keyword string) bool {
	if token == keyword {
		return true
	}
	return utf8.RuneCountInString(keyword) >= minSubstringKeyword && strings.Contains(token, keyword)
}

// normalize rescales raw points by text length. Texts of 50 words or more are
// scaled more strictly than mid-length ones.
func normalize(raw, wordCount int) float64 {
	var score float64
	switch {
	case wordCount <= 0:
		return 0
	case wordCount < 10:
		score = float64(raw) * 10
	case wordCount < 50:
		score = float64(raw) / float64(wordCount) * 100
	default:
		score = float64(raw) / float64(wordCount) * 80
	}
	if score > 100 {
		score = 100
	}
	return score
}
