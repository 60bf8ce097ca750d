// Package analysis extracts shallow, explainable features from proposal text:
// word and sentence statistics, keyword evidence per criterion, the dominant
// style, technical density, sentiment and conceptual depth.
package analysis

import (
	"strings"

	"github.com/dotcommander/archcritic/internal/rules"
)

// Result is everything extracted from one input text. It is built once by
// Analyzer.Analyze and not modified afterwards.
type Result struct {
	Stats           `yaml:",inline"`
	Criteria        []CriterionScore `json:"criteria" yaml:"criteria"`
	Style           string           `json:"style,omitempty" yaml:"style,omitempty"`
	StyleScores     []StyleScore     `json:"style_scores" yaml:"style_scores"`
	TechnicalTerms  int              `json:"technical_terms" yaml:"technical_terms"`
	Complexity      float64          `json:"complexity" yaml:"complexity"`
	Sentiment       Sentiment        `json:"sentiment" yaml:"sentiment"`
	ConceptualDepth int              `json:"conceptual_depth" yaml:"conceptual_depth"`
}

// Criterion returns the score recorded for the named criterion.
func (r Result) Criterion(name string) (CriterionScore, bool) {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c, true
		}
	}
	return CriterionScore{}, false
}

// HasStyle reports whether a style was detected.
func (r Result) HasStyle() bool {
	return r.Style != ""
}

// Analyzer runs every extractor over a text using one rule set.
type Analyzer struct {
	rules *rules.RuleSet
}

// NewAnalyzer creates an Analyzer over rs.
func NewAnalyzer(rs *rules.RuleSet) *Analyzer {
	return &Analyzer{rules: rs}
}

// Analyze extracts all features from text. It accepts any string, including "".
func (a *Analyzer) Analyze(text string) Result {
	stats := ComputeStats(text)
	lower := strings.ToLower(text)
	tokens := strings.Fields(lower)

	criteria := make([]CriterionScore, 0, len(a.rules.Criteria))
	for _, c := range a.rules.Criteria {
		criteria = append(criteria, ScoreCriterion(c, tokens, stats.WordCount))
	}

	style, styleScores := DetectStyle(a.rules, lower)
	technical := CountTechnicalTerms(a.rules.TechnicalTerms, lower)

	return Result{
		Stats:           stats,
		Criteria:        criteria,
		Style:           style,
		StyleScores:     styleScores,
		TechnicalTerms:  technical,
		Complexity:      ComplexityScore(stats, technical),
		Sentiment:       CountSentiment(a.rules.PositiveWords, a.rules.NegativeWords, lower),
		ConceptualDepth: ConceptualDepth(a.rules.ConceptualIndicators, lower),
	}
}
