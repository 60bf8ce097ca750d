package analysis

import "strings"

// Sentiment totals every occurrence of the positive and negative word lists.
type Sentiment struct {
	Positive int `json:"positive" yaml:"positive"`
	Negative int `json:"negative" yaml:"negative"`
}

// CountTechnicalTerms sums tiered occurrence points for each technical term in the text.
func CountTechnicalTerms(terms []string, lower string) int {
	return tieredOccurrences(terms, lower)
}

// ConceptualDepth sums tiered occurrence points for each conceptual indicator.
func ConceptualDepth(indicators []string, lower string) int {
	return tieredOccurrences(indicators, lower)
}

// CountSentiment counts total occurrences, not presence.
func CountSentiment(positive, negative []string, lower string) Sentiment {
	var s Sentiment
	for _, w := range positive {
		s.Positive += countOccurrences(lower, w)
	}
	for _, w := range negative {
		s.Negative += countOccurrences(lower, w)
	}
	return s
}

// ComplexityScore blends vocabulary size, sentence length and technical density
// into a 0-100 value. Mid-range values (25, 50] are lifted by 10.
func ComplexityScore(stats Stats, technicalTerms int) float64 {
	value := float64(stats.UniqueWordCount)*0.5 + stats.AverageSentenceLength*2 + float64(technicalTerms)*3

	switch {
	case value > 100:
		return 100
	case value > 50:
		return value
	case value > 25:
		return value + 10
	default:
		return value
	}
}

func tieredOccurrences(words []string, lower string) int {
	total := 0
	for _, w := range words {
		total += occurrencePoints(countOccurrences(lower, w))
	}
	return total
}

func countOccurrences(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(s, substr)
}
