package analysis

import (
	"regexp"
	"strings"
)

var sentencePattern = regexp.MustCompile(`[.!?]+`)

// Stats holds the plain text statistics of an input.
type Stats struct {
	WordCount             int     `json:"word_count" yaml:"word_count"`
	SentenceCount         int     `json:"sentence_count" yaml:"sentence_count"`
	UniqueWordCount       int     `json:"unique_word_count" yaml:"unique_word_count"`
	AverageSentenceLength float64 `json:"average_sentence_length" yaml:"average_sentence_length"`
}

// ComputeStats counts whitespace-delimited words, sentences split on runs of
// terminal punctuation, and distinct words by exact (case-sensitive) equality.
func ComputeStats(text string) Stats {
	words := strings.Fields(text)

	sentences := 0
	for _, s := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	stats := Stats{
		WordCount:       len(words),
		SentenceCount:   sentences,
		UniqueWordCount: len(unique),
	}
	if sentences > 0 {
		stats.AverageSentenceLength = float64(stats.WordCount) / float64(sentences)
	}
	return stats
}

// UniqueRatio returns distinct words as a percentage of all words, or 0 for empty input.
func (s Stats) UniqueRatio() float64 {
	if s.WordCount == 0 {
		return 0
	}
	return float64(s.UniqueWordCount) / float64(s.WordCount) * 100
}
